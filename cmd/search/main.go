package main

import (
	"context"
	"os"

	"github.com/scottcagno/textsearch/pkg/bench"
	"github.com/scottcagno/textsearch/pkg/corpus"
	"github.com/scottcagno/textsearch/pkg/logger"
)

func main() {
	log := logger.DefaultLogger
	conf := bench.DefaultConfig()
	log.Debugf("config:\n%s", conf)

	res, err := bench.Run(context.Background(), conf, corpus.NewLoader(nil, log))
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := bench.Report(os.Stdout, res); err != nil {
		log.Fatalf("writing report: %v", err)
	}
}
