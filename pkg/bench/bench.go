// Package bench times the substring searchers against downloaded texts.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/scottcagno/textsearch/pkg/corpus"
	"github.com/scottcagno/textsearch/pkg/generic/omap"
	"github.com/scottcagno/textsearch/pkg/search"
)

// Measurement is a single timed search call.
type Measurement struct {
	Elapsed time.Duration
	Index   int
}

func (m Measurement) Seconds() float64 {
	return m.Elapsed.Seconds()
}

// Timings maps a scenario name to its measurement.
type Timings = omap.OrderedMap[string, Measurement]

// Result maps a searcher name to its timings. Both levels keep the order in
// which entries were recorded.
type Result struct {
	Corpora []string
	Times   *omap.OrderedMap[string, *Timings]
}

func newResult() *Result {
	return &Result{Times: omap.New[string, *Timings]()}
}

// Record stores a measurement for searcher and scenario.
func (r *Result) Record(searcher, scenario string, m Measurement) {
	t, ok := r.Times.Get(searcher)
	if !ok {
		t = omap.New[string, Measurement]()
		r.Times.Set(searcher, t)
	}
	t.Set(scenario, m)
}

// Existing names the scenario searching corpus for the existing pattern.
func Existing(corpus string) string { return corpus + existingSuffix }

// Fake names the scenario searching corpus for the fake pattern.
func Fake(corpus string) string { return corpus + fakeSuffix }

type scenario struct {
	name    string
	text    []rune
	pattern []rune
}

// Run fetches every corpus in order and times each searcher on each
// scenario with a single call. Any fetch error aborts the run.
func Run(ctx context.Context, conf *Config, src corpus.Fetcher) (*Result, error) {
	conf, err := checkConfig(conf)
	if err != nil {
		return nil, err
	}
	existing, fake := []rune(conf.Existing), []rune(conf.Fake)
	var scenarios []scenario
	res := newResult()
	for _, c := range conf.Corpora {
		t, err := src.Fetch(ctx, c.URL)
		if err != nil {
			return nil, fmt.Errorf("bench: corpus %s: %w", c.Name, err)
		}
		text := []rune(t.Content)
		scenarios = append(scenarios,
			scenario{name: Existing(c.Name), text: text, pattern: existing},
			scenario{name: Fake(c.Name), text: text, pattern: fake},
		)
		res.Corpora = append(res.Corpora, c.Name)
	}
	for _, s := range conf.Searchers {
		for _, sc := range scenarios {
			res.Record(s.String(), sc.name, timeSearch(s, sc.text, sc.pattern))
		}
	}
	return res, nil
}

func timeSearch(s search.Searcher, text, pattern []rune) Measurement {
	start := time.Now()
	n := s.FindIndexRunes(text, pattern)
	return Measurement{Elapsed: time.Since(start), Index: n}
}

// Fastest picks, for every corpus and for Overall, the searcher with the
// lowest existing-pattern time. Ties go to the searcher recorded first.
func (r *Result) Fastest() (*omap.OrderedMap[string, string], error) {
	if r.Times.Len() == 0 {
		return nil, ErrNoResults
	}
	fastest := omap.New[string, string]()
	for _, c := range r.Corpora {
		name := Existing(c)
		fastest.Set(c, r.min(func(t *Timings) time.Duration {
			m, _ := t.Get(name)
			return m.Elapsed
		}))
	}
	fastest.Set(Overall, r.min(func(t *Timings) time.Duration {
		var sum time.Duration
		for _, c := range r.Corpora {
			m, _ := t.Get(Existing(c))
			sum += m.Elapsed
		}
		return sum
	}))
	return fastest, nil
}

func (r *Result) min(cost func(*Timings) time.Duration) string {
	var (
		best  string
		least time.Duration
		first = true
	)
	r.Times.Range(func(name string, t *Timings) bool {
		if d := cost(t); first || d < least {
			best, least, first = name, d, false
		}
		return true
	})
	return best
}
