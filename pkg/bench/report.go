package bench

import (
	"fmt"
	"io"
)

// Report writes every timing followed by the fastest searcher per corpus
// and overall.
func Report(w io.Writer, r *Result) error {
	fastest, err := r.Fastest()
	if err != nil {
		return err
	}
	var werr error
	printf := func(format string, args ...interface{}) {
		if werr == nil {
			_, werr = fmt.Fprintf(w, format, args...)
		}
	}
	r.Times.Range(func(name string, t *Timings) bool {
		printf("Algorithm: %s\n", name)
		t.Range(func(scenario string, m Measurement) bool {
			printf("File: %s, Time: %.6f, Index: %d\n", scenario, m.Seconds(), m.Index)
			return true
		})
		printf("\n")
		return true
	})
	printf("Fastest algorithm:\n")
	fastest.Range(func(corpus, name string) bool {
		if corpus == Overall {
			printf("Overall: %s\n", name)
		} else {
			printf("For %s: %s\n", corpus, name)
		}
		return true
	})
	return werr
}
