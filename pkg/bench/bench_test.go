package bench

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scottcagno/textsearch/pkg/corpus"
	"github.com/scottcagno/textsearch/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	texts map[string]string
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*corpus.Text, error) {
	f.calls = append(f.calls, url)
	s, ok := f.texts[url]
	if !ok {
		return nil, &corpus.StatusError{URL: url, StatusCode: 404}
	}
	return &corpus.Text{URL: url, Content: s, Size: len(s)}, nil
}

func testConfig() *Config {
	return &Config{
		Corpora: []Corpus{
			{Name: "file1", URL: "http://one"},
			{Name: "file2", URL: "http://two"},
		},
		Existing: "пошуку",
		Fake:     "fake_pattern",
	}
}

func TestRun(t *testing.T) {
	src := &fakeFetcher{texts: map[string]string{
		"http://one": "Алгоритми пошуку підрядка",
		"http://two": "пошуку на початку",
	}}
	res, err := Run(context.Background(), testConfig(), src)
	require.NoError(t, err)

	assert.Equal(t, []string{"http://one", "http://two"}, src.calls)
	assert.Equal(t, []string{"file1", "file2"}, res.Corpora)
	assert.Equal(t, []string{"BOYER-MOORE", "KNUTH-MORRIS-PRATT", "RABIN-KARP"}, res.Times.Keys())

	want := map[string]int{
		"file1_existing": 10,
		"file1_fake":     search.NotFound,
		"file2_existing": 0,
		"file2_fake":     search.NotFound,
	}
	res.Times.Range(func(name string, tm *Timings) bool {
		assert.Equal(t, []string{"file1_existing", "file1_fake", "file2_existing", "file2_fake"}, tm.Keys(), name)
		tm.Range(func(scenario string, m Measurement) bool {
			assert.Equal(t, want[scenario], m.Index, "%s %s", name, scenario)
			assert.GreaterOrEqual(t, m.Elapsed, time.Duration(0))
			return true
		})
		return true
	})

	fastest, err := res.Fastest()
	require.NoError(t, err)
	assert.Equal(t, []string{"file1", "file2", Overall}, fastest.Keys())
}

func TestRun_FetchError(t *testing.T) {
	src := &fakeFetcher{texts: map[string]string{"http://one": "text"}}
	_, err := Run(context.Background(), testConfig(), src)
	var se *corpus.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "http://two", se.URL)
	assert.Contains(t, err.Error(), "corpus file2")
}

func TestRun_BadConfig(t *testing.T) {
	conf := testConfig()
	conf.Fake = ""
	_, err := Run(context.Background(), conf, &fakeFetcher{})
	assert.ErrorIs(t, err, search.ErrEmptyPattern)

	conf = testConfig()
	conf.Corpora = []Corpus{{Name: Overall, URL: "http://one"}}
	_, err = Run(context.Background(), conf, &fakeFetcher{})
	assert.ErrorIs(t, err, ErrCorpusName)

	src := &fakeFetcher{texts: map[string]string{"http://one": "a", "http://two": "b"}}
	conf = testConfig()
	conf.Corpora[1].Name = conf.Corpora[0].Name
	_, err = Run(context.Background(), conf, src)
	assert.ErrorIs(t, err, ErrCorpusName)
	assert.Empty(t, src.calls)
}

func TestCheckConfig_Defaults(t *testing.T) {
	conf, err := checkConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultCorpora, conf.Corpora)
	assert.Equal(t, "пошуку", conf.Existing)
	assert.Equal(t, "fake_pattern", conf.Fake)
	assert.Len(t, conf.Searchers, 3)

	conf, err = checkConfig(&Config{Existing: "a", Fake: "b"})
	require.NoError(t, err)
	assert.Equal(t, defaultCorpora, conf.Corpora)
	assert.Len(t, conf.Searchers, 3)
	assert.Contains(t, conf.String(), "Searchers: BOYER-MOORE, KNUTH-MORRIS-PRATT, RABIN-KARP")
}

func fixedResult(times map[string][4]time.Duration) *Result {
	res := newResult()
	res.Corpora = []string{"file1", "file2"}
	for _, name := range []string{"BOYER-MOORE", "KNUTH-MORRIS-PRATT", "RABIN-KARP"} {
		d := times[name]
		res.Record(name, "file1_existing", Measurement{Elapsed: d[0], Index: 1})
		res.Record(name, "file1_fake", Measurement{Elapsed: d[1], Index: -1})
		res.Record(name, "file2_existing", Measurement{Elapsed: d[2], Index: 2})
		res.Record(name, "file2_fake", Measurement{Elapsed: d[3], Index: -1})
	}
	return res
}

func TestResult_Fastest(t *testing.T) {
	res := fixedResult(map[string][4]time.Duration{
		"BOYER-MOORE":        {30, 1, 10, 1},
		"KNUTH-MORRIS-PRATT": {20, 1, 25, 1},
		"RABIN-KARP":         {25, 1, 5, 1},
	})
	fastest, err := res.Fastest()
	require.NoError(t, err)
	f1, _ := fastest.Get("file1")
	f2, _ := fastest.Get("file2")
	all, _ := fastest.Get(Overall)
	assert.Equal(t, "KNUTH-MORRIS-PRATT", f1)
	assert.Equal(t, "RABIN-KARP", f2)
	assert.Equal(t, "RABIN-KARP", all)
}

func TestResult_FastestTieKeepsFirst(t *testing.T) {
	res := fixedResult(map[string][4]time.Duration{
		"BOYER-MOORE":        {20, 0, 10, 0},
		"KNUTH-MORRIS-PRATT": {10, 0, 20, 0},
		"RABIN-KARP":         {10, 0, 10, 0},
	})
	fastest, err := res.Fastest()
	require.NoError(t, err)
	f1, _ := fastest.Get("file1")
	f2, _ := fastest.Get("file2")
	all, _ := fastest.Get(Overall)
	assert.Equal(t, "KNUTH-MORRIS-PRATT", f1)
	assert.Equal(t, "BOYER-MOORE", f2)
	assert.Equal(t, "RABIN-KARP", all)
}

func TestResult_FastestEmpty(t *testing.T) {
	_, err := newResult().Fastest()
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestReport(t *testing.T) {
	res := fixedResult(map[string][4]time.Duration{
		"BOYER-MOORE":        {time.Millisecond, time.Microsecond, 2 * time.Millisecond, 0},
		"KNUTH-MORRIS-PRATT": {3 * time.Millisecond, 0, time.Millisecond, 0},
		"RABIN-KARP":         {4 * time.Millisecond, 0, 4 * time.Millisecond, 0},
	})
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, res))
	want := `Algorithm: BOYER-MOORE
File: file1_existing, Time: 0.001000, Index: 1
File: file1_fake, Time: 0.000001, Index: -1
File: file2_existing, Time: 0.002000, Index: 2
File: file2_fake, Time: 0.000000, Index: -1

Algorithm: KNUTH-MORRIS-PRATT
File: file1_existing, Time: 0.003000, Index: 1
File: file1_fake, Time: 0.000000, Index: -1
File: file2_existing, Time: 0.001000, Index: 2
File: file2_fake, Time: 0.000000, Index: -1

Algorithm: RABIN-KARP
File: file1_existing, Time: 0.004000, Index: 1
File: file1_fake, Time: 0.000000, Index: -1
File: file2_existing, Time: 0.004000, Index: 2
File: file2_fake, Time: 0.000000, Index: -1

Fastest algorithm:
For file1: BOYER-MOORE
For file2: KNUTH-MORRIS-PRATT
Overall: BOYER-MOORE
`
	assert.Equal(t, want, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReport_WriteError(t *testing.T) {
	res := fixedResult(map[string][4]time.Duration{})
	assert.EqualError(t, Report(failWriter{}, res), "closed")
}
