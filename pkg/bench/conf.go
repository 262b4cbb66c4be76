package bench

import (
	"strings"

	"github.com/scottcagno/textsearch/pkg/search"
)

const (
	defaultExistingPattern = "пошуку"
	defaultFakePattern     = "fake_pattern"

	existingSuffix = "_existing"
	fakeSuffix     = "_fake"

	// Overall names the selection made on the sum of the existing-pattern timings.
	Overall = "overall"
)

// Corpus is a named text source.
type Corpus struct {
	Name string
	URL  string
}

var defaultCorpora = []Corpus{
	{Name: "file1", URL: "https://drive.google.com/uc?id=18_R5vEQ3eDuy2VdV3K5Lu-R-B-adxXZh"},
	{Name: "file2", URL: "https://drive.google.com/uc?id=13hSt4JkJc11nckZZz2yoFHYL89a4XkMZ"},
}

// Config holds the inputs of a benchmark run
type Config struct {
	Corpora   []Corpus          // texts, in report order
	Existing  string            // a pattern expected to occur in the texts
	Fake      string            // a pattern expected not to occur
	Searchers []search.Searcher // algorithms, in report and tie-break order
}

// DefaultConfig returns a fresh copy of the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpora:   append([]Corpus(nil), defaultCorpora...),
		Existing:  defaultExistingPattern,
		Fake:      defaultFakePattern,
		Searchers: search.Searchers(),
	}
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Corpora: ")
	for i, c := range conf.Corpora {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Name)
		sb.WriteString("=")
		sb.WriteString(c.URL)
	}
	sb.WriteString("\n")
	sb.WriteString("Existing: ")
	sb.WriteString(conf.Existing)
	sb.WriteString("\n")
	sb.WriteString("Fake: ")
	sb.WriteString(conf.Fake)
	sb.WriteString("\n")
	sb.WriteString("Searchers: ")
	for i, s := range conf.Searchers {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// checkConfig fills any missing option with its default and rejects
// patterns that cannot be searched for and corpus names that are empty,
// reserved or repeated.
func checkConfig(conf *Config) (*Config, error) {
	if conf == nil {
		return DefaultConfig(), nil
	}
	if len(conf.Corpora) == 0 {
		conf.Corpora = append([]Corpus(nil), defaultCorpora...)
	}
	seen := make(map[string]bool, len(conf.Corpora))
	for _, c := range conf.Corpora {
		if c.Name == "" || c.Name == Overall || seen[c.Name] {
			return nil, ErrCorpusName
		}
		seen[c.Name] = true
	}
	if len(conf.Searchers) == 0 {
		conf.Searchers = search.Searchers()
	}
	if conf.Existing == "" || conf.Fake == "" {
		return nil, search.ErrEmptyPattern
	}
	return conf, nil
}
