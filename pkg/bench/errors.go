package bench

import "errors"

var (
	ErrCorpusName = errors.New("bench: corpus name is empty, reserved or repeated")
	ErrNoResults  = errors.New("bench: no timings recorded")
)
