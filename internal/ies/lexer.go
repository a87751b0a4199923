package ies

import (
	"strconv"
	"strings"

	"github.com/genortech/photoeng/internal/errs"
)

// tokenStream is a one-shot cursor over the whitespace-delimited numeric
// stream that follows the TILT= line in an IES file (spec.md §4.3). IES
// numbers may be split across lines in any mix of spaces and newlines, so
// the stream is flattened into fields up front.
type tokenStream struct {
	fields []string
	pos    int
}

func newTokenStream(lines []string) *tokenStream {
	var fields []string
	for _, l := range lines {
		fields = append(fields, strings.Fields(l)...)
	}
	return &tokenStream{fields: fields}
}

func (t *tokenStream) next() (string, error) {
	if t.pos >= len(t.fields) {
		return "", errs.NewParseError(errs.UnexpectedEof, 0, "unexpected end of numeric stream")
	}
	v := t.fields[t.pos]
	t.pos++
	return v, nil
}

func (t *tokenStream) float() (float64, error) {
	raw, err := t.next()
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseFloat(raw, 64)
	if perr != nil {
		return 0, errs.NewParseError(errs.InvalidNumber, 0, "invalid number '"+raw+"'")
	}
	return v, nil
}

func (t *tokenStream) integer() (int, error) {
	raw, err := t.next()
	if err != nil {
		return 0, err
	}
	// IES sometimes encodes integer fields with a trailing ".0".
	f, perr := strconv.ParseFloat(raw, 64)
	if perr != nil {
		return 0, errs.NewParseError(errs.InvalidNumber, 0, "invalid integer '"+raw+"'")
	}
	return int(f), nil
}

func (t *tokenStream) floats(n int) ([]float64, error) {
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v, err := t.float()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
