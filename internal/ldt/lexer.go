package ldt

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/genortech/photoeng/internal/errs"
)

// cursor is a one-shot cursor over the lines of an LDT document. LDT is a
// strict line-oriented schema (spec.md §4.1), so no backtracking is ever
// required: each field is read exactly once, in order.
type cursor struct {
	lines []string
	pos   int // 0-based index into lines of the next unread line
}

// decodeBytes tries UTF-8 first, falling back to ISO-8859-1 on invalid
// bytes. No further heuristics.
func decodeBytes(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b) // ISO-8859-1 maps byte value directly to code point
	}
	return string(runes)
}

func newCursor(data []byte) *cursor {
	content := decodeBytes(data)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return &cursor{lines: strings.Split(content, "\n")}
}

// line returns the next physical line, not yet trimmed, consuming it. The
// LDT schema calls for one value per line, so a clean EOF here is always a
// structural error.
func (c *cursor) line() (string, error) {
	if c.pos >= len(c.lines) {
		return "", errs.NewParseError(errs.UnexpectedEof, c.pos+1, "unexpected end of file")
	}
	l := c.lines[c.pos]
	c.pos++
	return l, nil
}

// text reads the next line trimmed of surrounding whitespace. Blank text
// fields (name/identification) are allowed to be empty.
func (c *cursor) text() (string, error) {
	l, err := c.line()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(l), nil
}

// lineNo returns the 1-based line number of the line most recently
// consumed, for error reporting.
func (c *cursor) lineNo() int {
	return c.pos
}

// float reads the next line as a locale-aware float: either '.' or ','
// may be the decimal separator, but the two must never appear together in
// one number (spec.md §9).
func (c *cursor) float() (float64, error) {
	raw, err := c.text()
	if err != nil {
		return 0, err
	}
	return parseLDTFloat(raw, c.lineNo())
}

// integer reads the next line as an int.
func (c *cursor) integer() (int, error) {
	raw, err := c.text()
	if err != nil {
		return 0, err
	}
	v, perr := strconv.Atoi(raw)
	if perr != nil {
		return 0, errs.NewParseError(errs.InvalidNumber, c.lineNo(), "expected integer, got '"+raw+"'")
	}
	return v, nil
}

// floats reads n consecutive float lines.
func (c *cursor) floats(n int) ([]float64, error) {
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v, err := c.float()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseLDTFloat normalizes the European/American decimal separator
// ambiguity: any single ',' between digits is a decimal point, never a
// thousands separator, and mixing ',' and '.' in one token is rejected.
func parseLDTFloat(s string, line int) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.NewParseError(errs.InvalidNumber, line, "empty numeric field")
	}
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	if hasComma && hasDot {
		return 0, errs.NewParseError(errs.InvalidNumber, line, "mixed ',' and '.' in number '"+s+"'")
	}
	if hasComma {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errs.NewParseError(errs.InvalidNumber, line, "invalid number '"+s+"'")
	}
	return v, nil
}
