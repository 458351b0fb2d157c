/*
Package dic parses hyphenation dictionaries in the hyph_*.dic format
shipped with Hunspell, LibreOffice and Pyphen.

The format is one pattern per line: letters interleaved with weight
digits ("a5ban"), with '.' anchoring a pattern to a word edge. A line
may carry a nonstandard hyphenation suffix ("ssz1/sz=sz,1,3") and
characters may be escaped as ^^hh hex pairs. The first non-blank line
declares the character set; only UTF-8 files are supported. Lines
starting with '%' or '#' are comments, and all-caps directive lines
(LEFTHYPHENMIN, NEXTLEVEL, ...) are honored where meaningful and
skipped otherwise.
*/
package dic

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	pyphen "github.com/nareshganduri/pyphen-go"
	"github.com/npillmayer/schuko/tracing"
)

var hexEscape = regexp.MustCompile(`\^\^([0-9a-f]{2})`)

// tracer writes to trace with key 'pyphen.dic'
func tracer() tracing.Trace {
	return tracing.Select("pyphen.dic")
}

// Reader streams patterns from one hyph_*.dic file.
type Reader struct {
	scanner    *bufio.Scanner
	sawCharset bool
	leftMin    int
	rightMin   int
}

// NewReader wraps r, which must supply hyph_*.dic content.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// LeftMin returns the LEFTHYPHENMIN declared by the file, or 0. The
// value is only known once the stream has been drained.
func (r *Reader) LeftMin() int { return r.leftMin }

// RightMin returns the RIGHTHYPHENMIN declared by the file, or 0. The
// value is only known once the stream has been drained.
func (r *Reader) RightMin() int { return r.rightMin }

// Next returns the next pattern. It returns io.EOF when the file is
// exhausted.
func (r *Reader) Next() (pyphen.Pattern, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		if !r.sawCharset {
			r.sawCharset = true
			charset := strings.TrimPrefix(line, "charset ")
			if !strings.EqualFold(charset, "UTF-8") {
				return pyphen.Pattern{}, fmt.Errorf("unsupported dictionary charset %q", charset)
			}
			continue
		}
		if handled, err := r.directive(line); handled {
			if err != nil {
				return pyphen.Pattern{}, err
			}
			continue
		}
		p, ok := decodePattern(line)
		if !ok {
			continue // pattern with no weights, nothing to contribute
		}
		return p, nil
	}
	if err := r.scanner.Err(); err != nil {
		return pyphen.Pattern{}, err
	}
	return pyphen.Pattern{}, io.EOF
}

// directive consumes all-caps control lines of the Hunspell dialect.
func (r *Reader) directive(line string) (bool, error) {
	keyword, value, _ := strings.Cut(line, " ")
	for _, c := range keyword {
		if c < 'A' || c > 'Z' {
			return false, nil
		}
	}
	switch keyword {
	case "LEFTHYPHENMIN", "RIGHTHYPHENMIN":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return true, fmt.Errorf("bad %s value %q", keyword, value)
		}
		if keyword == "LEFTHYPHENMIN" {
			r.leftMin = n
		} else {
			r.rightMin = n
		}
	case "COMPOUNDLEFTHYPHENMIN", "COMPOUNDRIGHTHYPHENMIN", "NEXTLEVEL", "NOHYPHEN":
		// recognized but irrelevant to single-word hyphenation
	default:
		return false, nil // a genuine all-caps pattern would land here
	}
	return true, nil
}

// decodePattern turns one pattern line into sequence, weights and
// optional alternative rules. It reports ok=false for lines whose
// weights are all zero.
func decodePattern(line string) (pyphen.Pattern, bool) {
	line = hexEscape.ReplaceAllStringFunc(line, func(m string) string {
		n, _ := strconv.ParseUint(m[2:], 16, 8)
		return string(rune(n))
	})

	var alt *altSpec
	if body, rest, found := strings.Cut(line, "/"); found {
		spec, ok := parseAlt(body, rest)
		if !ok {
			return pyphen.Pattern{}, false
		}
		line, alt = body, spec
	}

	var p pyphen.Pattern
	pending := 0
	for _, ch := range line {
		if ch >= '0' && ch <= '9' {
			pending = int(ch - '0')
			continue
		}
		p.Sequence = append(p.Sequence, ch)
		p.Weights = append(p.Weights, pending)
		pending = 0
	}
	p.Weights = append(p.Weights, pending)

	nonzero := false
	for _, w := range p.Weights {
		if w != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		return pyphen.Pattern{}, false
	}
	if alt != nil {
		p.Alts = make([]*pyphen.AltRule, len(p.Weights))
		for k, w := range p.Weights {
			if w%2 != 0 {
				p.Alts[k] = &pyphen.AltRule{
					Change: alt.change,
					Index:  alt.index - (k + 1),
					Cut:    alt.cut,
				}
			}
		}
	}
	return p, true
}

type altSpec struct {
	change string
	index  int
	cut    int
}

// parseAlt reads the "change,index,cut" suffix of a nonstandard
// pattern. The index is anchored to the pattern start; a leading '.'
// boundary marker shifts it by one.
func parseAlt(pattern, spec string) (*altSpec, bool) {
	fields := strings.Split(spec, ",")
	if len(fields) != 3 {
		return nil, false
	}
	index, err1 := strconv.Atoi(strings.TrimSpace(fields[1]))
	cut, err2 := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err1 != nil || err2 != nil {
		return nil, false
	}
	if strings.HasPrefix(pattern, ".") {
		index++
	}
	return &altSpec{change: fields[0], index: index, cut: cut}, true
}
