package pyphen

import (
	"strings"
	"unicode/utf8"
)

// Default margins: the minimum number of characters kept at the start
// and at the end of a hyphenated word. These are the values Pyphen and
// most TeX language files use.
const (
	DefaultLeftMin  = 2
	DefaultRightMin = 2
)

// Dictionary is a loaded hyphenation dictionary together with its
// margin configuration. Once built it is immutable and may be shared
// freely across goroutines.
type Dictionary struct {
	eng        *engine
	left       int
	right      int
	Identifier string // Identifies the dictionary
}

// Option configures a Dictionary under construction.
type Option func(*Dictionary)

// WithLeftMin sets the minimum number of characters in the first
// segment of a hyphenated word. Values below 1 are ignored.
func WithLeftMin(n int) Option {
	return func(d *Dictionary) {
		if n >= 1 {
			d.left = n
		}
	}
}

// WithRightMin sets the minimum number of characters in the last
// segment of a hyphenated word. Values below 1 are ignored.
func WithRightMin(n int) Option {
	return func(d *Dictionary) {
		if n >= 1 {
			d.right = n
		}
	}
}

// New builds a Dictionary from streaming, format-agnostic record
// sources. The exceptions reader may be nil.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package dic or package tex to parse concrete formats
// and feed this API.
//
// Malformed pattern records (weight vector length not equal to the
// pattern length plus one) are skipped; all other records still load.
func New(name string, patterns PatternReader, exceptions ExceptionReader, opts ...Option) (*Dictionary, error) {
	store := newPatternStore()
	if patterns != nil {
		if err := store.loadPatterns(patterns); err != nil {
			return nil, err
		}
	}
	if exceptions != nil {
		if err := store.loadExceptions(exceptions); err != nil {
			return nil, err
		}
	}
	d := &Dictionary{
		eng:        &engine{store: store},
		left:       DefaultLeftMin,
		right:      DefaultRightMin,
		Identifier: name,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Derive returns a Dictionary that shares this dictionary's patterns
// and exceptions but applies different margins. Values below 1 keep
// the receiver's margin.
func (d *Dictionary) Derive(left, right int) *Dictionary {
	dd := &Dictionary{
		eng:        d.eng,
		left:       d.left,
		right:      d.right,
		Identifier: d.Identifier,
	}
	if left >= 1 {
		dd.left = left
	}
	if right >= 1 {
		dd.right = right
	}
	return dd
}

// LeftMin returns the minimum length of the first segment.
func (d *Dictionary) LeftMin() int { return d.left }

// RightMin returns the minimum length of the last segment.
func (d *Dictionary) RightMin() int { return d.right }

// Positions returns the margin-valid break points of word, leftmost
// first. Words shorter than both margins combined, and words no
// pattern matches, yield an empty result.
func (d *Dictionary) Positions(word string) []Break {
	n := utf8.RuneCountInString(word)
	var bb []Break
	for _, br := range d.eng.breaks(word) {
		if br.Position >= d.left && br.Position <= n-d.right {
			bb = append(bb, br)
		}
	}
	return bb
}

// Inserted returns word with a hyphen inserted at every legal break
// point.
//
// Example:
//
//	"lettergrepen" => "let-ter-gre-pen".
func (d *Dictionary) Inserted(word string) string {
	return d.InsertedWith(word, "-")
}

// InsertedWith returns word with hyphen inserted at every legal break
// point. The original spelling of word is preserved; matching happens
// on a case-folded copy.
func (d *Dictionary) InsertedWith(word, hyphen string) string {
	runes := []rune(word)
	upper := isUpper(word)
	positions := d.Positions(word)
	for i := len(positions) - 1; i >= 0; i-- { // right to left keeps positions stable
		br := positions[i]
		if br.Alt != nil {
			change := br.Alt.Change
			if upper {
				change = strings.ToUpper(change)
			}
			idx := br.Position + br.Alt.Index
			if idx < 0 {
				idx += len(runes)
			}
			replacement := strings.ReplaceAll(change, "=", hyphen)
			runes = splice(runes, idx, br.Alt.Cut, []rune(replacement))
		} else {
			runes = splice(runes, br.Position, 0, []rune(hyphen))
		}
	}
	return string(runes)
}

// Wrap finds the hyphenation of word that best fits width: the break
// whose first part, hyphen included, is the longest not exceeding
// width. It returns ok=false when no legal break fits.
func (d *Dictionary) Wrap(word string, width int) (front, back string, ok bool) {
	return d.WrapWith(word, width, "-")
}

// WrapWith is Wrap with a custom hyphen string appended to the first
// part. Width is measured in runes, hyphen included.
func (d *Dictionary) WrapWith(word string, width int, hyphen string) (front, back string, ok bool) {
	width -= utf8.RuneCountInString(hyphen)
	it := d.Iterate(word)
	for f, b, more := it.Next(); more; f, b, more = it.Next() {
		if utf8.RuneCountInString(f) <= width {
			return f + hyphen, b, true
		}
	}
	return "", "", false
}

// Iterate returns an iterator over all hyphenation possibilities of
// word, the longest first part first. Every call builds an independent
// iterator; the break points are computed once per call, not per step.
func (d *Dictionary) Iterate(word string) *BreakIterator {
	it := &BreakIterator{
		word:   []rune(word),
		upper:  isUpper(word),
		breaks: d.Positions(word),
	}
	it.Reset()
	return it
}

func isUpper(word string) bool {
	return word == strings.ToUpper(word)
}

// splice replaces cut runes of word at idx with repl, inserting when
// cut is zero.
func splice(word []rune, idx, cut int, repl []rune) []rune {
	out := make([]rune, 0, len(word)-cut+len(repl))
	out = append(out, word[:idx]...)
	out = append(out, repl...)
	out = append(out, word[idx+cut:]...)
	return out
}
