package pyphen

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// boundary is the marker conceptually surrounding every word before
// pattern matching, so that patterns can anchor to word edges.
const boundary = '.'

// engine computes break eligibility for words against one pattern
// store. It is immutable after construction and safe for concurrent
// use.
type engine struct {
	store *patternStore
}

// Break is one legal break point inside a word: Position is the number
// of runes before the break. Alt is non-nil when the winning pattern
// demands a nonstandard spelling change around the break.
type Break struct {
	Position int
	Alt      *AltRule
}

// fold normalizes a word to the store's lowercase convention.
func fold(word string) string {
	return cases.Lower(language.Und).String(word)
}

// breaks returns all break points of word, leftmost first, without
// margin filtering. An exception entry overrides the patterns for its
// exact word. Words without matching patterns yield an empty set.
func (e *engine) breaks(word string) []Break {
	folded := fold(word)
	if segments := e.store.exceptionFor(folded); segments != nil {
		return exceptionBreaks(segments)
	}
	runes := []rune(folded)
	padded := make([]rune, 0, len(runes)+2)
	padded = append(padded, boundary)
	padded = append(padded, runes...)
	padded = append(padded, boundary)

	// One accumulator slot per gap of the padded word, including the
	// outermost gaps. Gap g sits just before padded[g].
	acc := make([]gapWeight, len(padded)+1)
	for i := range padded {
		if id, ok := e.store.longestMatchAt(padded, i); ok {
			acc = e.store.mergeInto(id, i, acc)
		}
	}

	// Gap g of the padded word is gap g-1 of the bare word; only the
	// interior gaps 1..len-1 can break. Odd accumulated weight means
	// the break is legal.
	var bb []Break
	for g := 2; g <= len(runes); g++ {
		if acc[g].val%2 != 0 {
			bb = append(bb, Break{Position: g - 1, Alt: acc[g].alt})
		}
	}
	return bb
}

// exceptionBreaks converts literal segments into break positions.
func exceptionBreaks(segments []string) []Break {
	if len(segments) < 2 {
		return nil
	}
	bb := make([]Break, 0, len(segments)-1)
	pos := 0
	for _, segment := range segments[:len(segments)-1] {
		pos += utf8.RuneCountInString(segment)
		bb = append(bb, Break{Position: pos})
	}
	return bb
}
