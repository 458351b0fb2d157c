package pyphen

import "strings"

// BreakIterator enumerates the hyphenation splits of one word from the
// rightmost legal break point to the leftmost, the natural order when
// shrinking a word to fit a line. The sequence is finite and the
// iterator is restartable; iterators never share cursor state.
type BreakIterator struct {
	word   []rune
	upper  bool
	breaks []Break
	cursor int
}

// Next returns the next (front, back) split, or ok=false when the
// sequence is exhausted.
func (it *BreakIterator) Next() (front, back string, ok bool) {
	if it.cursor < 0 {
		return "", "", false
	}
	br := it.breaks[it.cursor]
	it.cursor--
	if br.Alt != nil {
		change := br.Alt.Change
		if it.upper {
			change = strings.ToUpper(change)
		}
		c1, c2, _ := strings.Cut(change, "=")
		idx := br.Position + br.Alt.Index
		if idx < 0 {
			idx += len(it.word)
		}
		front = string(it.word[:idx]) + c1
		back = c2 + string(it.word[idx+br.Alt.Cut:])
		return front, back, true
	}
	front = string(it.word[:br.Position])
	back = string(it.word[br.Position:])
	return front, back, true
}

// Reset rewinds the iterator to the rightmost break point.
func (it *BreakIterator) Reset() {
	it.cursor = len(it.breaks) - 1
}

// Len returns the number of splits the iterator yields in total.
func (it *BreakIterator) Len() int {
	return len(it.breaks)
}
