package pyphen

import (
	"strings"
	"testing"
)

// dutchPatterns is a miniature nl_NL pattern set sufficient for the
// reference words used throughout these tests.
func dutchPatterns() []Pattern {
	return []Pattern{
		pattern("uto", 0, 1, 0, 0),
		pattern("oba", 0, 1, 0, 0),
		pattern("dve", 0, 1, 0, 0),
		pattern("nti", 0, 1, 0, 0),
		pattern("ldo", 0, 1, 0, 0),
		pattern("pje", 0, 1, 0, 0),
		pattern("tte", 0, 1, 0, 0),
		pattern("rgr", 0, 1, 0, 0),
		pattern("epe", 0, 1, 0, 0),
		pattern("mst", 0, 1, 0, 0),
		pattern("rda", 0, 1, 0, 0),
	}
}

func dutchDictionary(t *testing.T, opts ...Option) *Dictionary {
	t.Helper()
	dict, err := New("nl_NL", &slicePatternReader{entries: dutchPatterns()}, nil, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return dict
}

func TestInserted(t *testing.T) {
	dict := dutchDictionary(t)
	if got := dict.Inserted("lettergrepen"); got != "let-ter-gre-pen" {
		t.Fatalf("lettergrepen should be let-ter-gre-pen, is %s", got)
	}
}

func TestInsertedWith(t *testing.T) {
	dict := dutchDictionary(t)
	if got := dict.InsertedWith("lettergrepen", "."); got != "let.ter.gre.pen" {
		t.Fatalf("lettergrepen should be let.ter.gre.pen, is %s", got)
	}
}

func TestInsertedUpper(t *testing.T) {
	dict := dutchDictionary(t)
	if got := dict.Inserted("LETTERGREPEN"); got != "LET-TER-GRE-PEN" {
		t.Fatalf("LETTERGREPEN should be LET-TER-GRE-PEN, is %s", got)
	}
}

func TestWrap(t *testing.T) {
	dict := dutchDictionary(t)
	front, back, ok := dict.Wrap("autobandventieldopje", 11)
	if !ok {
		t.Fatalf("expected a wrap for width 11")
	}
	if front != "autoband-" || back != "ventieldopje" {
		t.Fatalf("wrap mismatch: got (%q, %q)", front, back)
	}
}

func TestWrapTakesLongestFit(t *testing.T) {
	dict := dutchDictionary(t)
	front, back, ok := dict.Wrap("autobandventieldopje", 100)
	if !ok || front != "autobandventieldop-" || back != "je" {
		t.Fatalf("wrap mismatch: got (%q, %q, %v)", front, back, ok)
	}
	// The hyphen counts against the width: a break at 3 characters
	// needs width 4.
	if _, _, ok := dict.Wrap("lettergrepen", 3); ok {
		t.Fatalf("no prefix with hyphen fits in width 3")
	}
	front, _, ok = dict.Wrap("lettergrepen", 4)
	if !ok || front != "let-" {
		t.Fatalf("wrap mismatch: got (%q, %v)", front, ok)
	}
}

func TestWrapNoFit(t *testing.T) {
	dict := dutchDictionary(t)
	if _, _, ok := dict.Wrap("pen", 2); ok {
		t.Fatalf("a word without break points must not wrap")
	}
}

func TestIterate(t *testing.T) {
	dict := dutchDictionary(t)
	it := dict.Iterate("Amsterdam")
	front, back, ok := it.Next()
	if !ok || front != "Amster" || back != "dam" {
		t.Fatalf("first split mismatch: got (%q, %q, %v)", front, back, ok)
	}
	front, back, ok = it.Next()
	if !ok || front != "Am" || back != "sterdam" {
		t.Fatalf("second split mismatch: got (%q, %q, %v)", front, back, ok)
	}
	if _, _, ok := it.Next(); ok {
		t.Fatalf("iterator should be exhausted after two splits")
	}
	if _, _, ok := it.Next(); ok {
		t.Fatalf("an exhausted iterator stays exhausted")
	}
}

func TestIterateRestartable(t *testing.T) {
	dict := dutchDictionary(t)
	collect := func(it *BreakIterator) []string {
		var splits []string
		for front, back, ok := it.Next(); ok; front, back, ok = it.Next() {
			splits = append(splits, front+"|"+back)
		}
		return splits
	}
	it := dict.Iterate("autobandventieldopje")
	first := collect(it)
	it.Reset()
	second := collect(it)
	third := collect(dict.Iterate("autobandventieldopje"))
	if strings.Join(first, " ") != strings.Join(second, " ") {
		t.Fatalf("Reset changed the sequence: %v vs %v", first, second)
	}
	if strings.Join(first, " ") != strings.Join(third, " ") {
		t.Fatalf("independent iterators disagree: %v vs %v", first, third)
	}
	if len(first) != it.Len() {
		t.Fatalf("Len reports %d, iterator yielded %d", it.Len(), len(first))
	}
}

func TestIterateOrderAndConsistency(t *testing.T) {
	dict := dutchDictionary(t)
	for _, word := range []string{"lettergrepen", "autobandventieldopje", "amsterdam"} {
		var fromIterate []int
		it := dict.Iterate(word)
		prev := len(word) + 1
		for front, _, ok := it.Next(); ok; front, _, ok = it.Next() {
			if len(front) >= prev {
				t.Fatalf("%s: splits not in strictly decreasing front length", word)
			}
			prev = len(front)
			fromIterate = append(fromIterate, len(front))
		}
		var fromInserted []int
		pos := 0
		segments := strings.Split(dict.Inserted(word), "-")
		for _, segment := range segments[:len(segments)-1] {
			pos += len(segment)
			fromInserted = append(fromInserted, pos)
		}
		for i, j := 0, len(fromInserted)-1; i < j; i, j = i+1, j-1 {
			fromInserted[i], fromInserted[j] = fromInserted[j], fromInserted[i]
		}
		if len(fromIterate) != len(fromInserted) {
			t.Fatalf("%s: iterate and inserted disagree: %v vs %v", word, fromIterate, fromInserted)
		}
		for i := range fromIterate {
			if fromIterate[i] != fromInserted[i] {
				t.Fatalf("%s: iterate and inserted disagree: %v vs %v", word, fromIterate, fromInserted)
			}
		}
	}
}

func TestInsertedRoundTrip(t *testing.T) {
	dict := dutchDictionary(t)
	words := []string{
		"lettergrepen", "autobandventieldopje", "Amsterdam",
		"pen", "a", "", "xyzzy", "AUTOBANDVENTIELDOPJE",
	}
	for _, word := range words {
		if got := strings.ReplaceAll(dict.Inserted(word), "-", ""); got != word {
			t.Fatalf("insertion corrupted %q -> %q", word, got)
		}
	}
}

func TestMargins(t *testing.T) {
	dict := dutchDictionary(t)
	if got := dutchDictionary(t, WithLeftMin(4)).Inserted("lettergrepen"); got != "letter-gre-pen" {
		t.Fatalf("left=4 should give letter-gre-pen, is %s", got)
	}
	if got := dutchDictionary(t, WithRightMin(4)).Inserted("lettergrepen"); got != "let-ter-grepen" {
		t.Fatalf("right=4 should give let-ter-grepen, is %s", got)
	}
	if got := dict.Derive(4, 4).Inserted("lettergrepen"); got != "letter-grepen" {
		t.Fatalf("left=right=4 should give letter-grepen, is %s", got)
	}
	if derived := dict.Derive(4, 0); derived.eng != dict.eng {
		t.Fatalf("derived dictionaries must share the engine")
	}
}

func TestShortWordHasNoBreaks(t *testing.T) {
	// "tte" matches inside "tte" itself, but both margins cannot be
	// satisfied in a 3-letter word.
	dict := dutchDictionary(t)
	if breaks := dict.Positions("tte"); len(breaks) != 0 {
		t.Fatalf("expected no break points, got %v", breaks)
	}
	if got := dict.Inserted("ab"); got != "ab" {
		t.Fatalf("short word must come back unchanged, got %q", got)
	}
	if it := dict.Iterate("ab"); it.Len() != 0 {
		t.Fatalf("short word must yield an empty iterator")
	}
	if breaks := dict.Positions("12345?"); len(breaks) != 0 {
		t.Fatalf("non-alphabetic words have no break points, got %v", breaks)
	}
}

func TestExceptionOverridesPatterns(t *testing.T) {
	patterns := &slicePatternReader{entries: []Pattern{
		pattern("bl", 0, 1, 0), // would suggest tab-le
	}}
	exceptions := &sliceExceptionReader{entries: []exceptionEntry{
		{word: "table", segments: []string{"ta", "ble"}},
	}}
	dict, err := New("exceptions", patterns, exceptions)
	if err != nil {
		t.Fatal(err)
	}
	if got := dict.Inserted("table"); got != "ta-ble" {
		t.Fatalf("table should be ta-ble, is %s", got)
	}
	if got := dict.Inserted("cable"); got != "cab-le" {
		t.Fatalf("cable has no exception and should follow patterns, is %s", got)
	}
}

func TestNonstandardHyphenation(t *testing.T) {
	alt := &AltRule{Change: "sz=sz", Index: -1, Cut: 3}
	patterns := &slicePatternReader{entries: []Pattern{
		pattern("uli", 0, 1, 0, 0),
		{Sequence: []rune("ssz"), Weights: []int{0, 1, 0, 0}, Alts: []*AltRule{nil, alt, nil, nil}},
	}}
	dict, err := New("hu", patterns, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := dict.Inserted("kulissza"); got != "ku-lisz-sza" {
		t.Fatalf("kulissza should be ku-lisz-sza, is %s", got)
	}
	it := dict.Iterate("kulissza")
	if front, back, ok := it.Next(); !ok || front != "kulisz" || back != "sza" {
		t.Fatalf("first split mismatch: got (%q, %q, %v)", front, back, ok)
	}
	if front, back, ok := it.Next(); !ok || front != "ku" || back != "lissza" {
		t.Fatalf("second split mismatch: got (%q, %q, %v)", front, back, ok)
	}
	if _, _, ok := it.Next(); ok {
		t.Fatalf("iterator should be exhausted")
	}
	if got := dict.Inserted("KULISSZA"); got != "KU-LISZ-SZA" {
		t.Fatalf("KULISSZA should be KU-LISZ-SZA, is %s", got)
	}
}

func TestUmlautPatterns(t *testing.T) {
	patterns := &slicePatternReader{entries: []Pattern{
		pattern("für", 0, 0, 1, 0),
	}}
	dict, err := New("de", patterns, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := dict.Inserted("fürung"); got != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, is %s", got)
	}
}
