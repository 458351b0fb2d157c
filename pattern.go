package pyphen

// Pattern is a format-agnostic hyphenation pattern representation.
//
// Sequence is the rune sequence to match, including optional '.'
// boundary markers (for example: ".ab", "für", "4ab."). Weights stores
// Liang weights by gap position and is longer than Sequence by exactly
// one entry: one weight per inter-character gap the pattern covers,
// including the gaps just before and after it.
//
// Alts, when non-nil, runs parallel to Weights and attaches a
// nonstandard hyphenation rule to individual gap positions (see
// AltRule). Standard patterns leave it nil.
type Pattern struct {
	Sequence []rune
	Weights  []int
	Alts     []*AltRule
}

// AltRule describes a nonstandard hyphenation at one break point, as
// found in hyph_*.dic patterns of the form "pattern/change,index,cut".
//
// Change is a template like "sz=sz": the text that replaces part of the
// word around the break, with '=' marking where the hyphen goes. Index
// is the offset of the replaced region relative to the break position,
// and Cut is the number of characters the region spans.
type AltRule struct {
	Change string
	Index  int
	Cut    int
}

// PatternReader yields compiled pattern entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type PatternReader interface {
	Next() (Pattern, error)
}

// ExceptionReader yields hyphenation exceptions one-by-one, each as a
// word together with its literal hyphenated segments (for example
// "table" => ["ta", "ble"]). It should return io.EOF when the stream is
// exhausted.
type ExceptionReader interface {
	Next() (word string, segments []string, err error)
}

// Source supplies raw dictionary data for language tags. It is the
// external loader collaborator of a Registry: Has answers whether a tag
// has a dictionary at all (it drives the fallback-chain walk), and Open
// hands out fresh record streams for one build. The exceptions reader
// may be nil when a format has no exception table.
type Source interface {
	Has(tag string) bool
	Open(tag string) (PatternReader, ExceptionReader, error)
}
