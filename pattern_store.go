package pyphen

import (
	"fmt"
	"io"
	"strings"

	"github.com/derekparker/trie"
)

// patternStore holds all patterns of one dictionary as a longest-match
// index plus an exact-match exception table.
//
// Pattern keys live in a prefix trie whose terminal meta is a dense
// pattern id. The weight vectors are kept out of the trie in one flat
// payload buffer: each non-zero vector entry is packed into one byte,
// high nibble=gap index, low nibble=weight. Nonstandard hyphenation
// rules are rare and sit in a side table keyed by (id, gap index).
type patternStore struct {
	index      *trie.Trie
	maxLen     int // longest pattern key, in runes
	count      int
	skipped    int // malformed records dropped during load
	payload    []byte
	offs       []uint32 // payload offset by pattern id
	lens       []uint8  // payload length by pattern id
	alts       map[uint32]*AltRule
	exceptions map[string][]string // lowercase word => literal segments
}

// gapWeight is one accumulator slot of a break-eligibility vector: the
// strongest weight seen at a gap so far, and the nonstandard rule that
// came with it, if any.
type gapWeight struct {
	val int
	alt *AltRule
}

func newPatternStore() *patternStore {
	return &patternStore{
		index:      trie.New(),
		offs:       make([]uint32, 1), // id 0 stays unused
		lens:       make([]uint8, 1),
		alts:       make(map[uint32]*AltRule),
		exceptions: make(map[string][]string),
	}
}

// loadPatterns drains reader into the store. A record whose weight
// vector does not have exactly len(Sequence)+1 entries is malformed and
// is skipped; the rest of the load proceeds.
func (s *patternStore) loadPatterns(reader PatternReader) error {
	for {
		p, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := s.add(p); err != nil {
			s.skipped++
			tracer().Infof("skipping malformed pattern %q: %v", string(p.Sequence), err)
		}
	}
	tracer().Infof("pattern store: %d patterns (%d skipped), max key length %d",
		s.count, s.skipped, s.maxLen)
	return nil
}

// loadExceptions drains reader into the exception table.
func (s *patternStore) loadExceptions(reader ExceptionReader) error {
	for {
		word, segments, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		s.addException(word, segments)
	}
}

// add stores one pattern, overwriting any previous pattern with the
// same key.
func (s *patternStore) add(p Pattern) error {
	if len(p.Weights) != len(p.Sequence)+1 {
		return fmt.Errorf("weight vector has %d entries for %d characters, want %d",
			len(p.Weights), len(p.Sequence), len(p.Sequence)+1)
	}
	if p.Alts != nil && len(p.Alts) != len(p.Weights) {
		return fmt.Errorf("alternative vector has %d entries, want %d",
			len(p.Alts), len(p.Weights))
	}
	allZero := true
	for _, w := range p.Weights {
		if w != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil // nothing to merge, not worth a trie node
	}
	packed, err := packWeights(p.Weights)
	if err != nil {
		return err
	}
	key := string(p.Sequence)
	var id int
	if node, ok := s.index.Find(key); ok {
		id = node.Meta().(int) // later load overwrites the earlier one
		for rel := range p.Weights {
			delete(s.alts, altKey(id, rel))
		}
	} else {
		id = len(s.offs)
		s.offs = append(s.offs, 0)
		s.lens = append(s.lens, 0)
		s.index.Add(key, id)
		s.count++
		if n := len(p.Sequence); n > s.maxLen {
			s.maxLen = n
		}
	}
	s.offs[id] = uint32(len(s.payload))
	s.lens[id] = uint8(len(packed))
	s.payload = append(s.payload, packed...)
	for rel, alt := range p.Alts {
		if alt != nil && p.Weights[rel]%2 != 0 {
			s.alts[altKey(id, rel)] = alt
		}
	}
	return nil
}

// addException registers one explicit hyphenation, replacing any
// previous entry for the same word.
func (s *patternStore) addException(word string, segments []string) {
	ss := make([]string, len(segments))
	copy(ss, segments)
	s.exceptions[strings.ToLower(word)] = ss
}

// exceptionFor returns the literal segments for word, or nil. The word
// must already be case-folded.
func (s *patternStore) exceptionFor(word string) []string {
	return s.exceptions[word]
}

// longestMatchAt returns the id of the longest pattern matching the
// padded word at offset at. Candidate lengths are scanned downwards
// from the longest loaded key, so the scan is O(maxLen) trie probes.
func (s *patternStore) longestMatchAt(padded []rune, at int) (int, bool) {
	longest := min(s.maxLen, len(padded)-at)
	for l := longest; l >= 1; l-- {
		if node, ok := s.index.Find(string(padded[at : at+l])); ok {
			return node.Meta().(int), true
		}
	}
	return 0, false
}

// mergeInto merges the weight vector of pattern id into acc at absolute
// gap offset at. At each gap the weight of greater magnitude wins;
// equal strength prefers the pattern applied later.
func (s *patternStore) mergeInto(id int, at int, acc []gapWeight) []gapWeight {
	if id <= 0 || id >= len(s.offs) {
		return acc
	}
	base, n := s.offs[id], int(s.lens[id])
	for _, b := range s.payload[base : base+uint32(n)] {
		rel := int(b >> 4)
		val := int(b & 0x0F)
		abs := at + rel
		for abs >= len(acc) {
			acc = append(acc, gapWeight{})
		}
		if magnitude(val) >= magnitude(acc[abs].val) {
			acc[abs] = gapWeight{val: val, alt: s.alts[altKey(id, rel)]}
		}
	}
	return acc
}

func packWeights(weights []int) ([]byte, error) {
	packed := make([]byte, 0, len(weights))
	for rel, val := range weights {
		if val == 0 {
			continue
		}
		if rel > 15 {
			return nil, fmt.Errorf("gap index out of range (0..15): %d", rel)
		}
		if val < 0 || val > 15 {
			return nil, fmt.Errorf("weight out of range (0..15): %d", val)
		}
		packed = append(packed, byte((rel<<4)|val))
	}
	return packed, nil
}

func altKey(id, rel int) uint32 {
	return uint32(id)<<8 | uint32(rel)
}

func magnitude(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
