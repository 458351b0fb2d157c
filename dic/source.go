package dic

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	pyphen "github.com/nareshganduri/pyphen-go"
)

// Load parses one dictionary in hyph_*.dic format into a ready-to-use
// Dictionary. Margins declared by the file (LEFTHYPHENMIN and friends)
// are applied first; explicit options override them.
func Load(name string, r io.Reader, opts ...pyphen.Option) (*pyphen.Dictionary, error) {
	reader := NewReader(r)
	d, err := pyphen.New(name, reader, nil)
	if err != nil {
		return nil, err
	}
	d = d.Derive(reader.LeftMin(), reader.RightMin())
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// LoadFile parses the dictionary file at path. The language tag in the
// file name (hyph_<tag>.dic) becomes the dictionary identifier.
func LoadFile(path string, opts ...pyphen.Option) (*pyphen.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(path), "hyph_"), ".dic")
	return Load(name, bytes.NewReader(data), opts...)
}

// DirSource locates hyph_<tag>.dic files in one directory and serves
// them to a pyphen.Registry. The directory is scanned once at
// construction; the files themselves are read lazily per build.
type DirSource struct {
	paths map[string]string // tag => file path
}

// NewDirSource scans dir for hyph_*.dic files.
func NewDirSource(dir string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	s := &DirSource{paths: make(map[string]string)}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "hyph_") || !strings.HasSuffix(name, ".dic") {
			continue
		}
		tag := strings.TrimSuffix(strings.TrimPrefix(name, "hyph_"), ".dic")
		s.paths[tag] = filepath.Join(dir, name)
	}
	tracer().Infof("dictionary source: %d languages under %s", len(s.paths), dir)
	return s, nil
}

// Has reports whether a dictionary file exists for tag.
func (s *DirSource) Has(tag string) bool {
	_, ok := s.paths[tag]
	return ok
}

// Open returns fresh record streams for tag. The dic format has no
// exception table, so the exception reader is always nil.
func (s *DirSource) Open(tag string) (pyphen.PatternReader, pyphen.ExceptionReader, error) {
	path, ok := s.paths[tag]
	if !ok {
		return nil, nil, fmt.Errorf("no dictionary file for tag %q", tag)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(bytes.NewReader(data)), nil, nil
}

// Tags returns all available language tags, sorted.
func (s *DirSource) Tags() []string {
	tags := make([]string, 0, len(s.paths))
	for tag := range s.paths {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
