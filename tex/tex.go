/*
Package tex parses hyphenation patterns and exceptions in TeX format.

Patterns are enclosed in between

	\patterns{ % some comment
	 ...
	.wil5i
	.ye4
	4ab.
	a5bal
	 ...
	}

Odd numbers stand for possible discretionary breakpoints, even numbers
forbid hyphenation. Digits belong to the character immediately after
them, i.e.,

	"a5ban" => (a)(5b)(a)(n) => weights["aban"] = [0,5,0,0,0].

Exceptions are hyphenated words enclosed in \hyphenation{...} blocks,
one word per line.

Please refer to

	https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex

for a list of real-world pattern-files.
*/
package tex

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	pyphen "github.com/nareshganduri/pyphen-go"
)

// LoadDictionary loads a pattern dictionary and an exception list in
// TeX format from one source.
//
// Example usage:
//
//	f, _ := os.Open("path/to/patterns/hyph-en-us.tex")
//	defer f.Close()
//
//	dict, err := tex.LoadDictionary("en-us", f)
//
// This will load the patterns and exceptions temporarily into memory.
func LoadDictionary(name string, reader io.Reader, opts ...pyphen.Option) (*pyphen.Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return pyphen.New(name,
		NewPatternReader(bytes.NewReader(data)),
		NewExceptionReader(bytes.NewReader(data)),
		opts...)
}

// PatternReader streams Liang patterns from TeX-style source files.
type PatternReader struct {
	scanner    *bufio.Scanner
	identifier string
	inPatterns bool
	done       bool
}

func NewPatternReader(reader io.Reader) *PatternReader {
	return &PatternReader{scanner: bufio.NewScanner(reader)}
}

// Identifier returns the name the pattern file gives itself through
// \message{...}, once one has been scanned.
func (r *PatternReader) Identifier() string {
	return r.identifier
}

// Next returns the next pattern.
// It returns io.EOF when exhausted.
func (r *PatternReader) Next() (pyphen.Pattern, error) {
	if r.done {
		return pyphen.Pattern{}, io.EOF
	}
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.HasPrefix(line, "%     message: ") {
			r.identifier = line[15:]
			continue
		}
		if strings.HasPrefix(line, "\\message{") {
			r.identifier = strings.TrimSuffix(line[9:], "}")
			continue
		}
		if strings.HasPrefix(line, "\\hyphenation{") {
			skipTeXBlock(r.scanner)
			continue
		}
		if strings.HasPrefix(line, "%") || line == "" {
			continue
		}
		if strings.HasPrefix(line, "\\patterns{") {
			r.inPatterns = true
			continue
		}
		if strings.HasPrefix(line, "}") {
			if r.inPatterns { // closing of patterns block
				r.done = true
				return pyphen.Pattern{}, io.EOF
			}
			continue
		}
		if !r.inPatterns {
			continue
		}
		if p, ok := decodePatternLine(line); ok {
			return p, nil
		}
	}
	if err := r.scanner.Err(); err != nil {
		return pyphen.Pattern{}, err
	}
	if r.inPatterns {
		return pyphen.Pattern{}, errors.New("unexpected end of file (unclosed \\patterns block)")
	}
	return pyphen.Pattern{}, io.EOF
}

func decodePatternLine(line string) (pyphen.Pattern, bool) {
	var p pyphen.Pattern
	pending := 0
	nonzero := false
	for _, ch := range strings.TrimSpace(line) {
		if ch >= '0' && ch <= '9' {
			pending = int(ch - '0')
			nonzero = nonzero || pending != 0
			continue
		}
		p.Sequence = append(p.Sequence, ch)
		p.Weights = append(p.Weights, pending)
		pending = 0
	}
	p.Weights = append(p.Weights, pending)
	return p, len(p.Sequence) > 0 && nonzero
}

// ExceptionReader streams hyphenation exceptions from TeX
// \hyphenation{...} blocks as literal segments.
type ExceptionReader struct {
	scanner *bufio.Scanner
	inBlock bool
	done    bool
}

func NewExceptionReader(reader io.Reader) *ExceptionReader {
	return &ExceptionReader{scanner: bufio.NewScanner(reader)}
}

// Next returns the next exception as (word, segments), e.g.
// ("table", ["ta","ble"]). It returns io.EOF when exhausted.
func (r *ExceptionReader) Next() (string, []string, error) {
	if r.done {
		return "", nil, io.EOF
	}
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, "%") || line == "" {
			continue
		}
		if strings.HasPrefix(line, "\\patterns{") {
			skipTeXBlock(r.scanner)
			continue
		}
		if strings.HasPrefix(line, "\\hyphenation{") {
			r.inBlock = true
			continue
		}
		if strings.HasPrefix(line, "}") {
			if r.inBlock {
				r.done = true
				return "", nil, io.EOF
			}
			continue
		}
		if !r.inBlock {
			continue
		}
		word := strings.ReplaceAll(line, "-", "")
		return word, strings.Split(line, "-"), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	if r.inBlock {
		return "", nil, errors.New("unexpected end of file (unclosed \\hyphenation block)")
	}
	return "", nil, io.EOF
}

func skipTeXBlock(scanner *bufio.Scanner) {
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "}") {
			return
		}
	}
}
