/*
Package pyphen hyphenates words with Liang-style pattern dictionaries.

The algorithm is the one described by Frank Liang
(F.M.Liang http://www.tug.org/docs/liang/) and used by TeX and by the
Hunspell/LibreOffice hyphenation dictionaries: weighted substring
patterns are overlaid onto a word padded with boundary markers, the
strongest weight wins at each inter-letter gap, and a gap with an odd
accumulated weight is a legal break point.

The package is split into a pure in-memory core and format adapters.
The core consumes already-parsed pattern and exception records through
the PatternReader and ExceptionReader interfaces; subpackages dic and
tex parse the two common on-disk dictionary formats and feed those
interfaces. A Dictionary wraps one loaded pattern set with left/right
margin configuration and offers three views on a word's break points:
Inserted (hyphen markers), Wrap (best break for a width) and Iterate
(all splits, rightmost first). A Registry resolves language tags through
their fallback chain (nl_NL_variant1 -> nl_NL -> nl) and caches one
built Dictionary per resolved tag.

Further Reading

	https://pyphen.org/
	https://nedbatchelder.com/code/modules/hyphenate.html   (Python implementation)
	http://www.mnn.ch/hyph/hyphenation2.html  / https://github.com/mnater/hyphenator

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package pyphen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pyphen'
func tracer() tracing.Trace {
	return tracing.Select("pyphen")
}
