package pyphen

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Errors surfaced by Registry.Get. Both wrap the offending tag; match
// them with errors.Is.
var (
	ErrUnknownLanguage = errors.New("no dictionary for language")
	ErrDictionaryLoad  = errors.New("dictionary load failed")
)

// Registry caches one built Dictionary per resolved language tag for
// the life of the process. Dictionaries are small and finite in number,
// so entries are never evicted.
//
// A Registry is an explicit instance rather than package state, so
// tests and embedders can run several independent ones.
type Registry struct {
	source Source
	opts   []Option

	mu    sync.Mutex
	dicts map[string]*Dictionary
}

// NewRegistry creates a registry over the given dictionary source.
// The options are applied to every dictionary the registry builds.
func NewRegistry(source Source, opts ...Option) *Registry {
	return &Registry{
		source: source,
		opts:   opts,
		dicts:  make(map[string]*Dictionary),
	}
}

// Resolve maps tag to the most specific tag of its fallback chain for
// which the source has data, using truncation inheritance: trailing
// underscore-separated segments are dropped one by one
// (nl_NL_variant1 -> nl_NL -> nl) until a dictionary is available.
// Hyphens count as underscores, so BCP-47 spellings work too.
//
// http://www.unicode.org/reports/tr35/#Locale_Inheritance
func (r *Registry) Resolve(tag string) (string, bool) {
	parts := strings.Split(strings.ReplaceAll(tag, "-", "_"), "_")
	for len(parts) > 0 {
		candidate := strings.Join(parts, "_")
		if r.source.Has(candidate) {
			return candidate, true
		}
		parts = parts[:len(parts)-1]
	}
	return "", false
}

// Get returns the shared Dictionary for tag, building it on first use.
// Tags resolving to the same canonical tag share one instance.
//
// Concurrent calls serialize around the build, so every dictionary is
// built at most once; afterwards all callers observe the same
// immutable instance.
func (r *Registry) Get(tag string) (*Dictionary, error) {
	canonical, ok := r.Resolve(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, tag)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.dicts[canonical]; ok {
		return d, nil
	}
	patterns, exceptions, err := r.source.Open(canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDictionaryLoad, canonical, err)
	}
	d, err := New(canonical, patterns, exceptions, r.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDictionaryLoad, canonical, err)
	}
	r.dicts[canonical] = d
	tracer().Infof("registry: built dictionary %q", canonical)
	return d, nil
}
