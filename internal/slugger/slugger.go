// Package slugger turns heading titles into URL-safe slugs, used for ToC
// anchors and, when requested, for output file and folder names.
package slugger

import (
	"strings"
	"sync"

	"github.com/gosimple/slug"
)

// Options control slug formatting.
type Options struct {
	Lower       bool   // lower-case the result
	Replacement string // separator between words, "-" by default
	Locale      string // language hint for transliteration, e.g. "de"
}

// DefaultOptions are the settings used for ToC anchors.
func DefaultOptions() Options {
	return Options{Lower: true, Replacement: "-"}
}

// The slug package configures itself through package-level variables, so
// concurrent Format calls with different options need serializing.
var mu sync.Mutex

// Format slugifies s according to opts.
func (o Options) Format(s string) string {
	mu.Lock()
	defer mu.Unlock()

	prev := slug.Lowercase
	slug.Lowercase = o.Lower
	out := slug.MakeLang(s, o.locale())
	slug.Lowercase = prev

	if o.Replacement != "" && o.Replacement != "-" {
		out = strings.ReplaceAll(out, "-", o.Replacement)
	}
	return out
}

func (o Options) locale() string {
	if o.Locale != "" {
		return o.Locale
	}
	return "en"
}

// Anchor formats a title the way a markdown renderer would derive its
// fragment identifier. ToC anchors always use this, independent of whether
// filename slugification was requested.
func Anchor(s string) string {
	return DefaultOptions().Format(s)
}
