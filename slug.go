package oshb

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// reNonSlug matches every run of characters that may not appear in a slug.
var reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// foldASCII strips combining marks from Latin text passed through by the
// transliterator ("é" becomes "e").
func foldASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slug returns the URL-safe form of Hebrew surface text: lowercase ASCII
// letters and digits joined by single hyphens. It may be empty.
func Slug(text string) string {
	s := strings.ToLower(foldASCII(Transliterate(text)))
	s = reNonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugScope tracks the slugs already handed out within one verse.
// It is not safe for concurrent use; a verse's words must be slugged in
// ascending position order by a single owner.
type SlugScope struct {
	seen map[string]int
}

// NewSlugScope returns an empty scope for one verse.
func NewSlugScope() *SlugScope {
	return &SlugScope{seen: make(map[string]int)}
}

// Next registers one more occurrence of base and returns it unchanged the
// first time, then base-2, base-3 and so on.
func (s *SlugScope) Next(base string) string {
	s.seen[base]++
	if n := s.seen[base]; n > 1 {
		return base + "-" + strconv.Itoa(n)
	}
	return base
}

// Slugify returns the slug of the word at position within its verse.
// Text that transliterates to nothing falls back to "word-<position>".
// A nil scope disables de-duplication.
func Slugify(text string, scope *SlugScope, position int) string {
	base := Slug(text)
	if base == "" {
		base = FallbackSlug(position)
	}
	if scope == nil {
		return base
	}
	return scope.Next(base)
}

// FallbackSlug is the placeholder used for a word with no transliteration.
func FallbackSlug(position int) string {
	return "word-" + strconv.Itoa(position)
}
