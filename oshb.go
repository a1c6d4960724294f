// Package oshb decodes Open Scriptures Hebrew Bible morphology codes into
// grammatical analyses and transliterates pointed Hebrew into Latin text and
// URL-safe slugs.
//
// Every function in the package is pure and safe for concurrent use, except
// SlugScope, which must be owned by a single goroutine per verse.
package oshb

import "fmt"

// builder accumulates an Analysis while a code is being decoded.
type builder struct {
	a Analysis
}

func (b *builder) fail(kind ErrorKind, context, value string) {
	b.a.Errors = append(b.a.Errors, ParseError{Kind: kind, Context: context, Value: value})
}

func (b *builder) tooShort(context, seg string) {
	b.fail(ErrSegmentTooShort, context, seg)
}

// lookup resolves letter c in table. 'x' yields the zero value silently;
// a letter missing from the table is recorded as an error.
func lookup[T any](b *builder, table map[byte]T, field string, c byte) (T, bool) {
	var zero T
	if c == 'x' {
		return zero, false
	}
	v, ok := table[c]
	if !ok {
		b.fail(ErrUnknownCodeValue, field, letter(c))
		return zero, false
	}
	return v, true
}

func letter(c byte) string {
	if c < 0x80 {
		return string(rune(c))
	}
	return fmt.Sprintf("\\x%02x", c)
}

// Decode parses an OSHB morphology code such as "HC/Vqw3ms" into an
// Analysis. It never fails: malformed input leaves fields unset and records
// entries in Analysis.Errors.
func Decode(code string) Analysis {
	b := &builder{a: Analysis{RawCode: code}}
	if code == "" {
		b.fail(ErrEmptyInput, "", "")
		return b.finish()
	}

	lang, rest := splitLanguage(code)
	switch lang {
	case 'H':
		b.a.Language = Hebrew
	case 'A':
		b.a.Language = Aramaic
	default:
		b.fail(ErrUnknownLanguage, "", string(lang))
		b.a.Language = Hebrew
	}

	seg, ok := classify(rest)
	if !ok {
		b.fail(ErrNoSegments, "", "")
		return b.finish()
	}
	if seg.base == "" {
		b.fail(ErrNoBase, "", "")
		return b.finish()
	}

	for _, p := range seg.prefixes {
		b.prefix(p)
	}
	b.base(seg.base)
	for _, s := range seg.suffixes {
		if s == "Td" {
			// Aramaic determined-state marker.
			b.a.State = Determined
			continue
		}
		decodeSuffix(b, s)
	}

	derive(&b.a)
	return b.finish()
}

func (b *builder) finish() Analysis {
	a := b.a
	if a.PrefixPOS == nil {
		a.PrefixPOS = []PartOfSpeech{}
	}
	if a.Errors == nil {
		a.Errors = []ParseError{}
	}
	return a
}

// prefix records the part of speech of a prefix segment and whether it
// carries the definite article (Td, or a particle/preposition fused with it).
func (b *builder) prefix(p string) {
	c := p[0]
	pos, ok := posLetters[c]
	if !ok {
		b.fail(ErrUnknownCodeValue, "prefix part of speech", letter(c))
		pos = PartOfSpeech(letter(c))
	}
	b.a.PrefixPOS = append(b.a.PrefixPOS, pos)

	if len(p) >= 2 && p[1] == 'd' && (c == 'T' || c == 'R') {
		b.a.HasArticle = true
	}
}

// decoders holds one handler per part of speech that may appear as a base.
// Conjunctions, adverbs and prepositions carry no further fields.
var decoders = map[PartOfSpeech]func(b *builder, seg string){
	POSVerb:        decodeVerb,
	POSNoun:        decodeNoun,
	POSAdjective:   decodeAdjective,
	POSPronoun:     decodePronoun,
	POSParticle:    decodeParticle,
	POSSuffix:      decodeSuffix,
	POSConjunction: nil,
	POSAdverb:      nil,
	POSPreposition: nil,
}

func (b *builder) base(seg string) {
	pos, ok := posLetters[seg[0]]
	if !ok {
		b.fail(ErrUnknownBasePOS, "", letter(seg[0]))
		return
	}
	b.a.PartOfSpeech = pos
	if decode := decoders[pos]; decode != nil {
		decode(b, seg)
	}
}
