package oshb

// A field consumes one positional feature letter.
type field func(b *builder, c byte)

func person(b *builder, c byte) {
	if v, ok := lookup(b, persons, "person", c); ok {
		b.a.Person = v
	}
}

func gender(b *builder, c byte) {
	if v, ok := lookup(b, genders, "gender", c); ok {
		b.a.Gender = v
	}
}

func number(b *builder, c byte) {
	if v, ok := lookup(b, numbers, "number", c); ok {
		b.a.Number = v
	}
}

func state(b *builder, c byte) {
	if v, ok := lookup(b, states, "state", c); ok {
		b.a.State = v
	}
}

func suffixPerson(b *builder, c byte) {
	if v, ok := lookup(b, persons, "suffix person", c); ok {
		b.a.SuffixPerson = v
	}
}

func suffixGender(b *builder, c byte) {
	if v, ok := lookup(b, genders, "suffix gender", c); ok {
		b.a.SuffixGender = v
	}
}

func suffixNumber(b *builder, c byte) {
	if v, ok := lookup(b, numbers, "suffix number", c); ok {
		b.a.SuffixNumber = v
	}
}

// read applies fields to the letters of seg starting at offset start.
// A segment that ends early records one "too short" error and keeps what
// was read so far.
func (b *builder) read(seg, context string, start int, fields ...field) {
	for i, f := range fields {
		if start+i >= len(seg) {
			b.tooShort(context, seg)
			return
		}
		f(b, seg[start+i])
	}
}

// readOptional is read for trailing fields that may be omitted entirely.
func (b *builder) readOptional(seg string, start int, fields ...field) {
	for i, f := range fields {
		if start+i >= len(seg) {
			return
		}
		f(b, seg[start+i])
	}
}

// decodeVerb reads V<stem><conjugation> followed by person/gender/number
// for finite forms or gender/number/state for participles.
func decodeVerb(b *builder, seg string) {
	if len(seg) < 2 {
		b.tooShort("verb", seg)
		return
	}
	if v, ok := lookup(b, stemsFor(b.a.Language), "verb stem", seg[1]); ok {
		b.a.Binyan = v
	}
	if len(seg) < 3 {
		b.tooShort("verb", seg)
		return
	}

	conj, ok := lookup(b, conjugations, "verb conjugation", seg[2])
	if !ok {
		// Without a conjugation the layout of the remaining letters is unknown.
		return
	}
	b.a.Conjugation = conj

	switch conj {
	case ConjParticipleActive, ConjParticiplePassive:
		b.read(seg, "participle", 3, gender, number, state)
	case ConjInfinitiveAbsolute, ConjInfinitiveConstruct:
	default:
		b.read(seg, "verb", 3, person, gender, number)
	}
}

// decodeNoun reads N<type><gender><number><state>. Proper names stop after
// the type letter.
func decodeNoun(b *builder, seg string) {
	if len(seg) < 2 {
		b.tooShort("noun", seg)
		return
	}
	if v, ok := lookup(b, nounTypes, "noun type", seg[1]); ok {
		b.a.Subtype = v
	}
	if seg[1] == 'p' {
		return
	}
	b.read(seg, "noun", 2, gender, number, state)
}

// decodeAdjective reads A<type><gender><number><state>.
func decodeAdjective(b *builder, seg string) {
	if len(seg) < 2 {
		b.tooShort("adjective", seg)
		return
	}
	if v, ok := lookup(b, adjectiveTypes, "adjective type", seg[1]); ok {
		b.a.Subtype = v
	}
	b.read(seg, "adjective", 2, gender, number, state)
}

// decodePronoun reads P<type><person><gender><number>. Indefinite pronouns
// stop after the type letter; interrogative, relative and unspecified ones
// may omit the trailing letters.
func decodePronoun(b *builder, seg string) {
	if len(seg) < 2 {
		b.tooShort("pronoun", seg)
		return
	}
	if v, ok := lookup(b, pronounTypes, "pronoun type", seg[1]); ok {
		b.a.Subtype = v
	}
	switch seg[1] {
	case 'f':
	case 'p', 'd':
		b.read(seg, "pronoun", 2, person, gender, number)
	default:
		b.readOptional(seg, 2, person, gender, number)
	}
}

// decodeParticle reads T[<type>]. A bare T is a particle of unspecified type.
func decodeParticle(b *builder, seg string) {
	if len(seg) < 2 {
		return
	}
	if v, ok := lookup(b, particleTypes, "particle type", seg[1]); ok {
		b.a.Subtype = v
	}
}

// decodeSuffix reads S<type>: directional he, paragogic he or nun, or a
// pronominal suffix followed by person/gender/number.
func decodeSuffix(b *builder, seg string) {
	if len(seg) < 2 {
		b.tooShort("suffix", seg)
		return
	}
	switch seg[1] {
	case 'd':
		b.a.HasDirectionalHe = true
	case 'h':
		b.a.HasParagogicHe = true
	case 'n':
		b.a.HasParagogicNun = true
	case 'p':
		b.a.HasPronominalSuffix = true
		b.read(seg, "pronominal suffix", 2, suffixPerson, suffixGender, suffixNumber)
	default:
		b.fail(ErrUnknownCodeValue, "suffix type", letter(seg[1]))
	}
}
