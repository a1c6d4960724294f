package oshb

// Language is the language tag carried by the first character of a code.
type Language string

const (
	Hebrew  Language = "hebrew"
	Aramaic Language = "aramaic"
)

// PartOfSpeech is the grammatical category selected by a segment's first letter.
type PartOfSpeech string

const (
	POSAdjective   PartOfSpeech = "adjective"
	POSConjunction PartOfSpeech = "conjunction"
	POSAdverb      PartOfSpeech = "adverb"
	POSNoun        PartOfSpeech = "noun"
	POSPronoun     PartOfSpeech = "pronoun"
	POSPreposition PartOfSpeech = "preposition"
	POSSuffix      PartOfSpeech = "suffix"
	POSParticle    PartOfSpeech = "particle"
	POSVerb        PartOfSpeech = "verb"
)

// Subtype refines a noun, adjective, pronoun or particle.
type Subtype string

const (
	SubtypeCommon     Subtype = "common"
	SubtypeGentilic   Subtype = "gentilic"
	SubtypeProperName Subtype = "proper_name"

	SubtypeAdjective      Subtype = "adjective"
	SubtypeCardinalNumber Subtype = "cardinal_number"
	SubtypeOrdinalNumber  Subtype = "ordinal_number"

	SubtypePersonal      Subtype = "personal"
	SubtypeDemonstrative Subtype = "demonstrative"
	SubtypeIndefinite    Subtype = "indefinite"
	SubtypeInterrogative Subtype = "interrogative"
	SubtypeRelative      Subtype = "relative"

	SubtypeAffirmation        Subtype = "affirmation"
	SubtypeDefiniteArticle    Subtype = "definite_article"
	SubtypeExhortation        Subtype = "exhortation"
	SubtypeInterjection       Subtype = "interjection"
	SubtypeNegative           Subtype = "negative"
	SubtypeDirectObjectMarker Subtype = "direct_object_marker"
)

// Stem is a verb derivation pattern (Hebrew binyan or Aramaic stem).
type Stem string

// Conjugation is the verb form letter at position 2 of a verb segment.
type Conjugation string

const (
	ConjPerfect             Conjugation = "perfect"
	ConjSequentialPerfect   Conjugation = "sequential_perfect"
	ConjImperfect           Conjugation = "imperfect"
	ConjSequentialImperfect Conjugation = "sequential_imperfect"
	ConjImperative          Conjugation = "imperative"
	ConjParticipleActive    Conjugation = "participle_active"
	ConjParticiplePassive   Conjugation = "participle_passive"
	ConjInfinitiveAbsolute  Conjugation = "infinitive_absolute"
	ConjInfinitiveConstruct Conjugation = "infinitive_construct"
	ConjCohortative         Conjugation = "cohortative"
	ConjJussive             Conjugation = "jussive"
)

type Gender string

const (
	Masculine    Gender = "masculine"
	Feminine     Gender = "feminine"
	CommonGender Gender = "common"
	BothGenders  Gender = "both"
)

type Number string

const (
	Singular Number = "singular"
	Plural   Number = "plural"
	Dual     Number = "dual"
)

type State string

const (
	Absolute   State = "absolute"
	Construct  State = "construct"
	Determined State = "determined"
)

type Aspect string

const (
	Perfective   Aspect = "perfective"
	Imperfective Aspect = "imperfective"
)

type Voice string

const (
	Active  Voice = "active"
	Passive Voice = "passive"
	Middle  Voice = "middle"
)

type Mood string

const (
	MoodIndicative  Mood = "indicative"
	MoodImperative  Mood = "imperative"
	MoodCohortative Mood = "cohortative"
	MoodJussive     Mood = "jussive"
)

type Definiteness string

const (
	Definite   Definiteness = "definite"
	Indefinite Definiteness = "indefinite"
)

// Analysis is the decoded form of one morphology code.
// Zero values mean "not applicable or unknown"; nothing is guessed.
type Analysis struct {
	Language     Language     `json:"language,omitempty"`
	PartOfSpeech PartOfSpeech `json:"part_of_speech,omitempty"`
	Subtype      Subtype      `json:"subtype,omitempty"`
	// Binyan is the verb stem; Hebrew and Aramaic use different names.
	Binyan      Stem        `json:"binyan,omitempty"`
	Conjugation Conjugation `json:"conjugation,omitempty"`
	// Person is 1, 2 or 3; 0 when unset.
	Person int    `json:"person,omitempty"`
	Gender Gender `json:"gender,omitempty"`
	Number Number `json:"number,omitempty"`
	State  State  `json:"state,omitempty"`

	Aspect Aspect `json:"aspect,omitempty"`
	Voice  Voice  `json:"voice,omitempty"`
	Mood   Mood   `json:"mood,omitempty"`
	// Polarity and NegationParticle need the word's lemma and are never
	// filled from the code alone.
	Polarity         string       `json:"polarity,omitempty"`
	NegationParticle string       `json:"negation_particle,omitempty"`
	Definiteness     Definiteness `json:"definiteness,omitempty"`

	SuffixPerson int    `json:"suffix_person,omitempty"`
	SuffixGender Gender `json:"suffix_gender,omitempty"`
	SuffixNumber Number `json:"suffix_number,omitempty"`

	HasArticle          bool `json:"has_article"`
	HasPronominalSuffix bool `json:"has_pronominal_suffix"`
	HasDirectionalHe    bool `json:"has_directional_he"`
	HasParagogicHe      bool `json:"has_paragogic_he"`
	HasParagogicNun     bool `json:"has_paragogic_nun"`

	// PrefixPOS lists the part of speech of each prefix segment, in order.
	// An unrecognized prefix letter is kept verbatim.
	PrefixPOS []PartOfSpeech `json:"prefix_pos_list"`
	RawCode   string         `json:"raw_code"`
	Errors    []ParseError   `json:"parse_errors"`
}

// ParseErrors returns the human-readable decode errors in the order they
// were recorded.
func (a Analysis) ParseErrors() []string {
	out := make([]string, len(a.Errors))
	for i, e := range a.Errors {
		out[i] = e.Error()
	}
	return out
}

// HasPrefix reports whether any prefix segment has part of speech p.
func (a Analysis) HasPrefix(p PartOfSpeech) bool {
	for _, q := range a.PrefixPOS {
		if q == p {
			return true
		}
	}
	return false
}
