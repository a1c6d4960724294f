package oshb

// Lookup tables for the OSHB morphology code letters. They are read-only;
// nothing in the package writes to them after initialization.
//
// A letter 'x' is never listed: it always means "unknown" and leaves the
// field unset.

var posLetters = map[byte]PartOfSpeech{
	'A': POSAdjective,
	'C': POSConjunction,
	'D': POSAdverb,
	'N': POSNoun,
	'P': POSPronoun,
	'R': POSPreposition,
	'S': POSSuffix,
	'T': POSParticle,
	'V': POSVerb,
}

// hebrewStems and aramaicStems are deliberately separate: the same letter
// names a different stem in each language.
var hebrewStems = map[byte]Stem{
	'q': "Qal",
	'N': "Niphal",
	'p': "Piel",
	'P': "Pual",
	'h': "Hiphil",
	'H': "Hophal",
	't': "Hithpael",
	'o': "Polel",
	'O': "Polal",
	'r': "Hithpolel",
	'm': "Poel",
	'M': "Poal",
	'k': "Palel",
	'K': "Pulal",
	'Q': "Qal Passive",
	'l': "Pilpel",
	'L': "Polpal",
	'f': "Hithpalpel",
	'D': "Nithpael",
	'j': "Pealal",
	'i': "Pilel",
	'u': "Hothpaal",
	'c': "Tiphil",
	'v': "Hishtaphel",
	'z': "Hithpoel",
}

var aramaicStems = map[byte]Stem{
	'q': "Peal",
	'Q': "Peil",
	'u': "Hithpeel",
	'p': "Pael",
	'P': "Ithpaal",
	'M': "Hithpaal",
	'a': "Aphel",
	'h': "Haphel",
	'H': "Hophal",
	's': "Saphel",
	'e': "Shaphel",
	'i': "Ithpeel",
	't': "Hishtaphel",
	'v': "Ishtaphel",
	'r': "Hithpolel",
	'z': "Ithpoel",
	'o': "Polel",
}

var conjugations = map[byte]Conjugation{
	'p': ConjPerfect,
	'q': ConjSequentialPerfect,
	'i': ConjImperfect,
	'w': ConjSequentialImperfect,
	'v': ConjImperative,
	'r': ConjParticipleActive,
	's': ConjParticiplePassive,
	'a': ConjInfinitiveAbsolute,
	'c': ConjInfinitiveConstruct,
	'h': ConjCohortative,
	'j': ConjJussive,
}

var nounTypes = map[byte]Subtype{
	'c': SubtypeCommon,
	'g': SubtypeGentilic,
	'p': SubtypeProperName,
}

var adjectiveTypes = map[byte]Subtype{
	'a': SubtypeAdjective,
	'c': SubtypeCardinalNumber,
	'o': SubtypeOrdinalNumber,
}

var pronounTypes = map[byte]Subtype{
	'p': SubtypePersonal,
	'd': SubtypeDemonstrative,
	'f': SubtypeIndefinite,
	'i': SubtypeInterrogative,
	'r': SubtypeRelative,
}

var particleTypes = map[byte]Subtype{
	'a': SubtypeAffirmation,
	'd': SubtypeDefiniteArticle,
	'e': SubtypeExhortation,
	'i': SubtypeInterrogative,
	'j': SubtypeInterjection,
	'm': SubtypeDemonstrative,
	'n': SubtypeNegative,
	'o': SubtypeDirectObjectMarker,
	'r': SubtypeRelative,
}

var persons = map[byte]int{
	'1': 1,
	'2': 2,
	'3': 3,
}

var genders = map[byte]Gender{
	'm': Masculine,
	'f': Feminine,
	'c': CommonGender,
	'b': BothGenders,
}

var numbers = map[byte]Number{
	's': Singular,
	'p': Plural,
	'd': Dual,
}

var states = map[byte]State{
	'a': Absolute,
	'c': Construct,
	'd': Determined,
}

// Voice classes. Every stem name of both languages belongs to exactly one.
var (
	passiveStems = stemSet(
		"Pual", "Hophal", "Qal Passive", "Polal", "Poal", "Pulal", "Polpal", "Hothpaal",
		"Peil",
	)
	middleStems = stemSet(
		"Niphal", "Hithpael", "Hithpolel", "Hithpalpel", "Nithpael", "Hithpoel", "Hishtaphel",
		"Ithpaal", "Hithpaal", "Hithpeel", "Ithpeel", "Ishtaphel", "Ithpoel",
	)
	activeStems = stemSet(
		"Qal", "Piel", "Hiphil", "Polel", "Poel", "Palel", "Pilpel", "Pilel", "Pealal", "Tiphil",
		"Peal", "Pael", "Aphel", "Haphel", "Saphel", "Shaphel",
	)
)

func stemSet(names ...Stem) map[Stem]bool {
	m := make(map[Stem]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// stemsFor returns the stem table of the given language.
func stemsFor(lang Language) map[byte]Stem {
	if lang == Aramaic {
		return aramaicStems
	}
	return hebrewStems
}
