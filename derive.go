package oshb

// derive fills aspect, voice, mood and definiteness from the decoded fields.
func derive(a *Analysis) {
	switch a.Conjugation {
	case ConjPerfect, ConjSequentialPerfect:
		a.Aspect = Perfective
	case ConjImperfect, ConjSequentialImperfect, ConjCohortative, ConjJussive:
		a.Aspect = Imperfective
	}

	switch {
	case passiveStems[a.Binyan]:
		a.Voice = Passive
	case middleStems[a.Binyan]:
		a.Voice = Middle
	case activeStems[a.Binyan]:
		a.Voice = Active
	}
	// An otherwise active stem still forms passive participles.
	if a.Conjugation == ConjParticiplePassive {
		a.Voice = Passive
	}

	switch a.Conjugation {
	case ConjImperative:
		a.Mood = MoodImperative
	case ConjCohortative:
		a.Mood = MoodCohortative
	case ConjJussive:
		a.Mood = MoodJussive
	case ConjPerfect, ConjImperfect, ConjSequentialPerfect, ConjSequentialImperfect:
		a.Mood = MoodIndicative
	}

	a.Definiteness = definiteness(a)
}

// definiteness applies the rules in order; the first match wins. A construct
// form depends on the following noun, which a single code cannot show, so it
// stays unset.
func definiteness(a *Analysis) Definiteness {
	switch {
	case a.HasArticle:
		return Definite
	case a.State == Determined:
		return Definite
	case a.PartOfSpeech == POSNoun && a.Subtype == SubtypeProperName:
		return Definite
	case a.HasPronominalSuffix && a.PartOfSpeech != POSVerb:
		return Definite
	case a.State == Construct:
		return ""
	case a.PartOfSpeech == POSNoun || a.PartOfSpeech == POSAdjective:
		return Indefinite
	}
	return ""
}
