package oshb

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	alef    = '\u05D0'
	bet     = '\u05D1'
	vav     = '\u05D5'
	yod     = '\u05D9'
	kaf     = '\u05DB'
	ayin    = '\u05E2'
	pe      = '\u05E4'
	shin    = '\u05E9'
	dagesh  = '\u05BC' // also mappiq
	shinDot = '\u05C1'
	sinDot  = '\u05C2'
	maqaf   = '\u05BE'
)

// consonants maps every Hebrew letter to its context-free realization.
// Final forms sound like their medial counterparts; alef and ayin are silent.
var consonants = map[rune]string{
	alef:     "",
	bet:      "v",
	'\u05D2': "g",
	'\u05D3': "d",
	'\u05D4': "h",
	vav:      "v",
	'\u05D6': "z",
	'\u05D7': "ch",
	'\u05D8': "t",
	yod:      "y",
	'\u05DA': "kh", // final kaf
	kaf:      "kh",
	'\u05DC': "l",
	'\u05DD': "m", // final mem
	'\u05DE': "m",
	'\u05DF': "n", // final nun
	'\u05E0': "n",
	'\u05E1': "s",
	ayin:     "",
	'\u05E3': "f", // final pe
	pe:       "f",
	'\u05E5': "ts", // final tsade
	'\u05E6': "ts",
	'\u05E7': "q",
	'\u05E8': "r",
	shin:     "sh",
	'\u05EA': "t",
}

// hard is the begadkephat realization when a dagesh is present.
var hard = map[rune]string{
	bet: "b",
	kaf: "k",
	pe:  "p",
}

// vowels maps niqqud to Latin vowels.
var vowels = map[rune]string{
	'\u05B0': "e", // sheva
	'\u05B1': "e", // hataf segol
	'\u05B2': "a", // hataf patah
	'\u05B3': "o", // hataf qamats
	'\u05B4': "i", // hiriq
	'\u05B5': "e", // tsere
	'\u05B6': "e", // segol
	'\u05B7': "a", // patah
	'\u05B8': "a", // qamats
	'\u05B9': "o", // holam
	'\u05BA': "o", // holam haser for vav
	'\u05BB': "u", // qubuts
}

var separators = strings.NewReplacer("/", "", string(maqaf), "")

// isMark reports whether r lies in the block of points, accents and dots
// that attach to a preceding consonant.
func isMark(r rune) bool {
	return r >= '\u0591' && r <= '\u05C7'
}

func isHebrew(r rune) bool {
	return r >= '\u0590' && r <= '\u05FF'
}

// expandPresentationForms decomposes precomposed letters such as U+FB2A
// (shin with shin dot) into base letter plus marks.
func expandPresentationForms(text string) string {
	if !strings.ContainsFunc(text, isPresentationForm) {
		return text
	}
	var sb strings.Builder
	for _, r := range text {
		if isPresentationForm(r) {
			sb.WriteString(norm.NFKD.String(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isPresentationForm(r rune) bool {
	return r >= '\uFB1D' && r <= '\uFB4F'
}

// cluster is a consonant together with the marks that follow it.
type cluster struct {
	dagesh  bool
	shinDot bool
	sinDot  bool
	vowels  []string
}

// Transliterate converts pointed Hebrew to a Latin phonetic string.
// Cantillation and other non-phonetic marks are ignored, morpheme
// separators and maqaf are removed, letters and digits outside the Hebrew
// block pass through, and everything else is dropped.
func Transliterate(text string) string {
	text = separators.Replace(expandPresentationForms(text))
	runes := []rune(text)

	var sb strings.Builder
	last := ""
	emit := func(s string) {
		sb.WriteString(s)
		last = s
	}

	for i := 0; i < len(runes); {
		ch := runes[i]
		base, isConsonant := consonants[ch]
		if !isConsonant {
			if !isHebrew(ch) && (unicode.IsLetter(ch) || unicode.IsDigit(ch)) {
				emit(string(ch))
			}
			i++
			continue
		}

		var c cluster
		j := i + 1
		for ; j < len(runes) && isMark(runes[j]); j++ {
			switch m := runes[j]; m {
			case dagesh:
				c.dagesh = true
			case shinDot:
				c.shinDot = true
			case sinDot:
				c.sinDot = true
			default:
				if v, ok := vowels[m]; ok {
					c.vowels = append(c.vowels, v)
				}
			}
		}
		i = j

		switch {
		case ch == vav && c.dagesh && len(c.vowels) == 0:
			// shureq
			emit("u")
			continue
		case ch == vav && len(c.vowels) == 1 && c.vowels[0] == "o":
			// holam male
			emit("o")
			continue
		case ch == yod && len(c.vowels) == 0 && last == "i":
			// hiriq male
			continue
		}

		switch {
		case ch == shin && c.sinDot:
			emit("s")
		case ch == shin:
			emit("sh")
		case c.dagesh && hard[ch] != "":
			emit(hard[ch])
		default:
			emit(base)
		}
		for _, v := range c.vowels {
			emit(v)
		}
	}
	return sb.String()
}
