package oshb

import "fmt"

// ErrorKind classifies a decode problem. None of them abort decoding.
type ErrorKind int

const (
	ErrEmptyInput ErrorKind = iota + 1
	ErrUnknownLanguage
	ErrNoSegments
	ErrNoBase
	ErrUnknownBasePOS
	ErrSegmentTooShort
	ErrUnknownCodeValue
)

var kindNames = map[ErrorKind]string{
	ErrEmptyInput:       "EmptyInput",
	ErrUnknownLanguage:  "UnknownLanguagePrefix",
	ErrNoSegments:       "NoSegmentsAfterPrefix",
	ErrNoBase:           "NoBaseSegmentFound",
	ErrUnknownBasePOS:   "UnknownBasePartOfSpeech",
	ErrSegmentTooShort:  "SegmentTooShort",
	ErrUnknownCodeValue: "UnknownCodeValue",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is one non-fatal problem found while decoding a code.
type ParseError struct {
	Kind ErrorKind
	// Context names the field or segment kind involved ("verb stem", "noun").
	Context string
	// Value is the offending character or segment.
	Value string
}

func (e ParseError) Error() string {
	switch e.Kind {
	case ErrEmptyInput:
		return "empty morph code"
	case ErrUnknownLanguage:
		return fmt.Sprintf("unknown language prefix: %s", e.Value)
	case ErrNoSegments:
		return "no segments after language prefix"
	case ErrNoBase:
		return "no base segment found"
	case ErrUnknownBasePOS:
		return fmt.Sprintf("unknown base part of speech: %s", e.Value)
	case ErrSegmentTooShort:
		return fmt.Sprintf("%s segment too short: %s", e.Context, e.Value)
	case ErrUnknownCodeValue:
		return fmt.Sprintf("unknown %s: %s", e.Context, e.Value)
	}
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Context, e.Value)
}

// MarshalText renders the error as its message, so JSON output carries
// plain strings.
func (e ParseError) MarshalText() ([]byte, error) {
	return []byte(e.Error()), nil
}
