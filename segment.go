package oshb

import (
	"strings"
	"unicode/utf8"
)

// Role is the position a segment plays within a code.
type Role int

const (
	RolePrefix Role = iota + 1
	RoleBase
	RoleSuffix
)

func (r Role) String() string {
	switch r {
	case RolePrefix:
		return "prefix"
	case RoleBase:
		return "base"
	case RoleSuffix:
		return "suffix"
	}
	return "unknown"
}

// Segment is one '/'-delimited piece of a code together with its role.
type Segment struct {
	Text string
	Role Role
}

// segmentation is the classifier's view of a code.
type segmentation struct {
	prefixes []string
	base     string
	suffixes []string
}

// Classify splits code into its segments and assigns each a role.
// It returns nil when the code carries no segments after the language letter.
func Classify(code string) []Segment {
	_, rest := splitLanguage(code)
	seg, ok := classify(rest)
	if !ok {
		return nil
	}
	out := make([]Segment, 0, len(seg.prefixes)+1+len(seg.suffixes))
	for _, p := range seg.prefixes {
		out = append(out, Segment{Text: p, Role: RolePrefix})
	}
	out = append(out, Segment{Text: seg.base, Role: RoleBase})
	for _, s := range seg.suffixes {
		out = append(out, Segment{Text: s, Role: RoleSuffix})
	}
	return out
}

// splitLanguage separates the language letter from the segment string.
func splitLanguage(code string) (rune, string) {
	if code == "" {
		return 0, ""
	}
	r, size := utf8.DecodeRuneInString(code)
	return r, code[size:]
}

func isSuffixSegment(seg string) bool {
	return strings.HasPrefix(seg, "S") || seg == "Td"
}

// classify assigns roles to the segments of rest. Suffixes are collected from
// the right only until the first non-suffix segment; that segment is the base
// and everything before it is a prefix. When every segment looks like a
// suffix, the leftmost one becomes the base (a bare "Td").
func classify(rest string) (segmentation, bool) {
	var segs []string
	for _, s := range strings.Split(rest, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return segmentation{}, false
	}

	split := len(segs)
	for split > 0 && isSuffixSegment(segs[split-1]) {
		split--
	}
	if split == 0 {
		split = 1
	}

	return segmentation{
		prefixes: segs[:split-1],
		base:     segs[split-1],
		suffixes: segs[split:],
	}, true
}
