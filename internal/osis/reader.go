// Package osis reads words out of OSHB OSIS XML files.
//
// Verses are recognized either as containers (<verse osisID="Gen.1.1">…</verse>)
// or as milestone pairs (<verse sID="Gen.1.1"/> … <verse eID="Gen.1.1"/>).
// Every <w> element inside a verse becomes a Word.
package osis

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/ulikunitz/xz"
)

var bookExpr = xpath.MustCompile(`//*[local-name()='div'][@type='book']`)

// Word is one <w> element.
type Word struct {
	ID string `json:"id,omitempty"`
	// Position counts from 1 within the verse.
	Position int    `json:"position"`
	Surface  string `json:"surface"`
	Lemma    string `json:"lemma,omitempty"`
	Morph    string `json:"morph,omitempty"`
}

// Verse is a verse id with its words in document order.
type Verse struct {
	Book  string `json:"book"`
	ID    string `json:"id"`
	Words []Word `json:"words"`
}

// Read parses an OSIS document and returns its verses in document order.
func Read(r io.Reader) ([]Verse, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("osis: parse: %w", err)
	}

	var rd reader
	books := xmlquery.QuerySelectorAll(doc, bookExpr)
	if len(books) == 0 {
		rd.walk(doc)
		return rd.verses, nil
	}
	for _, b := range books {
		rd.book = b.SelectAttr("osisID")
		rd.current, rd.openID = -1, ""
		rd.walk(b)
	}
	return rd.verses, nil
}

// ReadFile reads an OSIS file; names ending in .xz are decompressed.
func ReadFile(path string) ([]Verse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osis: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("osis: xz %s: %w", path, err)
		}
		r = xr
	}

	verses, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return verses, nil
}

// reader tracks the open verse while walking the tree.
type reader struct {
	book    string
	verses  []Verse
	current int // index into verses, -1 outside a verse
	openID  string
}

func (rd *reader) walk(n *xmlquery.Node) {
	if n.Type == xmlquery.ElementNode {
		switch n.Data {
		case "verse":
			rd.startVerse(n)
		case "w":
			rd.word(n)
			// A word's children are its text.
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rd.walk(c)
	}
	if n.Type == xmlquery.ElementNode && n.Data == "verse" {
		rd.endVerse(n)
	}
}

func (rd *reader) startVerse(n *xmlquery.Node) {
	id := n.SelectAttr("osisID")
	if id == "" {
		id = n.SelectAttr("sID")
	}
	if id == "" {
		return
	}
	book := rd.book
	if book == "" {
		book, _, _ = strings.Cut(id, ".")
	}
	rd.verses = append(rd.verses, Verse{Book: book, ID: id})
	rd.current = len(rd.verses) - 1
	rd.openID = id
}

func (rd *reader) endVerse(n *xmlquery.Node) {
	id := n.SelectAttr("osisID")
	if id == "" {
		id = n.SelectAttr("eID")
	}
	if id != "" && id == rd.openID {
		rd.current = -1
		rd.openID = ""
	}
}

func (rd *reader) word(n *xmlquery.Node) {
	if rd.openID == "" {
		return
	}
	w := Word{
		ID:      strings.TrimSpace(n.SelectAttr("id")),
		Surface: strings.TrimSpace(n.InnerText()),
		Lemma:   strings.TrimSpace(n.SelectAttr("lemma")),
		Morph:   strings.TrimSpace(n.SelectAttr("morph")),
	}
	if w.Surface == "" && w.Lemma == "" && w.Morph == "" {
		return
	}
	v := &rd.verses[rd.current]
	w.Position = len(v.Words) + 1
	v.Words = append(v.Words, w)
}

// Ref is a parsed verse id such as "Gen.1.1".
type Ref struct {
	Book    string
	Chapter int
	Verse   int
}

// ParseRef splits an OSIS verse id into book, chapter and verse.
func ParseRef(id string) (Ref, error) {
	parts := strings.Split(id, ".")
	if len(parts) != 3 || parts[0] == "" {
		return Ref{}, fmt.Errorf("osis: unexpected verse id %q", id)
	}
	ch, err := strconv.Atoi(parts[1])
	if err != nil {
		return Ref{}, fmt.Errorf("osis: chapter in %q: %w", id, err)
	}
	vs, err := strconv.Atoi(parts[2])
	if err != nil {
		return Ref{}, fmt.Errorf("osis: verse in %q: %w", id, err)
	}
	return Ref{Book: parts[0], Chapter: ch, Verse: vs}, nil
}
