package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hebrew-lexicon/oshb"
	"github.com/hebrew-lexicon/oshb/internal/batch"
	"github.com/hebrew-lexicon/oshb/internal/osis"
)

// DecodeCmd decodes the codes given as arguments.
type DecodeCmd struct {
	Codes []string `arg:"" help:"Morphology codes such as HC/Vqw3ms"`
	JSON  bool     `name:"json" help:"Print one JSON object per code"`
}

func (c *DecodeCmd) Run(a *app) error {
	if c.JSON {
		enc := json.NewEncoder(a.out)
		for _, code := range c.Codes {
			if err := enc.Encode(oshb.Decode(code)); err != nil {
				return fmt.Errorf("encode %s: %w", code, err)
			}
		}
		return nil
	}
	for _, code := range c.Codes {
		fmt.Fprintln(a.out, describe(oshb.Decode(code)))
	}
	return nil
}

// describe renders an analysis on one line: the code, the set fields as
// key=value pairs, then any errors.
func describe(an oshb.Analysis) string {
	parts := []string{an.RawCode}
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, k+"="+v)
		}
	}
	num := func(n int) string {
		if n == 0 {
			return ""
		}
		return strconv.Itoa(n)
	}
	flag := func(k string, b bool) {
		if b {
			parts = append(parts, k)
		}
	}

	add("language", string(an.Language))
	add("pos", string(an.PartOfSpeech))
	add("subtype", string(an.Subtype))
	add("binyan", string(an.Binyan))
	add("conjugation", string(an.Conjugation))
	add("person", num(an.Person))
	add("gender", string(an.Gender))
	add("number", string(an.Number))
	add("state", string(an.State))
	add("aspect", string(an.Aspect))
	add("voice", string(an.Voice))
	add("mood", string(an.Mood))
	add("definiteness", string(an.Definiteness))
	add("suffix_person", num(an.SuffixPerson))
	add("suffix_gender", string(an.SuffixGender))
	add("suffix_number", string(an.SuffixNumber))
	if len(an.PrefixPOS) > 0 {
		prefixes := make([]string, len(an.PrefixPOS))
		for i, p := range an.PrefixPOS {
			prefixes[i] = string(p)
		}
		add("prefixes", strings.Join(prefixes, ","))
	}
	flag("article", an.HasArticle)
	flag("pronominal_suffix", an.HasPronominalSuffix)
	flag("directional_he", an.HasDirectionalHe)
	flag("paragogic_he", an.HasParagogicHe)
	flag("paragogic_nun", an.HasParagogicNun)

	line := strings.Join(parts, " ")
	if errs := an.ParseErrors(); len(errs) > 0 {
		line += "\terrors: " + strings.Join(errs, "; ")
	}
	return line
}

// TranslitCmd prints the transliteration and slug of each argument.
type TranslitCmd struct {
	Text []string `arg:"" help:"Pointed Hebrew text"`
}

func (c *TranslitCmd) Run(a *app) error {
	for _, t := range c.Text {
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", t, oshb.Transliterate(t), oshb.Slug(t))
	}
	return nil
}

// SlugsCmd prints verse, position, surface and slug for every word as TSV.
type SlugsCmd struct {
	Files []string `arg:"" help:"OSIS XML files (.xml or .xml.xz)" type:"existingfile"`
}

func (c *SlugsCmd) Run(a *app) error {
	fmt.Fprintln(a.out, "verse\tposition\tsurface\tslug")
	for _, path := range c.Files {
		verses, err := osis.ReadFile(path)
		if err != nil {
			return err
		}
		slugs, _, err := a.runner.Slugs(a.ctx, verses)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, vs := range slugs {
			for _, w := range vs.Words {
				fmt.Fprintf(a.out, "%s\t%d\t%s\t%s\n", vs.VerseID, w.Position, w.Surface, w.Slug)
			}
		}
	}
	return nil
}

// ReportCmd decodes every morph attribute and prints totals and the most
// frequent errors.
type ReportCmd struct {
	Files []string `arg:"" help:"OSIS XML files (.xml or .xml.xz)" type:"existingfile"`
	Top   int      `help:"Number of errors to list (default from config)" default:"-1"`
}

func (c *ReportCmd) Run(a *app) error {
	var codes []string
	for _, path := range c.Files {
		verses, err := osis.ReadFile(path)
		if err != nil {
			return err
		}
		codes = append(codes, batch.Codes(verses)...)
	}

	_, rep, err := a.runner.Decode(a.ctx, codes)
	if err != nil {
		return err
	}

	top := c.Top
	if top < 0 {
		top = a.cfg.Batch.TopErrors
	}
	fmt.Fprintf(a.out, "Parsed %d codes, %d with errors (%.2f%%).\n", rep.Total, rep.WithErrors, rep.ErrorRate()*100)
	if errs := rep.Top(top); len(errs) > 0 {
		fmt.Fprintln(a.out, "Top parse errors:")
		for _, ec := range errs {
			fmt.Fprintf(a.out, "  %5d  %s\n", ec.Count, ec.Message)
		}
	}
	return nil
}
