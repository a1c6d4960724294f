package batch

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/hebrew-lexicon/oshb"
	"github.com/hebrew-lexicon/oshb/internal/osis"
)

// WordSlug is the slug assigned to one word.
type WordSlug struct {
	Position int    `json:"position"`
	Surface  string `json:"surface"`
	Slug     string `json:"slug"`
	// Fallback is set when the surface had no transliteration.
	Fallback bool `json:"fallback,omitempty"`
}

// VerseSlugs holds the slugs of one verse in position order.
type VerseSlugs struct {
	VerseID string     `json:"verse_id"`
	Words   []WordSlug `json:"words"`
}

// SlugStats summarizes a slug pass.
type SlugStats struct {
	Words     int `json:"words"`
	Fallbacks int `json:"fallbacks"`
}

// SlugVerse assigns slugs to the words of one verse, de-duplicated within
// the verse. Words are processed in ascending position; equal positions keep
// their input order.
func SlugVerse(words []osis.Word) []WordSlug {
	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b osis.Word) int {
		return cmp.Compare(a.Position, b.Position)
	})

	scope := oshb.NewSlugScope()
	out := make([]WordSlug, len(sorted))
	for i, w := range sorted {
		base := oshb.Slug(w.Surface)
		fallback := base == ""
		if fallback {
			base = oshb.FallbackSlug(w.Position)
		}
		out[i] = WordSlug{
			Position: w.Position,
			Surface:  w.Surface,
			Slug:     scope.Next(base),
			Fallback: fallback,
		}
	}
	return out
}

// Slugs assigns slugs to every word of every verse. Each verse has its own
// scope, so verses run in parallel.
func (r *Runner) Slugs(ctx context.Context, verses []osis.Verse) ([]VerseSlugs, SlugStats, error) {
	out := make([]VerseSlugs, len(verses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i, v := range verses {
		if gctx.Err() != nil {
			break
		}
		i, v := i, v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = VerseSlugs{VerseID: v.ID, Words: SlugVerse(v.Words)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, SlugStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, SlugStats{}, err
	}

	var stats SlugStats
	for _, vs := range out {
		stats.Words += len(vs.Words)
		for _, w := range vs.Words {
			if w.Fallback {
				stats.Fallbacks++
			}
		}
	}
	r.log.InfoContext(ctx, "slugs assigned",
		slog.Int("verses", len(out)),
		slog.Int("words", stats.Words),
		slog.Int("fallbacks", stats.Fallbacks),
	)
	return out, stats, nil
}

// Codes returns the morph codes of every word, in document order, skipping
// words without one.
func Codes(verses []osis.Verse) []string {
	var codes []string
	for _, v := range verses {
		for _, w := range v.Words {
			if w.Morph != "" {
				codes = append(codes, w.Morph)
			}
		}
	}
	return codes
}
