package main

import (
	"sort"

	"github.com/ewhalen/mxml_marks"
	"github.com/ewhalen/mxml_marks/marks"
)

// Tally accumulates mark usage across scanned scores. Marks count under
// their canonical export token; marks no vocabulary resolves count as
// unhandled, never as failures.
type Tally struct {
	Scores    int
	Bytes     int64
	Marks     int
	Unhandled int
	Warnings  int
	ByToken   map[string]int
	ByKind    map[string]int

	exporter *tokenResolver
}

type tokenResolver struct {
	articulations mxml_marks.MarkMapper
	technicals    mxml_marks.MarkMapper
	ornaments     mxml_marks.MarkMapper
}

func (resolver *tokenResolver) tokenFor(mark marks.Mark) (string, bool) {
	if _, isDynamic := mark.(*marks.Dynamic); isDynamic {
		return "dynamics", true
	}
	kind := mark.Kind()
	switch {
	case kind.Is(marks.KindTechnicalIndication):
		return resolver.technicals.TokenFor(mark)
	case kind.Is(marks.KindArticulation):
		return resolver.articulations.TokenFor(mark)
	case kind.Is(marks.KindExpression):
		return resolver.ornaments.TokenFor(mark)
	}
	return "", false
}

func NewTally() *Tally {
	return &Tally{
		ByToken: make(map[string]int),
		ByKind:  make(map[string]int),
		exporter: &tokenResolver{
			articulations: mxml_marks.NewArticulationsMapper(),
			technicals:    mxml_marks.NewTechnicalsMapper(),
			ornaments:     mxml_marks.NewOrnamentsMapper(),
		},
	}
}

// Add folds one score's results into the tally.
func (tally *Tally) Add(result ScoreResult) {
	tally.Scores++
	tally.Bytes += result.Size
	tally.Warnings += len(result.Warnings)
	for _, mark := range result.Marks {
		tally.Marks++
		tally.ByKind[mark.Kind().String()]++
		if token, resolved := tally.exporter.tokenFor(mark); resolved {
			tally.ByToken[token]++
		} else {
			tally.Unhandled++
		}
	}
}

// TokensByCount returns the tallied tokens, most frequent first, ties in
// lexical order.
func (tally *Tally) TokensByCount() []string {
	tokens := make([]string, 0, len(tally.ByToken))
	for token := range tally.ByToken {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tally.ByToken[tokens[i]] != tally.ByToken[tokens[j]] {
			return tally.ByToken[tokens[i]] > tally.ByToken[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})
	return tokens
}
