//go:build !wasip1 && !js

package mxml

import (
	"github.com/jdkato/prose/v2"
)

// SplitLyricSentences segments an assembled lyric line into sentences.
func SplitLyricSentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		return nil, err
	}
	segmented := doc.Sentences()
	sentences := make([]string, 0, len(segmented))
	for _, sentence := range segmented {
		sentences = append(sentences, sentence.Text)
	}
	return sentences, nil
}
