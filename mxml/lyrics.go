package mxml

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// LyricLine is the assembled text of one lyric verse.
type LyricLine struct {
	Number string
	Text   string
}

// Lyrics assembles verse lines from <lyric> elements in document order.
// Begin and middle syllables attach to the fragment that follows them; end
// and single syllables close the word.
func Lyrics(nodes []*xmlquery.Node) []LyricLine {
	order := make([]string, 0, 2)
	builders := make(map[string]*strings.Builder)
	for _, node := range nodes {
		number := node.SelectAttr("number")
		if number == "" {
			number = "1"
		}
		builder, ok := builders[number]
		if !ok {
			builder = &strings.Builder{}
			builders[number] = builder
			order = append(order, number)
		}
		text := ""
		if textEl := node.SelectElement("text"); textEl != nil {
			text = strings.TrimSpace(textEl.InnerText())
		}
		if text == "" {
			continue
		}
		syllabic := "single"
		if syllabicEl := node.SelectElement("syllabic"); syllabicEl != nil {
			syllabic = strings.TrimSpace(syllabicEl.InnerText())
		}
		builder.WriteString(text)
		if syllabic == "single" || syllabic == "end" {
			builder.WriteString(" ")
		}
	}
	lines := make([]LyricLine, 0, len(order))
	for _, number := range order {
		lines = append(lines, LyricLine{
			Number: number,
			Text:   strings.TrimSpace(builders[number].String()),
		})
	}
	return lines
}
