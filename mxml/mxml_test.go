package mxml

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"

	"github.com/ewhalen/mxml_marks"
	"github.com/ewhalen/mxml_marks/marks"
)

const notationsFixture = `<note><notations>
  <articulations>
    <accent placement="above" color="red"/>
    <staccato/>
  </articulations>
  <technical>
    <harmonic/>
    <fingering substitution="yes">3</fingering>
    <string>2</string>
  </technical>
  <ornaments>
    <delayed-turn/>
    <inverted-mordent/>
  </ornaments>
  <dynamics placement="below"><sfz/></dynamics>
</notations></note>`

const scoreFixture = `<?xml version="1.0" encoding="UTF-8"?>
<score-partwise version="3.1">
  <part-list>
    <score-part id="P1"><part-name>Violin I</part-name></score-part>
  </part-list>
  <part id="P1">
    <measure number="11">
      <note><notations><articulations><tenuto/></articulations></notations></note>
    </measure>
    <measure number="12">
      <note><notations><technical><string>two</string></technical></notations></note>
    </measure>
  </part>
</score-partwise>`

const warningScoreFixture = `<?xml version="1.0" encoding="UTF-8"?>
<score-partwise version="3.1">
  <part-list>
    <score-part id="P1"><part-name>Violin I</part-name></score-part>
  </part-list>
  <part id="P1">
    <measure number="4">
      <note><notations><articulations><flutter/></articulations></notations></note>
      <note><notations><ornaments><shake/></ornaments></notations></note>
    </measure>
  </part>
</score-partwise>`

const lyricFixture = `<measure>
  <note><lyric number="1"><syllabic>begin</syllabic><text>Glo</text></lyric></note>
  <note><lyric number="1"><syllabic>end</syllabic><text>ry</text></lyric></note>
  <note><lyric number="1"><syllabic>single</syllabic><text>be.</text></lyric></note>
  <note><lyric number="2"><syllabic>single</syllabic><text>Peace.</text></lyric></note>
</measure>`

func parseNotations(t *testing.T, fragment string) *xmlquery.Node {
	doc, err := Parse([]byte(fragment))
	if err != nil {
		t.Fatal(err)
	}
	node := xmlquery.FindOne(doc, "//notations")
	if node == nil {
		t.Fatal("fixture has no notations element")
	}
	return node
}

func kindNames(ms []marks.Mark) []string {
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.Kind().String())
	}
	sort.Strings(names)
	return names
}

func TestImporter_Notations(t *testing.T) {
	importer := NewImporter()
	collected, warnings, err := importer.Notations(
		parseNotations(t, notationsFixture))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, len(warnings))
	assert.Equal(t, []string{
		"Accent", "Dynamic", "Fingering", "InvertedMordent", "Staccato",
		"StringHarmonic", "StringIndication", "Turn",
	}, kindNames(collected))

	for _, mark := range collected {
		switch m := mark.(type) {
		case *marks.Accent:
			assert.Equal(t, "above", m.Placement)
			assert.Equal(t, "#ff0000", m.Color)
		case *marks.Fingering:
			assert.Equal(t, "3", m.Number)
			assert.True(t, m.Substitution)
			assert.False(t, m.Alternate)
		case *marks.StringIndication:
			assert.Equal(t, 2, m.Number)
		case *marks.Turn:
			assert.True(t, m.Delayed)
		case *marks.Dynamic:
			assert.Equal(t, "sfz", m.Value)
			assert.Equal(t, "below", m.Placement)
		}
	}
}

func TestImporter_UnknownToken(t *testing.T) {
	importer := NewImporter()
	collected, warnings, err := importer.Notations(parseNotations(t,
		`<notations><articulations><flutter/><tenuto/></articulations></notations>`))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 1, len(collected))
	assert.Equal(t, marks.KindTenuto, collected[0].Kind())
	assert.Equal(t, 1, len(warnings))
	assert.Equal(t, "unknown articulations element <flutter>",
		warnings[0].Error())
}

func TestImporter_CompoundDynamics(t *testing.T) {
	importer := NewImporter()
	collected, warnings, err := importer.Notations(parseNotations(t,
		`<notations><dynamics><ffp/><qq/></dynamics></notations>`))
	if err != nil {
		t.Fatal(err)
	}
	values := make([]string, 0, len(collected))
	for _, mark := range collected {
		values = append(values, mark.(*marks.Dynamic).Value)
	}
	assert.Equal(t, []string{"ff", "p"}, values)
	assert.Equal(t, 1, len(warnings))
}

func TestImporter_OtherDynamicsText(t *testing.T) {
	importer := NewImporter()
	collected, _, err := importer.Notations(parseNotations(t,
		`<notations><dynamics><other-dynamics>morendo</other-dynamics></dynamics></notations>`))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 1, len(collected))
	assert.Equal(t, "morendo", collected[0].(*marks.Dynamic).Value)
}

func TestImporter_BadColorWarns(t *testing.T) {
	importer := NewImporter()
	collected, warnings, err := importer.Notations(parseNotations(t,
		`<notations><articulations><accent color="sparkly"/></articulations></notations>`))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 1, len(collected))
	assert.Equal(t, 1, len(warnings))
	accent := collected[0].(*marks.Accent)
	assert.Equal(t, "sparkly", accent.Color)
}

type bogusMark struct{}

func (b *bogusMark) Kind() marks.Kind { return marks.KindInvalid }

func TestExporter_Notations(t *testing.T) {
	exporter := NewExporter()
	notations, err := exporter.Notations([]marks.Mark{
		&marks.StrongAccent{},
		&marks.Harmonic{},
		&marks.Pizzicato{},
		&marks.Turn{Delayed: true},
		&marks.Dynamic{Value: "sfz"},
		&marks.Dynamic{Value: "morendo"},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{
		"articulations/strong-accent",
		"technical/harmonic",
		"technical/other-technical",
		"ornaments/delayed-turn",
		"dynamics/sfz",
		"dynamics/other-dynamics",
	} {
		if xmlquery.FindOne(notations, path) == nil {
			t.Error("missing element: " + path)
		}
	}
	other := xmlquery.FindOne(notations, "dynamics/other-dynamics")
	assert.Equal(t, "morendo", other.InnerText())
}

func TestExporter_StyleAttributes(t *testing.T) {
	accent := &marks.Accent{}
	accent.Placement = "above"
	accent.Color = "#ff0000"
	accent.HideObjectOnPrint = true
	exporter := NewExporter()
	notations, err := exporter.Notations([]marks.Mark{accent})
	if err != nil {
		t.Fatal(err)
	}
	el := xmlquery.FindOne(notations, "articulations/accent")
	if el == nil {
		t.Fatal("missing accent element")
	}
	assert.Equal(t, "above", el.SelectAttr("placement"))
	assert.Equal(t, "#ff0000", el.SelectAttr("color"))
	assert.Equal(t, "no", el.SelectAttr("print-object"))
}

func TestExporter_UnknownFamily(t *testing.T) {
	exporter := NewExporter()
	_, err := exporter.Notations([]marks.Mark{&bogusMark{}})
	assert.Error(t, err)
	var exportErr *mxml_marks.ExportError
	assert.True(t, errors.As(err, &exportErr))
}

func TestNotations_RoundTrip(t *testing.T) {
	importer := NewImporter()
	exporter := NewExporter()
	first, warnings, err := importer.Notations(
		parseNotations(t, notationsFixture))
	if err != nil || len(warnings) > 0 {
		t.Fatal("fixture should import cleanly")
	}
	exported, err := exporter.Notations(first)
	if err != nil {
		t.Fatal(err)
	}
	second, warnings, err := importer.Notations(exported)
	if err != nil || len(warnings) > 0 {
		t.Fatal("exported document should import cleanly")
	}
	assert.Equal(t, kindNames(first), kindNames(second))
}

func TestScanParts(t *testing.T) {
	doc, err := Parse([]byte(scoreFixture))
	if err != nil {
		t.Fatal(err)
	}
	located, err := ScanParts(doc)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 2, len(located))
	assert.Equal(t, "P1", located[0].PartID)
	assert.Equal(t, "Violin I", located[0].PartName)
	assert.Equal(t, "11", located[0].MeasureNumber)
	assert.Equal(t, "12", located[1].MeasureNumber)
}

func TestScoreMarks_AnnotatesErrors(t *testing.T) {
	doc, err := Parse([]byte(scoreFixture))
	if err != nil {
		t.Fatal(err)
	}
	collected, _, err := ScoreMarks(doc, nil)
	assert.Error(t, err)
	assert.Equal(t,
		`In part (Violin I), measure (12): bad string number "two"`,
		err.Error())
	assert.Equal(t, 1, len(collected))
}

func TestScoreMarks_AnnotatesWarnings(t *testing.T) {
	doc, err := Parse([]byte(warningScoreFixture))
	if err != nil {
		t.Fatal(err)
	}
	collected, warnings, err := ScoreMarks(doc, NewImporter())
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 1, len(collected))
	assert.Equal(t, marks.KindShake, collected[0].Kind())
	assert.Equal(t, 1, len(warnings))
	assert.Equal(t,
		"In part (Violin I), measure (4): unknown articulations element <flutter>",
		warnings[0].Error())
}

type ColorTest struct {
	Input    string
	Expected string
	Valid    bool
}

var ColorTests = []ColorTest{
	{"red", "#ff0000", true},
	{"DarkSlateGray", "#2f4f4f", true},
	{"#ABC", "#aabbcc", true},
	{"#00FF00", "#00ff00", true},
	{"#0f0f0f", "#0f0f0f", true},
	{"sparkly", "", false},
	{"#12", "", false},
	{"", "", false},
}

func TestNormalizeColor(t *testing.T) {
	for testIdx := range ColorTests {
		test := ColorTests[testIdx]
		normalized, err := NormalizeColor(test.Input)
		if test.Valid {
			if err != nil {
				t.Error(test.Input + ": " + err.Error())
				continue
			}
			assert.Equal(t, test.Expected, normalized, test.Input)
		} else if err == nil {
			t.Error(test.Input + ": expected an error")
		}
	}
}

func TestLyrics(t *testing.T) {
	doc, err := Parse([]byte(lyricFixture))
	if err != nil {
		t.Fatal(err)
	}
	lines := Lyrics(xmlquery.Find(doc, "//lyric"))
	assert.Equal(t, []LyricLine{
		{Number: "1", Text: "Glory be."},
		{Number: "2", Text: "Peace."},
	}, lines)
}

func TestSplitLyricSentences(t *testing.T) {
	sentences, err := SplitLyricSentences(
		"Glory be to the Father. As it was in the beginning, world without end.")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 2, len(sentences))
	assert.True(t, strings.HasPrefix(sentences[0], "Glory"))
}
