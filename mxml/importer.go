// Package mxml reads and writes the notation-mark subset of MusicXML
// documents: the articulations, technical indications, ornaments, and
// dynamics found under a note's <notations> element.
package mxml

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/ewhalen/mxml_marks"
	"github.com/ewhalen/mxml_marks/marks"
)

// Importer builds typed marks from notation elements. Each vocabulary is
// served by its own dispatch table; the zero value is unusable, construct
// with NewImporter.
type Importer struct {
	Articulations *mxml_marks.MarkMapper
	Technicals    *mxml_marks.MarkMapper
	Ornaments     *mxml_marks.MarkMapper
}

func NewImporter() *Importer {
	return &Importer{
		Articulations: &mxml_marks.ArticulationsMapper,
		Technicals:    &mxml_marks.TechnicalsMapper,
		Ornaments:     &mxml_marks.OrnamentsMapper,
	}
}

// Notations walks a <notations> element and builds a mark for every
// articulation, technical, ornament, and dynamics child. Unknown tokens
// come back as warnings, never as hard failures; errors are reserved for
// malformed content on known tokens. Spanning notations (slurs, ties,
// tuplets, bends) are handled upstream and skipped here.
func (importer *Importer) Notations(node *xmlquery.Node) (
	[]marks.Mark,
	[]*mxml_marks.Warning,
	error,
) {
	collected := make([]marks.Mark, 0, 4)
	warnings := make([]*mxml_marks.Warning, 0)
	for group := node.FirstChild; group != nil; group = group.NextSibling {
		if group.Type != xmlquery.ElementNode {
			continue
		}
		var mapper *mxml_marks.MarkMapper
		switch group.Data {
		case "articulations":
			mapper = importer.Articulations
		case "technical":
			mapper = importer.Technicals
		case "ornaments":
			mapper = importer.Ornaments
		case "dynamics":
			dynamics, dynamicsWarnings := importer.dynamicsFrom(group)
			collected = append(collected, dynamics...)
			warnings = append(warnings, dynamicsWarnings...)
			continue
		default:
			continue
		}
		for child := group.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode {
				continue
			}
			mark, warning, err := importer.markFrom(mapper, child)
			if err != nil {
				return collected, warnings, err
			}
			if warning != nil {
				warnings = append(warnings, warning)
			}
			if mark != nil {
				collected = append(collected, mark)
			}
		}
	}
	return collected, warnings, nil
}

// markFrom builds one mark from one notation element: forward lookup on the
// element name, then content and attribute conversion for the kinds that
// carry payloads.
func (importer *Importer) markFrom(
	mapper *mxml_marks.MarkMapper,
	node *xmlquery.Node,
) (marks.Mark, *mxml_marks.Warning, error) {
	token := node.Data
	mark, known := mapper.NewMark(token)
	if !known {
		return nil, mxml_marks.NewWarning(
			"unknown %s element <%s>", mapper.Name, token), nil
	}
	switch m := mark.(type) {
	case *marks.BreathMark:
		m.Symbol = strings.TrimSpace(node.InnerText())
	case *marks.Fingering:
		m.Number = strings.TrimSpace(node.InnerText())
		m.Substitution = mxml_marks.YesNoToBool(node.SelectAttr("substitution"))
		m.Alternate = mxml_marks.YesNoToBool(node.SelectAttr("alternate"))
	case *marks.FrettedPluck:
		m.Finger = strings.TrimSpace(node.InnerText())
	case *marks.StringIndication:
		number, err := strconv.Atoi(strings.TrimSpace(node.InnerText()))
		if err != nil {
			return nil, nil, mxml_marks.NewImportError(
				"bad string number %q", strings.TrimSpace(node.InnerText()))
		}
		m.Number = number
	case *marks.FretIndication:
		number, err := strconv.Atoi(strings.TrimSpace(node.InnerText()))
		if err != nil {
			return nil, nil, mxml_marks.NewImportError(
				"bad fret number %q", strings.TrimSpace(node.InnerText()))
		}
		m.Number = number
	case *marks.HandbellIndication:
		m.Value = strings.TrimSpace(node.InnerText())
	case *marks.Turn:
		m.Delayed = strings.HasPrefix(token, "delayed-")
	case *marks.InvertedTurn:
		m.Delayed = strings.HasPrefix(token, "delayed-")
	}
	var warning *mxml_marks.Warning
	if styled, ok := mark.(marks.Styled); ok {
		warning = readStyle(node, styled.StyleRef())
	}
	return mark, warning, nil
}

// dynamicsFrom builds Dynamic marks from a <dynamics> group. Element names
// outside the closed token list are scanned for compound dynamics, so a
// nonstandard <ffp> still yields its components; free text rides in under
// the catch-all element.
func (importer *Importer) dynamicsFrom(group *xmlquery.Node) (
	[]marks.Mark,
	[]*mxml_marks.Warning,
) {
	collected := make([]marks.Mark, 0, 1)
	warnings := make([]*mxml_marks.Warning, 0)
	var style marks.Style
	if warning := readStyle(group, &style); warning != nil {
		warnings = append(warnings, warning)
	}
	for child := group.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		token := child.Data
		values := []string{token}
		switch {
		case token == mxml_marks.OtherDynamicsToken:
			values[0] = strings.TrimSpace(child.InnerText())
		case mxml_marks.IsDynamicToken(token):
		default:
			parts, whole := mxml_marks.SplitDynamics(token)
			if !whole {
				warnings = append(warnings, mxml_marks.NewWarning(
					"unknown dynamics element <%s>", token))
				continue
			}
			values = parts
		}
		for _, value := range values {
			collected = append(collected, &marks.Dynamic{
				Style: style,
				Value: value,
			})
		}
	}
	return collected, warnings
}

// readStyle converts the shared display attributes of a notation element.
// A color that is neither hex nor a CSS3 name is kept verbatim and flagged
// with a warning.
func readStyle(node *xmlquery.Node, style *marks.Style) *mxml_marks.Warning {
	style.Placement = node.SelectAttr("placement")
	if printObject := node.SelectAttr("print-object"); printObject != "" {
		style.HideObjectOnPrint = !mxml_marks.YesNoToBool(printObject)
	}
	if color := node.SelectAttr("color"); color != "" {
		normalized, err := NormalizeColor(color)
		if err != nil {
			style.Color = color
			return mxml_marks.NewWarning("unrecognized color %q on <%s>",
				color, node.Data)
		}
		style.Color = normalized
	}
	return nil
}
