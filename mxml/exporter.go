package mxml

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/ewhalen/mxml_marks"
	"github.com/ewhalen/mxml_marks/marks"
)

// Exporter serializes typed marks back into notation elements, resolving
// each mark to its most specific token.
type Exporter struct {
	Articulations *mxml_marks.MarkMapper
	Technicals    *mxml_marks.MarkMapper
	Ornaments     *mxml_marks.MarkMapper
}

func NewExporter() *Exporter {
	return &Exporter{
		Articulations: &mxml_marks.ArticulationsMapper,
		Technicals:    &mxml_marks.TechnicalsMapper,
		Ornaments:     &mxml_marks.OrnamentsMapper,
	}
}

// Notations builds a <notations> element holding every mark. Marks whose
// kind resolves to no token fall back to the catch-all element of their
// family; a mark outside every family is an export failure. Each Dynamic
// gets its own <dynamics> group since the display attributes ride on the
// group element.
func (exporter *Exporter) Notations(ms []marks.Mark) (*xmlquery.Node, error) {
	notations := element("notations")
	groups := make(map[string]*xmlquery.Node, 3)
	groupFor := func(name string) *xmlquery.Node {
		if group, ok := groups[name]; ok {
			return group
		}
		group := element(name)
		groups[name] = group
		xmlquery.AddChild(notations, group)
		return group
	}
	for _, mark := range ms {
		if mark == nil {
			continue
		}
		if dynamic, ok := mark.(*marks.Dynamic); ok {
			xmlquery.AddChild(notations, dynamicElement(dynamic))
			continue
		}
		kind := mark.Kind()
		var mapper *mxml_marks.MarkMapper
		var groupName, fallback string
		switch {
		case kind.Is(marks.KindTechnicalIndication):
			mapper = exporter.Technicals
			groupName, fallback = "technical", "other-technical"
		case kind.Is(marks.KindArticulation):
			mapper = exporter.Articulations
			groupName, fallback = "articulations", "other-articulation"
		case kind.Is(marks.KindExpression):
			mapper = exporter.Ornaments
			groupName, fallback = "ornaments", "other-ornament"
		default:
			return nil, mxml_marks.NewExportError(
				"no notation family for kind %s", kind)
		}
		token, resolved := mapper.TokenFor(mark)
		if !resolved {
			token = fallback
		}
		switch m := mark.(type) {
		case *marks.Turn:
			if m.Delayed && resolved {
				token = "delayed-" + token
			}
		case *marks.InvertedTurn:
			if m.Delayed && resolved {
				token = "delayed-" + token
			}
		}
		el := element(token)
		exportContent(el, mark)
		if styled, ok := mark.(marks.Styled); ok {
			writeStyle(el, styled.StyleRef())
		}
		xmlquery.AddChild(groupFor(groupName), el)
	}
	return notations, nil
}

func dynamicElement(dynamic *marks.Dynamic) *xmlquery.Node {
	group := element("dynamics")
	writeStyle(group, &dynamic.Style)
	value := strings.TrimSpace(dynamic.Value)
	if mxml_marks.IsDynamicToken(value) &&
		value != mxml_marks.OtherDynamicsToken {
		xmlquery.AddChild(group, element(value))
		return group
	}
	other := element(mxml_marks.OtherDynamicsToken)
	setText(other, value)
	xmlquery.AddChild(group, other)
	return group
}

// exportContent writes the payload carried by the kinds that have one:
// element text and the fingering attribute pair.
func exportContent(el *xmlquery.Node, mark marks.Mark) {
	switch m := mark.(type) {
	case *marks.BreathMark:
		setText(el, m.Symbol)
	case *marks.Fingering:
		setText(el, m.Number)
		if m.Substitution {
			xmlquery.AddAttr(el, "substitution",
				mxml_marks.BoolToYesNo(m.Substitution))
		}
		if m.Alternate {
			xmlquery.AddAttr(el, "alternate",
				mxml_marks.BoolToYesNo(m.Alternate))
		}
	case *marks.FrettedPluck:
		setText(el, m.Finger)
	case *marks.StringIndication:
		if m.Number > 0 {
			setText(el, strconv.Itoa(m.Number))
		}
	case *marks.FretIndication:
		if m.Number > 0 {
			setText(el, strconv.Itoa(m.Number))
		}
	case *marks.HandbellIndication:
		setText(el, m.Value)
	}
}

func writeStyle(el *xmlquery.Node, style *marks.Style) {
	if style.Placement != "" {
		xmlquery.AddAttr(el, "placement", style.Placement)
	}
	if style.Color != "" {
		xmlquery.AddAttr(el, "color", style.Color)
	}
	if style.HideObjectOnPrint {
		xmlquery.AddAttr(el, "print-object", "no")
	}
}

func element(name string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.ElementNode, Data: name}
}

func setText(el *xmlquery.Node, text string) {
	if text == "" {
		return
	}
	xmlquery.AddChild(el, &xmlquery.Node{
		Type: xmlquery.TextNode,
		Data: text,
	})
}
