package mxml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/ewhalen/mxml_marks"
	"github.com/ewhalen/mxml_marks/marks"
)

// MeasureNotations locates one <notations> element inside a score, with the
// enclosing part and measure context already extracted.
type MeasureNotations struct {
	PartID        string
	PartName      string
	MeasureNumber string
	Node          *xmlquery.Node
}

// Parse parses a MusicXML document.
func Parse(data []byte) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing MusicXML: %w", err)
	}
	return doc, nil
}

// ScanParts walks every part and measure of a parsed score and returns the
// <notations> elements in document order. Part names come from the
// part-list; a part missing there is named by its id.
func ScanParts(doc *xmlquery.Node) ([]MeasureNotations, error) {
	partNames := make(map[string]string)
	scoreParts, err := xmlquery.QueryAll(doc, "//part-list/score-part")
	if err != nil {
		return nil, err
	}
	for _, scorePart := range scoreParts {
		id := scorePart.SelectAttr("id")
		if name := scorePart.SelectElement("part-name"); name != nil {
			partNames[id] = strings.TrimSpace(name.InnerText())
		}
	}

	parts, err := xmlquery.QueryAll(doc, "//part")
	if err != nil {
		return nil, err
	}
	located := make([]MeasureNotations, 0)
	for _, part := range parts {
		partID := part.SelectAttr("id")
		partName := partNames[partID]
		if partName == "" {
			partName = partID
		}
		for _, measure := range part.SelectElements("measure") {
			number := measure.SelectAttr("number")
			notations, err := xmlquery.QueryAll(measure, ".//notations")
			if err != nil {
				return nil, err
			}
			for _, node := range notations {
				located = append(located, MeasureNotations{
					PartID:        partID,
					PartName:      partName,
					MeasureNumber: number,
					Node:          node,
				})
			}
		}
	}
	return located, nil
}

// ScoreMarks imports every notation mark of a parsed score. Warnings and
// errors come back annotated with the part and measure they arose in.
func ScoreMarks(doc *xmlquery.Node, importer *Importer) (
	[]marks.Mark,
	[]*mxml_marks.Warning,
	error,
) {
	if importer == nil {
		importer = NewImporter()
	}
	locations, err := ScanParts(doc)
	if err != nil {
		return nil, nil, err
	}
	collected := make([]marks.Mark, 0, len(locations))
	warnings := make([]*mxml_marks.Warning, 0)
	for _, location := range locations {
		found, locationWarnings, err := importer.Notations(location.Node)
		if err != nil {
			return collected, warnings, mxml_marks.Annotate(err,
				location.PartName, location.MeasureNumber)
		}
		for _, warning := range locationWarnings {
			mxml_marks.Annotate(warning, location.PartName,
				location.MeasureNumber)
		}
		warnings = append(warnings, locationWarnings...)
		collected = append(collected, found...)
	}
	return collected, warnings, nil
}
