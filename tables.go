package mxml_marks

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ewhalen/mxml_marks/marks"
	"github.com/ewhalen/mxml_marks/resources"
)

// vocabEntry and vocabOverride mirror the JSON rows of the vocabulary
// resource files. Kinds are spelled by name and resolved through
// marks.KindByName.
type vocabEntry struct {
	Token string `json:"token"`
	Kind  string `json:"kind"`
}

type vocabOverride struct {
	Action string `json:"action"`
	Kind   string `json:"kind"`
	Token  string `json:"token,omitempty"`
	Note   string `json:"note,omitempty"`
}

func parseOverrideAction(action string) (OverrideAction, error) {
	switch action {
	case "drop":
		return DropEntry, nil
	case "move-to-end":
		return MoveToEnd, nil
	}
	return 0, fmt.Errorf("unknown override action %q", action)
}

// NewMapperFrom
// Builds a MarkMapper from a vocabulary id: the name of an embedded
// vocabulary, a local directory, or an HTTP URL.
func NewMapperFrom(vocabId string) (*MarkMapper, error) {
	config, resourcesPtr, vocabErr := resources.ResolveVocabId(vocabId)
	if vocabErr != nil {
		return nil, vocabErr
	}
	rsrcs := *resourcesPtr

	name := vocabId
	if config != nil && config.Name != nil {
		name = *config.Name
	}

	entriesResource, ok := rsrcs["entries.json"]
	if !ok {
		return nil, fmt.Errorf("entries.json not found for vocabId: %s",
			vocabId)
	}
	var rawEntries []vocabEntry
	if json.Unmarshal(*entriesResource.Data, &rawEntries) != nil {
		log.Fatal("Error unmarshalling `entries.json`")
	}
	entries := make([]Entry, 0, len(rawEntries))
	for _, raw := range rawEntries {
		kind, known := marks.KindByName(raw.Kind)
		if !known {
			return nil, fmt.Errorf(
				"vocabulary %s: token %q maps to unknown kind %q",
				name, raw.Token, raw.Kind)
		}
		entries = append(entries, Entry{Token: raw.Token, Kind: kind})
	}

	overrides := make([]Override, 0)
	if overridesResource, ok := rsrcs["overrides.json"]; ok &&
		overridesResource.Data != nil {
		var rawOverrides []vocabOverride
		if json.Unmarshal(*overridesResource.Data, &rawOverrides) != nil {
			log.Fatal("Error unmarshalling `overrides.json`")
		}
		for _, raw := range rawOverrides {
			kind, known := marks.KindByName(raw.Kind)
			if !known {
				return nil, fmt.Errorf(
					"vocabulary %s: override names unknown kind %q",
					name, raw.Kind)
			}
			action, actionErr := parseOverrideAction(raw.Action)
			if actionErr != nil {
				return nil, fmt.Errorf("vocabulary %s: %s", name, actionErr)
			}
			overrides = append(overrides, Override{
				Action: action,
				Kind:   kind,
				Token:  raw.Token,
				Note:   raw.Note,
			})
		}
	}

	return NewMapper(name, entries, overrides)
}

// mustMapper backs the builtin constructors. Embedded vocabulary data is
// trusted; a build failure there is a fatal configuration error, not a
// recoverable one.
func mustMapper(vocabId string) MarkMapper {
	mapper, err := NewMapperFrom(vocabId)
	if err != nil {
		log.Fatal(err)
	}
	return *mapper
}

// NewArticulationsMapper
// Returns the dispatch table for the articulations vocabulary.
func NewArticulationsMapper() MarkMapper {
	return mustMapper("articulations-vocab")
}

// NewTechnicalsMapper
// Returns the dispatch table for the technical indications vocabulary.
func NewTechnicalsMapper() MarkMapper {
	return mustMapper("technicals-vocab")
}

// NewOrnamentsMapper
// Returns the dispatch table for the ornaments vocabulary.
func NewOrnamentsMapper() MarkMapper {
	return mustMapper("ornaments-vocab")
}

var ArticulationsMapper = NewArticulationsMapper()
var TechnicalsMapper = NewTechnicalsMapper()
var OrnamentsMapper = NewOrnamentsMapper()
