package main

//go:generate gopherjs build --minify

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/ewhalen/mxml_marks"
	"github.com/ewhalen/mxml_marks/marks"
	"log"
)

var mappers = map[string]mxml_marks.MarkMapper{
	"articulations": mxml_marks.NewArticulationsMapper(),
	"technicals":    mxml_marks.NewTechnicalsMapper(),
	"ornaments":     mxml_marks.NewOrnamentsMapper(),
}

func Lookup(vocab string, token string) string {
	mapper, ok := mappers[vocab]
	if !ok {
		return ""
	}
	kind, known := mapper.KindFor(token)
	if !known {
		return ""
	}
	return kind.String()
}

func TokenFor(vocab string, kindName string) string {
	mapper, ok := mappers[vocab]
	if !ok {
		return ""
	}
	kind, known := marks.KindByName(kindName)
	if !known {
		return ""
	}
	token, _ := mapper.TokenForKind(kind)
	return token
}

func Vocabularies() []string {
	names := make([]string, 0, len(mappers))
	for name := range mappers {
		names = append(names, name)
	}
	return names
}

func init() {
	js.Module.Get("exports").Set("lookup", Lookup)
	js.Module.Get("exports").Set("tokenFor", TokenFor)
	js.Module.Get("exports").Set("vocabularies", Vocabularies)
	log.Printf("MusicXML Mark Tables Loaded")
}

func main() {

}
