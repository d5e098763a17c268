package main

import (
	"fmt"

	"github.com/extism/go-pdk"
	msgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/ewhalen/mxml_marks"
	"github.com/ewhalen/mxml_marks/marks"
)

var mappers map[string]mxml_marks.MarkMapper

func init() {
	mappers = map[string]mxml_marks.MarkMapper{
		"articulations": mxml_marks.NewArticulationsMapper(),
		"technicals":    mxml_marks.NewTechnicalsMapper(),
		"ornaments":     mxml_marks.NewOrnamentsMapper(),
	}
}

// LookupRequest is the msgpack input of the lookup and resolve exports.
type LookupRequest struct {
	Vocab string `msgpack:"vocab"`
	Value string `msgpack:"value"`
}

// LookupResult is the msgpack output: the found name and whether it was
// found at all.
type LookupResult struct {
	Value string `msgpack:"value"`
	Found bool   `msgpack:"found"`
}

func respond(result LookupResult) int32 {
	bytes, err := msgpack.Marshal(&result)
	if err != nil {
		return 1
	}
	pdk.Output(bytes)
	return 0
}

//go:wasmexport lookup
func Lookup() int32 {
	var request LookupRequest
	if err := msgpack.Unmarshal(pdk.Input(), &request); err != nil {
		return 1
	}
	mapper, ok := mappers[request.Vocab]
	if !ok {
		return respond(LookupResult{})
	}
	kind, found := mapper.KindFor(request.Value)
	if !found {
		return respond(LookupResult{})
	}
	return respond(LookupResult{Value: kind.String(), Found: true})
}

//go:wasmexport resolve
func Resolve() int32 {
	var request LookupRequest
	if err := msgpack.Unmarshal(pdk.Input(), &request); err != nil {
		return 1
	}
	mapper, ok := mappers[request.Vocab]
	if !ok {
		return respond(LookupResult{})
	}
	kind, known := marks.KindByName(request.Value)
	if !known {
		return respond(LookupResult{})
	}
	token, found := mapper.TokenForKind(kind)
	return respond(LookupResult{Value: token, Found: found})
}

//go:wasmexport fingerprints
func Fingerprints() int32 {
	prints := make(map[string]string, len(mappers))
	for name, mapper := range mappers {
		prints[name] = mapper.Fingerprint()
	}
	bytes, err := msgpack.Marshal(&prints)
	if err != nil {
		return 1
	}
	pdk.Output(bytes)
	return 0
}

func roundTripFull() error {
	// Mostly for debugging
	request := LookupRequest{Vocab: "articulations", Value: "staccato"}
	bytes, err := msgpack.Marshal(&request)
	if err != nil {
		return err
	}

	var request2 LookupRequest
	err = msgpack.Unmarshal(bytes, &request2)
	if err != nil {
		return err
	}

	mapper := mappers[request2.Vocab]
	kind, _ := mapper.KindFor(request2.Value)
	token, _ := mapper.TokenForKind(kind)
	fmt.Println(token)
	return nil
}

func main() {
	err := roundTripFull()
	if err != nil {
		fmt.Println("Error:", err)
	}
}
