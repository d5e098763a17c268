package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ewhalen/mxml_marks"
)

func main() {
	leftVocabId := flag.String("left", "articulations-vocab",
		"left vocabulary id [articulations-vocab, technicals-vocab, "+
			"ornaments-vocab, path, or URL]")
	rightVocabId := flag.String("right", "",
		"right vocabulary id to compare against")
	showOrder := flag.Bool("order", false,
		"show the full reverse-table order of both vocabularies")
	flag.Parse()

	if *rightVocabId == "" {
		flag.Usage()
		log.Fatal("Must provide -right")
	}
	// check if left and right vocabularies are the same
	if *leftVocabId == *rightVocabId {
		log.Fatal("Left and right vocabularies must be different")
	}

	left, leftErr := mxml_marks.NewMapperFrom(*leftVocabId)
	if leftErr != nil {
		log.Fatal(leftErr)
	}
	right, rightErr := mxml_marks.NewMapperFrom(*rightVocabId)
	if rightErr != nil {
		log.Fatal(rightErr)
	}

	fmt.Printf("left  %s: %d tokens, fingerprint %s\n",
		left.Name, len(left.Forward), left.Fingerprint())
	fmt.Printf("right %s: %d tokens, fingerprint %s\n",
		right.Name, len(right.Forward), right.Fingerprint())

	for _, token := range left.Tokens() {
		leftKind, _ := left.KindFor(token)
		rightKind, inRight := right.KindFor(token)
		if !inRight {
			fmt.Printf("- %s (%s)\n", token, leftKind)
		} else if leftKind != rightKind {
			fmt.Printf("! %s: %s -> %s\n", token, leftKind, rightKind)
		}
	}
	for _, token := range right.Tokens() {
		if _, inLeft := left.KindFor(token); !inLeft {
			kind, _ := right.KindFor(token)
			fmt.Printf("+ %s (%s)\n", token, kind)
		}
	}

	if *showOrder {
		fmt.Println("--- reverse order, left then right")
		for _, entry := range left.ReverseEntries() {
			fmt.Printf("%-24s -> %s\n", entry.Kind, entry.Token)
		}
		fmt.Println("---")
		for _, entry := range right.ReverseEntries() {
			fmt.Printf("%-24s -> %s\n", entry.Kind, entry.Token)
		}
	}
}
