package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ewhalen/mxml_marks"
	"github.com/ewhalen/mxml_marks/marks"
)

// A REPL for interacting with the `mxml_marks` dispatch tables.

func ancestry(kind marks.Kind) string {
	names := []string{kind.String()}
	for parents := kind.Parents(); len(parents) > 0; parents = parents[0].Parents() {
		names = append(names, parents[0].String())
	}
	return strings.Join(names, " < ")
}

func main() {
	mappers := map[string]mxml_marks.MarkMapper{
		"articulations": mxml_marks.NewArticulationsMapper(),
		"technicals":    mxml_marks.NewTechnicalsMapper(),
		"ornaments":     mxml_marks.NewOrnamentsMapper(),
	}
	// Command line switch for selecting the vocabulary to use.
	vocabOpt := flag.String("vocab",
		"articulations",
		"The vocabulary to use.")

	flag.Parse()

	mapper, ok := mappers[*vocabOpt]
	if !ok {
		log.Fatalf("unknown vocabulary %s", *vocabOpt)
	}

	reader := bufio.NewReader(os.Stdin)
	// Provide a REPL
	for {
		fmt.Print(">>> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal(err)
		}
		input = strings.TrimSpace(input)
		switch {
		case input == "table":
			for _, entry := range mapper.ReverseEntries() {
				fmt.Printf("%-24s -> %s\n", entry.Kind, entry.Token)
			}
		case input == "fingerprint":
			fmt.Println(mapper.Fingerprint())
		case strings.HasPrefix(input, "dyn "):
			parts, complete := mxml_marks.SplitDynamics(
				strings.TrimPrefix(input, "dyn "))
			fmt.Printf("%v complete=%v\n", parts, complete)
		default:
			kind, known := mapper.KindFor(input)
			if !known {
				fmt.Println("not in vocabulary")
				continue
			}
			fmt.Printf("%s\n", ancestry(kind))
			if token, resolved := mapper.TokenForKind(kind); resolved {
				fmt.Printf("round-trips as |%s\n", token)
			} else {
				fmt.Println("does not round-trip")
			}
		}
	}
}
