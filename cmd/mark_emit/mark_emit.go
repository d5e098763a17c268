package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/ewhalen/mxml_marks/marks"
	"github.com/ewhalen/mxml_marks/mxml"
)

// Reads mark kind names, one per line, and emits the <notations> element
// that serializes them. The reverse-direction counterpart of score_scanner.

func main() {
	inputFile := flag.String("input", "",
		"input file of mark kind names, one per line")
	outputFile := flag.String("output", "notations.xml",
		"output file to write the notations element to")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		log.Fatal("Must provide -input")
	}
	if *outputFile == "" {
		flag.Usage()
		log.Fatal("Must provide -output")
	}

	// check if input file exists
	if _, err := os.Stat(*inputFile); os.IsNotExist(err) {
		log.Fatal("Input file does not exist")
	}

	inputFileHandle, err := os.Open(*inputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer inputFileHandle.Close()

	collected := make([]marks.Mark, 0)
	scanner := bufio.NewScanner(inputFileHandle)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		kind, known := marks.KindByName(name)
		if !known {
			log.Fatalf("unknown mark kind %q", name)
		}
		mark, built := marks.New(kind)
		if !built {
			log.Fatalf("no mark object for kind %q", name)
		}
		collected = append(collected, mark)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		log.Fatal(scanErr)
	}

	notations, exportErr := mxml.NewExporter().Notations(collected)
	if exportErr != nil {
		log.Fatal(exportErr)
	}

	outputFileHandle, err := os.Create(*outputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer outputFileHandle.Close()
	if _, err = outputFileHandle.WriteString(
		notations.OutputXML(true)); err != nil {
		log.Fatal(err)
	}
}
