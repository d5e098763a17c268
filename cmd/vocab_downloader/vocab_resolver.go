package main

import (
	"flag"
	"log"
	"os"

	"github.com/ewhalen/mxml_marks/resources"
)

func main() {
	vocabId := flag.String("vocab", "",
		"vocabulary URL or path to fetch")
	destPath := flag.String("dest", "./",
		"where to download the vocabulary to")
	flag.Parse()
	if *vocabId == "" {
		flag.Usage()
		log.Fatal("Must provide -vocab")
	}

	os.MkdirAll(*destPath, 0755)
	_, rsrcErr := resources.ResolveResources(*vocabId, destPath,
		resources.RESOURCE_OPTIONAL)
	if rsrcErr != nil {
		log.Fatalf("Error downloading vocabulary resources: %s", rsrcErr)
	}
}
