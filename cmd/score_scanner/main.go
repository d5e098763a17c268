// Command score_scanner walks a directory tree of MusicXML scores and
// tallies the notation marks found in them.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
)

var CLI struct {
	Input     string `arg:"" help:"Directory tree of MusicXML scores to scan." type:"existingdir"`
	DB        string `help:"SQLite database to record per-score results into." type:"path"`
	Reorder   string `help:"Scan order [size_ascending, size_descending, name_ascending, name_descending, shuffle, none]." default:"none"`
	Workers   int    `help:"Parallel score readers." default:"4"`
	ShowKinds bool   `help:"Also print the per-kind tally."`
	Warnings  bool   `help:"Print each warning as it is found."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("score_scanner"),
		kong.Description("Tally notation-mark usage across MusicXML scores"),
		kong.UsageOnError(),
	)

	pathInfos, globErr := GlobScores(CLI.Input)
	if globErr != nil {
		log.Fatal(globErr)
	}
	if reorderErr := ReorderPathInfos(pathInfos, CLI.Reorder); reorderErr != nil {
		log.Fatal(reorderErr)
	}
	if CLI.Workers < 1 {
		log.Fatal("Workers must be greater than 0")
	}

	var store *Store
	if CLI.DB != "" {
		opened, storeErr := NewStore(CLI.DB)
		if storeErr != nil {
			log.Fatal(storeErr)
		}
		store = opened
		defer store.Close()
	}

	log.Printf("Scanner input source: %s\n", CLI.Input)
	log.Printf("Scanner reordering method: %s\n", CLI.Reorder)
	log.Printf("Scanning %d scores with %d workers", len(pathInfos),
		CLI.Workers)

	begin := time.Now()
	tally := NewTally()
	failures := 0
	for result := range ScanScores(pathInfos, CLI.Workers) {
		if result.Err != nil {
			failures++
			log.Printf("%s: %s", result.Path, result.Err)
		} else {
			tally.Add(result)
		}
		if CLI.Warnings {
			for _, warning := range result.Warnings {
				log.Printf("%s: %s", result.Path, warning.Error())
			}
		}
		if store != nil {
			if recordErr := store.RecordScan(result); recordErr != nil {
				log.Fatal(recordErr)
			}
		}
	}
	duration := time.Now().Sub(begin).Seconds()

	fmt.Printf("%s scores (%s) scanned in %0.2fs, %d marks, "+
		"%d unhandled, %d warnings, %d failures\n",
		humanize.Comma(int64(tally.Scores)),
		humanize.Bytes(uint64(tally.Bytes)), duration, tally.Marks,
		tally.Unhandled, tally.Warnings, failures)
	for _, token := range tally.TokensByCount() {
		fmt.Printf("%8d  %s\n", tally.ByToken[token], token)
	}
	if CLI.ShowKinds {
		fmt.Println("---")
		for kind, count := range tally.ByKind {
			fmt.Printf("%8d  %s\n", count, kind)
		}
	}
}
