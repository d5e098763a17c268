package main

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/yargevad/filepathx"

	"github.com/ewhalen/mxml_marks"
	"github.com/ewhalen/mxml_marks/marks"
	"github.com/ewhalen/mxml_marks/mxml"
)

type PathInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// GlobScores
// Given a directory path, recursively finds all MusicXML scores, plain
// (`.musicxml`, `.xml`) or in the compressed `.mxl` container, returning a
// slice of PathInfo.
func GlobScores(dirPath string) (pathInfos []PathInfo, err error) {
	scorePaths := make([]string, 0)
	for _, pattern := range []string{"/**/*.musicxml", "/**/*.xml",
		"/**/*.mxl"} {
		matches, globErr := filepathx.Glob(dirPath + pattern)
		if globErr != nil {
			return nil, globErr
		}
		scorePaths = append(scorePaths, matches...)
	}
	if len(scorePaths) == 0 {
		return nil, errors.New(fmt.Sprintf(
			"%s does not contain any MusicXML files", dirPath))
	}
	pathInfos = make([]PathInfo, 0, len(scorePaths))
	for _, currPath := range scorePaths {
		stat, statErr := os.Stat(currPath)
		if statErr != nil {
			return nil, statErr
		}
		if stat.IsDir() {
			continue
		}
		pathInfos = append(pathInfos, PathInfo{
			Path:    currPath,
			Size:    stat.Size(),
			ModTime: stat.ModTime(),
		})
	}
	return pathInfos, nil
}

func SortPathInfoBySize(pathInfos []PathInfo, ascending bool) {
	if ascending {
		sort.Slice(pathInfos, func(i, j int) bool {
			return pathInfos[i].Size < pathInfos[j].Size
		})
	} else {
		sort.Slice(pathInfos, func(i, j int) bool {
			return pathInfos[i].Size > pathInfos[j].Size
		})
	}
}

func SortPathInfoByPath(pathInfos []PathInfo, ascending bool) {
	if ascending {
		sort.Slice(pathInfos, func(i, j int) bool {
			return pathInfos[i].Path < pathInfos[j].Path
		})
	} else {
		sort.Slice(pathInfos, func(i, j int) bool {
			return pathInfos[i].Path > pathInfos[j].Path
		})
	}
}

func ShufflePathInfos(pathInfos []PathInfo) {
	for i := len(pathInfos) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		pathInfos[i], pathInfos[j] = pathInfos[j], pathInfos[i]
	}
}

func ReorderPathInfos(pathInfos []PathInfo, reorder string) error {
	switch reorder {
	case "size_ascending":
		SortPathInfoBySize(pathInfos, true)
	case "size_descending":
		SortPathInfoBySize(pathInfos, false)
	case "name_ascending":
		SortPathInfoByPath(pathInfos, true)
	case "name_descending":
		SortPathInfoByPath(pathInfos, false)
	case "shuffle", "random":
		ShufflePathInfos(pathInfos)
	case "", "none":
	default:
		return fmt.Errorf("invalid reorder specification %q", reorder)
	}
	return nil
}

// ExtractMXL pulls the score document out of a compressed `.mxl` container.
// The container is a ZIP archive; the score is the first root-level XML
// entry outside META-INF.
func ExtractMXL(data []byte) ([]byte, error) {
	archive, zipErr := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if zipErr != nil {
		return nil, fmt.Errorf("opening mxl container: %w", zipErr)
	}
	for _, entry := range archive.File {
		name := entry.Name
		if strings.HasPrefix(name, "META-INF/") ||
			strings.Contains(name, "/") {
			continue
		}
		if !strings.HasSuffix(name, ".xml") &&
			!strings.HasSuffix(name, ".musicxml") {
			continue
		}
		reader, openErr := entry.Open()
		if openErr != nil {
			return nil, openErr
		}
		contents, readErr := io.ReadAll(reader)
		reader.Close()
		if readErr != nil {
			return nil, readErr
		}
		return contents, nil
	}
	return nil, errors.New("mxl container holds no score document")
}

// ScoreResult carries everything found in one score file.
type ScoreResult struct {
	Path     string
	Size     int64
	Marks    []marks.Mark
	Warnings []*mxml_marks.Warning
	Err      error
}

// ScanScore reads, unpacks, parses, and imports a single score.
func ScanScore(importer *mxml.Importer, pathInfo PathInfo) ScoreResult {
	result := ScoreResult{Path: pathInfo.Path, Size: pathInfo.Size}
	data, readErr := os.ReadFile(pathInfo.Path)
	if readErr != nil {
		result.Err = readErr
		return result
	}
	if strings.HasSuffix(pathInfo.Path, ".mxl") {
		extracted, mxlErr := ExtractMXL(data)
		if mxlErr != nil {
			result.Err = mxlErr
			return result
		}
		data = extracted
	}
	doc, parseErr := mxml.Parse(data)
	if parseErr != nil {
		result.Err = parseErr
		return result
	}
	result.Marks, result.Warnings, result.Err = mxml.ScoreMarks(doc, importer)
	return result
}

// ScanScores feeds the score files through numWorkers parallel readers,
// returning results in completion order on the channel.
func ScanScores(pathInfos []PathInfo, numWorkers int) chan ScoreResult {
	paths := make(chan PathInfo, 4)
	results := make(chan ScoreResult, 4)
	done := make(chan struct{}, numWorkers)
	go func() {
		for _, pathInfo := range pathInfos {
			paths <- pathInfo
		}
		close(paths)
	}()
	for worker := 0; worker < numWorkers; worker++ {
		go func() {
			importer := mxml.NewImporter()
			for pathInfo := range paths {
				results <- ScanScore(importer, pathInfo)
			}
			done <- struct{}{}
		}()
	}
	go func() {
		for worker := 0; worker < numWorkers; worker++ {
			<-done
		}
		close(results)
	}()
	return results
}
