package resources

import (
	"embed"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

//go:embed data/articulations-vocab/entries.json
//go:embed data/articulations-vocab/overrides.json
//go:embed data/articulations-vocab/vocab_config.json
//go:embed data/technicals-vocab/entries.json
//go:embed data/technicals-vocab/overrides.json
//go:embed data/technicals-vocab/vocab_config.json
//go:embed data/ornaments-vocab/entries.json
//go:embed data/ornaments-vocab/overrides.json
//go:embed data/ornaments-vocab/vocab_config.json
var f embed.FS

// GetEmbeddedResource
// Returns a ResourceEntry for the given resource name that is embedded in
// the binary.
func GetEmbeddedResource(path string) *ResourceEntry {
	resourceFile, err := f.Open("data/" + path)
	if err != nil {
		return nil
	}
	resourceBytes, err := f.ReadFile("data/" + path)
	if err != nil {
		return nil
	}
	return &ResourceEntry{&resourceFile, &resourceBytes}
}

// EmbeddedDirExists
// Returns true if the given directory is embedded in the binary, otherwise
// false and an error.
func EmbeddedDirExists(path string) (bool, error) {
	if _, err := f.ReadDir("data/" + path); err != nil {
		return false, err
	} else {
		return true, nil
	}
}

// FetchHTTP
// Fetch a resource from a remote HTTP server.
func FetchHTTP(uri string, rsrc string) (io.ReadCloser, error) {
	resp, remoteErr := http.Get(uri + "/" + rsrc)
	if remoteErr != nil {
		return nil, remoteErr
	}
	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// SizeHTTP
// Get the size of a resource from a remote HTTP server.
func SizeHTTP(uri string, rsrc string) (uint, error) {
	resp, remoteErr := http.Head(uri + "/" + rsrc)
	if remoteErr != nil {
		return 0, remoteErr
	} else if resp.StatusCode != 200 {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	} else {
		size, _ := strconv.Atoi(resp.Header.Get("Content-Length"))
		return uint(size), nil
	}
}
