package resources

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"io/ioutil"
	"log"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/dustin/go-humanize"
)

type ResourceFlag uint8

// WriteCounter counts the number of bytes written to it, and every 10 seconds,
// it prints a message reporting the number of bytes written so far.
type WriteCounter struct {
	Total    uint64
	Last     time.Time
	Reported bool
	Path     string
	Size     uint64
}

func (wc *WriteCounter) Write(p []byte) (int, error) {
	n := len(p)
	wc.Total += uint64(n)
	if time.Now().Sub(wc.Last).Seconds() > 10 {
		wc.Reported = true
		wc.Last = time.Now()
		log.Print(fmt.Sprintf("Downloading %s... %s / %s completed.",
			wc.Path, humanize.Bytes(wc.Total), humanize.Bytes(wc.Size)))
	}
	return n, nil
}

// Enumeration of resource flags that indicate what the resolver should do
// with the resource.
const (
	RESOURCE_REQUIRED ResourceFlag = 1 << iota
	RESOURCE_OPTIONAL
)

type ResourceEntryDefs map[string]ResourceFlag
type ResourceEntry struct {
	file interface{}
	Data *[]byte
}

type Resources map[string]ResourceEntry

func (rsrcs *Resources) Cleanup() {
	for _, rsrc := range *rsrcs {
		file := rsrc.file
		switch t := file.(type) {
		case os.File:
			t.Close()
		case fs.File:
			t.Close()
		}
	}
}

// GetResourceEntries
// Returns the map of resource entries that make up a vocabulary: the entry
// table is required, overrides and the config are optional.
func GetResourceEntries() ResourceEntryDefs {
	return ResourceEntryDefs{
		"entries.json":      RESOURCE_REQUIRED,
		"overrides.json":    RESOURCE_OPTIONAL,
		"vocab_config.json": RESOURCE_OPTIONAL,
	}
}

func isValidUrl(toTest string) bool {
	_, err := url.ParseRequestURI(toTest)
	if err != nil {
		return false
	}

	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// Fetch
// Given a base URI and a resource name, determines if the resource is local
// or remote. If the resource is local, it returns a file handle to the
// resource, otherwise it fetches the resource and returns a ReadCloser to
// the fetched resource.
func Fetch(uri string, rsrc string) (io.ReadCloser, error) {
	if isValidUrl(uri) {
		return FetchHTTP(uri, rsrc)
	} else if _, err := os.Stat(path.Join(uri, rsrc)); !os.IsNotExist(err) {
		if handle, fileErr := os.Open(path.Join(uri, rsrc)); fileErr != nil {
			return nil, fmt.Errorf("error opening %s/%s: %v",
				uri, rsrc, fileErr)
		} else {
			return handle, fileErr
		}
	} else {
		return nil, fmt.Errorf("resource %s/%s not found", uri, rsrc)
	}
}

// Size
// Given a base URI and a resource name, determine the size of the resource.
func Size(uri string, rsrc string) (uint, error) {
	if isValidUrl(uri) {
		return SizeHTTP(uri, rsrc)
	} else if fsz, err := os.Stat(path.Join(uri, rsrc)); !os.IsNotExist(err) {
		return uint(fsz.Size()), nil
	} else {
		return 0, fmt.Errorf("resource %s/%s not found", uri, rsrc)
	}
}

// AddEntry
// Add a resource to the Resources map, opening it as a mmap.Map.
func (rsrcs *Resources) AddEntry(name string, file *os.File) error {
	fileMmap, mmapErr := readMmap(file)
	if mmapErr != nil {
		return fmt.Errorf("error trying to mmap file: %s", mmapErr)
	} else {
		(*rsrcs)[name] = ResourceEntry{file, fileMmap}
	}
	return nil
}

// ResolveResources resolves all resources at a given uri, and checks if they
// exist in the given directory. If they don't exist, they are downloaded.
func ResolveResources(uri string, dir *string,
	rsrcLvl ResourceFlag) (*Resources,
	error) {
	foundResources := make(Resources, 0)
	resources := GetResourceEntries()

	for file, flag := range resources {
		var rsrcFile os.File
		if flag <= rsrcLvl {
			log.Printf("Resolving %s/%s... ", uri, file)
			targetPath := path.Join(*dir, file)
			rsrcSize, rsrcSizeErr := Size(uri, file)
			if rsrcSizeErr != nil {
				if flag&RESOURCE_REQUIRED != 0 {
					log.Printf("%s/%s not found, required!",
						uri, file)
					return &foundResources, fmt.Errorf(
						"cannot retrieve required `%s` from `%s`: %s",
						file, uri, rsrcSizeErr)
				} else {
					log.Printf("Resolved %s/%s... not there, not required.",
						uri, file)
					continue
				}
			} else if targetStat, targetStatErr := os.Stat(targetPath); !os.IsNotExist(
				targetStatErr) && uint(targetStat.Size()) == rsrcSize {
				log.Printf("Skipping %s/%s... already exists, "+
					"and of the correct size.", uri, file)
				openFile, skipFileErr := os.OpenFile(
					path.Join(*dir, file),
					os.O_RDONLY, 0755)
				if skipFileErr != nil {
					return &foundResources, fmt.Errorf(
						"error opening '%s' for read: %s",
						file, skipFileErr)
				} else {
					rsrcFile = *openFile
				}
			} else if rsrcReader, rsrcErr := Fetch(uri, file); rsrcErr != nil {
				return &foundResources, fmt.Errorf(
					"cannot retrieve `%s` from `%s`: %s",
					file, uri, rsrcErr)
			} else {
				openFile, rsrcFileErr := os.OpenFile(
					path.Join(*dir, file),
					os.O_TRUNC|os.O_RDWR|os.O_CREATE, 0755)
				if rsrcFileErr != nil {
					return &foundResources, fmt.Errorf(
						"error opening '%s' for write: %s",
						file, rsrcFileErr)
				}
				rsrcFile = *openFile
				counter := &WriteCounter{
					Last: time.Now(),
					Path: fmt.Sprintf("%s/%s", uri, file),
					Size: uint64(rsrcSize),
				}
				bytesDownloaded, ioErr := io.Copy(&rsrcFile,
					io.TeeReader(rsrcReader, counter))
				rsrcReader.Close()
				if ioErr != nil {
					return &foundResources, fmt.Errorf(
						"error downloading '%s': %s", file, ioErr)
				} else if counter.Reported {
					log.Println(fmt.Sprintf("Downloaded %s/%s... "+
						"%s completed.", uri, file,
						humanize.Bytes(uint64(bytesDownloaded))))
				}
			}
			if mmapErr := foundResources.AddEntry(file,
				&rsrcFile); mmapErr != nil {
				return &foundResources, mmapErr
			}
		}
	}
	return &foundResources, nil
}

// VocabConfig carries the descriptive configuration of a vocabulary.
type VocabConfig struct {
	Name        *string `json:"name,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ResolveConfig
// Resolves a vocabulary located in a directory or behind a URL, and returns
// its configuration along with its resolved resources.
func ResolveConfig(vocabId string) (config *VocabConfig,
	resources *Resources, err error) {
	dir, dirErr := ioutil.TempDir("", "resources")
	if dirErr != nil {
		return nil, nil, dirErr
	}
	defer os.RemoveAll(dir)
	rslvdResources, rsrcErr := ResolveResources(vocabId, &dir,
		RESOURCE_OPTIONAL)
	if rsrcErr != nil {
		return nil, nil, rsrcErr
	} else {
		resources = rslvdResources
	}

	vocabConfig := VocabConfig{}
	if configEntry, ok := (*resources)["vocab_config.json"]; ok {
		if configErr := json.Unmarshal(*configEntry.Data,
			&vocabConfig); configErr != nil {
			resources.Cleanup()
			return nil, nil, fmt.Errorf(
				"error unmarshalling `vocab_config.json`: %s", configErr)
		}
	}
	return &vocabConfig, resources, nil
}

// ResolveVocabId
// Resolves a vocabulary id to a set of resources, from embedded, local
// filesystem, or remote.
func ResolveVocabId(vocabId string) (*VocabConfig, *Resources, error) {
	if _, vocabErr := EmbeddedDirExists(vocabId); vocabErr == nil {
		config := &VocabConfig{Name: &vocabId}
		resources := make(Resources, 0)
		entries := GetEmbeddedResource(vocabId + "/entries.json")
		if entries == nil {
			return nil, nil, fmt.Errorf(
				"embedded vocabulary `%s` has no entries.json", vocabId)
		}
		resources["entries.json"] = *entries
		if overrides := GetEmbeddedResource(
			vocabId + "/overrides.json"); overrides != nil {
			resources["overrides.json"] = *overrides
		}
		if configRsrc := GetEmbeddedResource(
			vocabId + "/vocab_config.json"); configRsrc != nil {
			if configErr := json.Unmarshal(*configRsrc.Data,
				config); configErr != nil {
				return nil, nil, fmt.Errorf(
					"error unmarshalling `vocab_config.json`: %s", configErr)
			}
			resources["vocab_config.json"] = *configRsrc
		}
		return config, &resources, nil
	}
	var resolvedVocabId string
	if isValidUrl(vocabId) {
		u, _ := url.Parse(vocabId)
		resolvedVocabId = path.Base(u.Path)
	} else {
		resolvedVocabId = vocabId
	}
	config, resources, err := ResolveConfig(vocabId)
	if err != nil {
		return nil, nil, err
	} else {
		if config.Name == nil {
			config.Name = &resolvedVocabId
		}
		return config, resources, nil
	}
}
