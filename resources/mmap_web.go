//go:build js || wasip1

package resources

import (
	"io"
	"os"
)

// readMmap falls back to a plain read where memory mapping is unavailable.
// Vocabulary files are small, so the copy is harmless.
func readMmap(file *os.File) (*[]byte, error) {
	contents, err := io.ReadAll(file)
	return &contents, err
}
