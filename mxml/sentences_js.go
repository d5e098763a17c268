//go:build wasip1 || js

package mxml

import "errors"

func SplitLyricSentences(text string) ([]string, error) {
	return nil, errors.New("SplitLyricSentences is not implemented")
}
