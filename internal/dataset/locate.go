package dataset

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoDataFile means none of the candidate answer-book filenames exist.
// Callers treat this as an empty-dataset state with an actionable message,
// distinct from a read/parse failure.
var ErrNoDataFile = errors.New("no guild-war data file found")

// candidateFilenames is the fixed search order for the answer book. The
// sheet gets exported under slightly different names depending on who
// downloads it; the first existing match wins.
var candidateFilenames = []string{
	"길드전 답지.xlsx - Sheet1.csv",
	"길드전_답지.xlsx - Sheet1.csv",
	"길드전 답지.xlsx",
	"길드전_답지.xlsx",
}

// Locate finds the backing data file inside dir.
func Locate(dir string) (string, error) {
	for _, name := range candidateFilenames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", ErrNoDataFile
}
