package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

const csvSample = "방어팀,공격팀,속공\n\"카구라, 에반\",\"오공, 여포\",선공\n"

func TestDecodeKorean(t *testing.T) {
	legacy, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(csvSample))
	if err != nil {
		t.Fatalf("failed to build EUC-KR fixture: %v", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"EUC-KR", legacy},
		{"UTF-8", []byte(csvSample)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := decodeKorean(tt.data)
			if err != nil {
				t.Fatalf("decodeKorean failed: %v", err)
			}
			if text != csvSample {
				t.Errorf("decoded text mismatch:\n got %q\nwant %q", text, csvSample)
			}
		})
	}
}

func TestParseCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "길드전 답지.xlsx - Sheet1.csv")

	legacy, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(csvSample))
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	if err := os.WriteFile(path, legacy, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tbl, err := parseCSV(path)
	if err != nil {
		t.Fatalf("parseCSV failed: %v", err)
	}
	if len(tbl.header) != 3 || tbl.header[0] != "방어팀" {
		t.Errorf("header = %v", tbl.header)
	}
	if len(tbl.rows) != 1 || tbl.rows[0][0] != "카구라, 에반" {
		t.Errorf("rows = %v", tbl.rows)
	}
}

func TestParseCSVEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := parseCSV(path); err == nil {
		t.Error("expected parse error for empty file")
	}
}

func TestLocate(t *testing.T) {
	t.Run("No Candidates", func(t *testing.T) {
		if _, err := Locate(t.TempDir()); err != ErrNoDataFile {
			t.Errorf("err = %v, want ErrNoDataFile", err)
		}
	})

	t.Run("First Match Wins", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"길드전_답지.xlsx - Sheet1.csv", "길드전 답지.xlsx - Sheet1.csv"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		path, err := Locate(dir)
		if err != nil {
			t.Fatalf("Locate failed: %v", err)
		}
		if filepath.Base(path) != "길드전 답지.xlsx - Sheet1.csv" {
			t.Errorf("Locate picked %q, want the first candidate", filepath.Base(path))
		}
	})
}
