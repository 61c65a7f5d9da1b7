package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// table is a raw parsed sheet: a header row plus data rows. Rows may be
// ragged; the preprocessor pads short rows with empties.
type table struct {
	header []string
	rows   [][]string
}

// parseFile reads the answer book in whichever physical format it was
// exported as.
func parseFile(path string) (*table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return parseXLSX(path)
	}
	return parseCSV(path)
}

// parseCSV decodes the file as CP949/EUC-KR first — sheets saved from Excel
// on Korean Windows use the legacy encoding — and retries as UTF-8 when the
// legacy decode mangles. Failure under both encodings is a parse error.
func parseCSV(path string) (*table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, err := decodeKorean(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var header []string
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv %s: %w", path, err)
		}
		if header == nil {
			header = record
			continue
		}
		rows = append(rows, record)
	}
	if header == nil {
		return nil, fmt.Errorf("parse csv %s: empty file", path)
	}
	return &table{header: header, rows: rows}, nil
}

// decodeKorean converts raw CSV bytes to UTF-8 text. EUC-KR is tried first;
// a decode that produces replacement runes signals the file was actually
// UTF-8 (typical for Google Sheets exports), so the raw bytes are used when
// they validate.
func decodeKorean(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
	if err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded), nil
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	if err == nil {
		err = fmt.Errorf("invalid bytes under both EUC-KR and UTF-8")
	}
	return "", err
}

// parseXLSX reads the first sheet of an Excel workbook.
func parseXLSX(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("parse xlsx %s: no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("parse xlsx %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse xlsx %s: empty sheet", path)
	}
	return &table{header: rows[0], rows: rows[1:]}, nil
}
