package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Columns is the number of fields every input row must carry.
const Columns = 2

// Load reads a headerless two-column delimited file into a Dataset.
// Blank lines are skipped. The delimiter is picked from the file extension.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()
	return Read(f, path, sniffDelimiter(path))
}

// Read parses rows from r. name is used in errors and as the Dataset name.
func Read(r io.Reader, name string, delim rune) (*Dataset, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = delim

	ds := &Dataset{Name: filepath.Base(name)}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{Path: name, Line: pe.Line, Column: pe.Column, Reason: pe.Err.Error(), Err: err}
			}
			return nil, &IOError{Path: name, Err: err}
		}
		if blankRecord(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != Columns {
			return nil, &ParseError{
				Path:   name,
				Line:   line,
				Reason: fmt.Sprintf("expected %d columns, got %d", Columns, len(rec)),
			}
		}
		var vals [Columns]float64
		for j, raw := range rec {
			v, err := parseValue(raw)
			if err != nil {
				return nil, &ParseError{Path: name, Line: line, Column: j + 1, Value: raw, Reason: err.Error(), Err: err}
			}
			vals[j] = v
		}
		ds.Samples = append(ds.Samples, Sample{X: vals[0], Y: vals[1]})
	}
	return ds, nil
}

// skipBOM drops a leading UTF-8 byte-order mark, as written by spreadsheet exports.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(3)
	}
	return br
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// blankRecord reports whether every field is whitespace, e.g. a line of spaces.
func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

var errNotFinite = errors.New("value is not finite")

func parseValue(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, errors.New("empty value")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			return 0, fmt.Errorf("not a number: %w", ne.Err)
		}
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

func sniffDelimiter(path string) rune {
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".tsv") {
		return '\t'
	}
	return ','
}
