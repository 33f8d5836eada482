// Package data reads and writes mutation-count matrices as delimited text
// tables: a header row naming the identifier column and each sample, then
// one row per mutation type holding a textual label and numeric counts.
package data

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/EllieDunstone/matrix-downsampling/pkg/matrix"
)

// ReadTable parses a count matrix from r. Rows containing a tab are split
// on tabs (quoted fields allowed), otherwise on runs of whitespace. Blank
// lines are skipped. The first header cell titles the identifier column and
// is discarded; recover it for writing via WriteTable's idHeader argument.
func ReadTable(r io.Reader) (*matrix.Matrix, error) {
	var (
		samples   []string
		rowLabels []string
		counts    []float64
	)
	line := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields, err := splitRow(text)
		if err != nil {
			return nil, fmt.Errorf("data: line %d: %w", line, err)
		}
		if samples == nil {
			if len(fields) < 2 {
				return nil, fmt.Errorf("data: line %d: header needs an identifier column and at least one sample: %w",
					line, matrix.ErrInvalidShape)
			}
			samples = fields[1:]
			continue
		}
		if len(fields) != len(samples)+1 {
			return nil, fmt.Errorf("data: line %d: expected %d fields, got %d",
				line, len(samples)+1, len(fields))
		}
		rowLabels = append(rowLabels, fields[0])
		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("data: line %d: bad count %q: %w", line, f, err)
			}
			counts = append(counts, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	if samples == nil {
		return nil, fmt.Errorf("data: empty table: %w", matrix.ErrInvalidShape)
	}
	return matrix.New(rowLabels, samples, counts)
}

// ReadTableFile reads a count matrix from path, transparently decompressing
// files with a .gz suffix.
func ReadTableFile(path string) (*matrix.Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = bufio.NewReader(file)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("data: %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	return ReadTable(r)
}

// WriteTable writes m to w as a tab-delimited table. idHeader titles the
// identifier column ("MutationType" when empty). Integral counts are
// written without a decimal point, so write-then-read is identity.
func WriteTable(w io.Writer, m *matrix.Matrix, idHeader string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if idHeader == "" {
		idHeader = "MutationType"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, idHeader)
	for _, s := range m.Samples {
		fmt.Fprintf(bw, "\t%s", s)
	}
	fmt.Fprintln(bw)
	for i, label := range m.RowLabels {
		fmt.Fprint(bw, label)
		for j := 0; j < m.Cols(); j++ {
			fmt.Fprintf(bw, "\t%s", strconv.FormatFloat(m.At(i, j), 'f', -1, 64))
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteTableFile writes m to path, gzip-compressing when the path ends in
// .gz.
func WriteTableFile(path string, m *matrix.Matrix, idHeader string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(file)
		if err := WriteTable(gz, m, idHeader); err != nil {
			gz.Close()
			file.Close()
			return err
		}
		if err := gz.Close(); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}
	if err := WriteTable(file, m, idHeader); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// splitRow splits one table row into fields: tab-separated when a tab is
// present (via csv so quoted sample names survive), whitespace-separated
// otherwise.
func splitRow(text string) ([]string, error) {
	if !strings.ContainsRune(text, '\t') {
		return strings.Fields(text), nil
	}
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	fields, err := cr.Read()
	if err != nil {
		return nil, err
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}
