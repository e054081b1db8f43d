package problem

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Separator is the cell delimiter of table files.
const Separator = ';'

// Parse reads a ';'-separated table from r.
//
// Implementation:
//   - Stage 1: read the header; cells after the first are product names.
//   - Stage 2: for each data row check, in order, duplicate resource name,
//     row width, then parse every value cell as float64.
//
// Errors (wrapped with the offending line, cells joined by "; "):
//   - ErrEmptyTable, ErrDuplicateProduct, ErrDuplicateResource,
//     ErrRowLength, ErrNotNumeric, ErrInvalidCoefficient.
//   - Read errors from the underlying reader or malformed quoting.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = Separator
	cr.FieldsPerRecord = -1 // width is validated against the header, with a better message

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("problem: read header: %w", err)
	}
	names := make([]string, 0, len(header))
	for _, cell := range header[1:] {
		names = append(names, strings.TrimSpace(cell))
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("line '%s': %w", joinRow(header[0], header[1:]), ErrEmptyTable)
	}

	t := &Table{index: make(map[string]int)}
	if err = t.setProducts(names); err != nil {
		return nil, fmt.Errorf("line '%s': %w", joinRow(header[0], header[1:]), err)
	}

	var row []string
	for {
		row, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("problem: read row: %w", err)
		}
		if err = t.parseRow(row); err != nil {
			return nil, fmt.Errorf("line '%s': %w", joinRow(row[0], row[1:]), err)
		}
	}

	return t, nil
}

// parseRow validates one data row and appends it to t.
func (t *Table) parseRow(row []string) error {
	name := strings.TrimSpace(row[0])
	if _, dup := t.index[name]; dup {
		return fmt.Errorf("resource %q: %w", name, ErrDuplicateResource)
	}
	if len(row)-1 != len(t.products) {
		return fmt.Errorf("expected %d values got %d: %w", len(t.products), len(row)-1, ErrRowLength)
	}

	values := make([]float64, len(row)-1)
	for j, cell := range row[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return fmt.Errorf("expected numbers for each value: %w", ErrNotNumeric)
		}
		values[j] = v
	}

	return t.addResource(name, values)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: open table: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Load parses the table at path, or returns Default() when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	return ParseFile(path)
}

// WriteCSV renders t in the format Parse reads: an empty first header cell,
// the product names, then one line per resource.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = Separator

	header := append([]string{""}, t.products...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("problem: write header: %w", err)
	}
	for _, r := range t.resources {
		if err := cw.Write(append([]string{r.Name}, formatValues(r.Values)...)); err != nil {
			return fmt.Errorf("problem: write resource %q: %w", r.Name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
