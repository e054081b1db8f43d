package problem

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resource is one named row of the coefficient table.
type Resource struct {
	// Name identifies the resource; unique within a Table.
	Name string

	// Values holds one consumption coefficient per product, in product order.
	Values []float64
}

// Table is an immutable coefficient table. Accessors return copies, so a
// Table can be shared read-only between solvers.
type Table struct {
	products  []string
	resources []Resource
	index     map[string]int // resource name -> row
}

// New validates and copies products and resources into a Table.
//
// Errors:
//   - ErrEmptyTable when products is empty.
//   - ErrDuplicateProduct, ErrDuplicateResource on repeated names.
//   - ErrRowLength when a resource has len(Values) != len(products).
//   - ErrInvalidCoefficient on negative or non-finite values.
func New(products []string, resources []Resource) (*Table, error) {
	if len(products) == 0 {
		return nil, ErrEmptyTable
	}
	t := &Table{
		products:  make([]string, 0, len(products)),
		resources: make([]Resource, 0, len(resources)),
		index:     make(map[string]int, len(resources)),
	}
	if err := t.setProducts(products); err != nil {
		return nil, fmt.Errorf("line '%s': %w", joinRow("", products), err)
	}
	for _, r := range resources {
		if err := t.addResource(r.Name, r.Values); err != nil {
			return nil, fmt.Errorf("line '%s': %w", joinRow(r.Name, formatValues(r.Values)), err)
		}
	}

	return t, nil
}

// setProducts records product names, rejecting duplicates.
func (t *Table) setProducts(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("product %q: %w", name, ErrDuplicateProduct)
		}
		seen[name] = struct{}{}
		t.products = append(t.products, name)
	}

	return nil
}

// addResource appends one validated row; the checks run in the order
// duplicate name, width, coefficient range.
func (t *Table) addResource(name string, values []float64) error {
	if _, dup := t.index[name]; dup {
		return fmt.Errorf("resource %q: %w", name, ErrDuplicateResource)
	}
	if len(values) != len(t.products) {
		return fmt.Errorf("expected %d values got %d: %w", len(t.products), len(values), ErrRowLength)
	}
	for j, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("product %q value %v: %w", t.products[j], v, ErrInvalidCoefficient)
		}
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	t.index[name] = len(t.resources)
	t.resources = append(t.resources, Resource{Name: name, Values: cp})

	return nil
}

// ProductNames returns the product names in column order.
func (t *Table) ProductNames() []string {
	out := make([]string, len(t.products))
	copy(out, t.products)

	return out
}

// ResourceNames returns the resource names in row order.
func (t *Table) ResourceNames() []string {
	out := make([]string, len(t.resources))
	for i, r := range t.resources {
		out[i] = r.Name
	}

	return out
}

// ResourceValues returns a deep copy of the coefficient rows, row-major.
func (t *Table) ResourceValues() [][]float64 {
	out := make([][]float64, len(t.resources))
	for i, r := range t.resources {
		out[i] = make([]float64, len(r.Values))
		copy(out[i], r.Values)
	}

	return out
}

// ResourceCount returns the number of resource rows.
func (t *Table) ResourceCount() int { return len(t.resources) }

// ProductCount returns the number of product columns.
func (t *Table) ProductCount() int { return len(t.products) }

// Resource looks a row up by name.
func (t *Table) Resource(name string) (Resource, bool) {
	i, ok := t.index[name]
	if !ok {
		return Resource{}, false
	}
	r := t.resources[i]
	values := make([]float64, len(r.Values))
	copy(values, r.Values)

	return Resource{Name: r.Name, Values: values}, true
}

// joinRow renders a row the way it appears in error messages: cells trimmed
// and joined with "; ".
func joinRow(first string, rest []string) string {
	cells := make([]string, 0, len(rest)+1)
	cells = append(cells, strings.TrimSpace(first))
	for _, c := range rest {
		cells = append(cells, strings.TrimSpace(c))
	}

	return strings.Join(cells, "; ")
}

// formatValues renders coefficients with the shortest exact representation.
func formatValues(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return out
}
