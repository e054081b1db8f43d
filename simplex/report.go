// SPDX-License-Identifier: MIT

package simplex

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// WriteReport renders the solved instance:
//
//	20 F1
//	...
//
//	oatmeal: 2.67 units at 10 /unit
//	barley: 0 units at 8 /unit
//	...
//	total production value: 146.67
//
// Quantities and the total use two decimals, rounded half away from zero; a
// quantity of exactly zero prints as a bare 0.
//
// Errors: ErrNotSolved before an optimal Solve, or the writer's error.
func (s *Solver) WriteReport(w io.Writer) error {
	if s.status != StatusOptimal {
		return fmt.Errorf("simplex: WriteReport (status %s): %w", s.status, ErrNotSolved)
	}

	bw := bufio.NewWriter(w)
	for i, name := range s.resourceNames {
		fmt.Fprintf(bw, "%s %s\n", formatNumber(s.resources[i]), name)
	}
	bw.WriteString("\n")
	for j, name := range s.productNames {
		fmt.Fprintf(bw, "%s: %s units at %s /unit\n", name, formatQuantity(s.quantities[j]), formatNumber(s.prices[j]))
	}
	fmt.Fprintf(bw, "total production value: %s\n", decimal.NewFromFloat(s.TotalValue()).StringFixed(2))

	return bw.Flush()
}

// String returns the report, or a one-line status before optimality.
func (s *Solver) String() string {
	var b strings.Builder
	if err := s.WriteReport(&b); err != nil {
		return "simplex: " + s.status.String()
	}

	return b.String()
}

func formatQuantity(q float64) string {
	if q == 0 {
		return "0"
	}

	return decimal.NewFromFloat(q).StringFixed(2)
}

// formatNumber prints the shortest exact decimal form: 10, 12.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
