// Package report formats probe results for standard output.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/weiihann/countprobe/probe"
)

// Generate writes the three report lines for r to w: the labeled count,
// the labeled elapsed time, and the raw count.
func Generate(w io.Writer, r probe.Result) error {
	count := FormatCount(r.Count)

	if _, err := fmt.Fprintf(w, "Count: %s\n", count); err != nil {
		return fmt.Errorf("write count: %w", err)
	}

	if _, err := fmt.Fprintf(w, "Elapsed time: %s ms\n",
		FormatMs(r.Elapsed)); err != nil {
		return fmt.Errorf("write elapsed time: %w", err)
	}

	if _, err := fmt.Fprintln(w, count); err != nil {
		return fmt.Errorf("write raw count: %w", err)
	}

	return nil
}

// FormatCount renders v with the shortest round-trip digits, keeping a
// ".0" suffix on integral values so 0 prints as "0.0".
func FormatCount(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// FormatMs renders d in milliseconds with exactly two decimal places.
func FormatMs(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d)/float64(time.Millisecond))
}
