// ABOUTME: CSV export of timing segments
// ABOUTME: Writes On/Duration rows with durations in whole milliseconds
package timing

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// WriteCSV writes segments as "On,Duration" rows, duration in milliseconds
func WriteCSV(w io.Writer, segments []Segment) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"On", "Duration"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, s := range segments {
		on := "False"
		if s.ToneOn {
			on = "True"
		}
		ms := strconv.Itoa(int(math.Round(s.Duration * 1000)))
		if err := cw.Write([]string{on, ms}); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
