package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Entry is one recorded benchmark result.
type Entry struct {
	Label   string
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Recorder accumulates benchmark entries.
type Recorder struct {
	Entries []Entry
}

// Log records a result.
func (r *Recorder) Log(label string, average, lo, hi time.Duration) {
	r.Entries = append(r.Entries, Entry{Label: label, Average: average, Min: lo, Max: hi})
}

// Save appends a header and one row per entry to the file at path.
// Rows are "label;average;max;min" in whole microseconds.
func (r *Recorder) Save(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if err := r.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// WriteCSV writes the header and entries as semicolon separated values.
func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write([]string{"Tests", "average", "max", "min"}); err != nil {
		return err
	}
	for _, e := range r.Entries {
		row := []string{
			e.Label,
			strconv.FormatInt(e.Average.Microseconds(), 10),
			strconv.FormatInt(e.Max.Microseconds(), 10),
			strconv.FormatInt(e.Min.Microseconds(), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Print writes "label, average, min, max" lines in milliseconds.
func (r *Recorder) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, e := range r.Entries {
		_, err := fmt.Fprintf(w, "%s, %2.5f, %2.5f, %2.5f\n", e.Label, ms(e.Average), ms(e.Min), ms(e.Max))
		if err != nil {
			return err
		}
	}
	return nil
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
