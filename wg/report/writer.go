package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hydrowx/wxgen/wg"
)

// dateLayout is the on-disk date format for all report files.
const dateLayout = "2006-01-02"

// WriteDailyCSV writes one realization's daily table to
// <dir>/<label>_R<index>.csv with derived Tave, ETo, and deficit columns.
func WriteDailyCSV(dir, label string, res *wg.Result, latitudeDeg float64) error {
	path := filepath.Join(dir, fmt.Sprintf("%s_R%d.csv", label, res.Index))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create daily table: %w", err)
	}
	defer f.Close()

	eto := EToHargreavesSamani(res, latitudeDeg)

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "Tmax_C", "Tmin_C", "Tave_C", "Precip_mm", "ETo_mm", "Def_mm"}); err != nil {
		return err
	}
	for i, rec := range res.Records {
		tave := 0.5 * (rec.TmaxC + rec.TminC)
		row := []string{
			res.Day(i).Format(dateLayout),
			strconv.FormatFloat(rec.TmaxC, 'f', 3, 64),
			strconv.FormatFloat(rec.TminC, 'f', 3, 64),
			strconv.FormatFloat(tave, 'f', 3, 64),
			strconv.FormatFloat(rec.PrecipMM, 'f', 3, 64),
			strconv.FormatFloat(eto[i], 'f', 3, 64),
			strconv.FormatFloat(rec.PrecipMM-eto[i], 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write daily table: %w", err)
	}
	return f.Close()
}

// WriteEventSummary writes one realization's extreme-event report to
// <dir>/<label>_R<index>_EventsSummary.txt. Classes that never fired list
// the single pending pre-realization draw instead.
func WriteEventSummary(dir, label string, res *wg.Result) error {
	path := filepath.Join(dir, fmt.Sprintf("%s_R%d_EventsSummary.txt", label, res.Index))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create event summary: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "Event summary for realization %d\n", res.Index)
	fmt.Fprintf(f, "    Simulation from %s through %s\n\n",
		res.Start.Format(dateLayout), res.End.Format(dateLayout))
	for _, s := range res.Events {
		fmt.Fprintf(f, "    %s events\n", s.Name)
		if len(s.Log) > 0 {
			for _, e := range s.Log {
				fmt.Fprintf(f, "        %s  %5.1f mm\n", e.Date.Format(dateLayout), e.MagnitudeMM)
			}
		} else {
			pending := res.Start.Add(time.Duration(s.NextTriggerDay * 24 * float64(time.Hour)))
			fmt.Fprintf(f, "        No events triggered, first event %s  %5.1f mm\n",
				pending.Format(dateLayout), s.NextMagnitudeMM)
		}
		fmt.Fprintln(f)
	}
	return f.Close()
}

// Write emits both report files for one result. It matches the wg.Sink
// signature via a closure in the CLI.
func Write(dir, label string, latitudeDeg float64, res *wg.Result) error {
	if err := WriteDailyCSV(dir, label, res, latitudeDeg); err != nil {
		return err
	}
	return WriteEventSummary(dir, label, res)
}
