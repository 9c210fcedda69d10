package climo

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CurvePair is one loaded statistic: Tmax and Tmin series for a basin.
type CurvePair struct {
	Tmax Curve
	Tmin Curve
}

// LoadCurveCSV reads one smoothed climatology table. The file format is
// basin,day,tmax_c,tmin_c with a header row; days are 1-based day-of-year.
// Tables with 365 rows are accepted: the leap day reuses day 365.
func LoadCurveCSV(path, basin string) (CurvePair, error) {
	var cp CurvePair
	f, err := os.Open(path)
	if err != nil {
		return cp, fmt.Errorf("open climatology table: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return cp, fmt.Errorf("parse climatology table %s: %w", path, err)
	}
	if len(rows) < 2 {
		return cp, fmt.Errorf("climatology table %s has no data rows", path)
	}

	seen := make(map[int]bool, DaysPerYear)
	for _, row := range rows[1:] {
		if len(row) != 4 {
			return cp, fmt.Errorf("climatology table %s: expected 4 columns, got %d", path, len(row))
		}
		if row[0] != basin {
			continue
		}
		day, err := strconv.Atoi(row[1])
		if err != nil || day < 1 || day > DaysPerYear {
			return cp, fmt.Errorf("climatology table %s: bad day %q", path, row[1])
		}
		tmax, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return cp, fmt.Errorf("climatology table %s day %d: bad tmax_c %q", path, day, row[2])
		}
		tmin, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return cp, fmt.Errorf("climatology table %s day %d: bad tmin_c %q", path, day, row[3])
		}
		cp.Tmax[day-1] = tmax
		cp.Tmin[day-1] = tmin
		seen[day] = true
	}
	if len(seen) == 0 {
		return cp, fmt.Errorf("climatology table %s: no rows for basin %q", path, basin)
	}
	for day := 1; day <= DaysPerYear-1; day++ {
		if !seen[day] {
			return cp, fmt.Errorf("climatology table %s: basin %q missing day %d", path, basin, day)
		}
	}
	if !seen[DaysPerYear] {
		cp.Tmax[DaysPerYear-1] = cp.Tmax[DaysPerYear-2]
		cp.Tmin[DaysPerYear-1] = cp.Tmin[DaysPerYear-2]
	}
	return cp, nil
}

// CurveFiles names the four tables a basin climatology is loaded from.
type CurveFiles struct {
	WetMean string `yaml:"wet_mean"`
	WetStd  string `yaml:"wet_std"`
	DryMean string `yaml:"dry_mean"`
	DryStd  string `yaml:"dry_std"`
}

// LoadCurves assembles the full CurveSet for a basin from its four tables.
func LoadCurves(files CurveFiles, basin string) (CurveSet, error) {
	var cs CurveSet
	wm, err := LoadCurveCSV(files.WetMean, basin)
	if err != nil {
		return cs, err
	}
	ws, err := LoadCurveCSV(files.WetStd, basin)
	if err != nil {
		return cs, err
	}
	dm, err := LoadCurveCSV(files.DryMean, basin)
	if err != nil {
		return cs, err
	}
	ds, err := LoadCurveCSV(files.DryStd, basin)
	if err != nil {
		return cs, err
	}
	cs.WetTmaxMean, cs.WetTminMean = wm.Tmax, wm.Tmin
	cs.WetTmaxStd, cs.WetTminStd = ws.Tmax, ws.Tmin
	cs.DryTmaxMean, cs.DryTminMean = dm.Tmax, dm.Tmin
	cs.DryTmaxStd, cs.DryTminStd = ds.Tmax, ds.Tmin
	return cs, nil
}
