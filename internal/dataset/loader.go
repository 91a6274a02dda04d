// Package dataset builds the immutable student dataset from a CSV or Excel
// source. Loading happens once at startup and every failure is fatal.
package dataset

import (
	"math"
	"strconv"
	"strings"

	"habitlens/adapters/excel"
	"habitlens/domain/student"
	"habitlens/internal"
	"habitlens/internal/errors"
)

var logger = internal.NewDefaultLogger("Loader")

// Source yields the raw table a dataset is built from
type Source interface {
	ReadData() (*excel.ExcelData, error)
}

// Loader validates and parses a raw table into a student.Dataset
type Loader struct {
	source Source
}

// NewLoader creates a loader over any table source
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// LoadFile reads the configured CSV or worksheet, capped at student.MaxRows
func LoadFile(config excel.ExcelConfig) (*student.Dataset, error) {
	config.RowLimit = student.MaxRows
	return NewLoader(excel.NewDataReader(config)).Load()
}

// Load reads the source and builds the dataset
func (l *Loader) Load() (*student.Dataset, error) {
	data, err := l.source.ReadData()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read dataset")
	}
	return Build(data)
}

// Build checks the header row and parses at most student.MaxRows rows
func Build(data *excel.ExcelData) (*student.Dataset, error) {
	var missing []string
	for _, col := range student.RequiredColumns {
		if !data.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.DatasetInvalidf("missing required columns: %s", strings.Join(missing, ", "))
	}

	rows := data.Rows
	if len(rows) > student.MaxRows {
		rows = rows[:student.MaxRows]
	}

	records := make([]student.Record, 0, len(rows))
	for i, row := range rows {
		r, err := parseRecord(row)
		if err != nil {
			// header is line 1
			return nil, errors.Wrapf(err, "row %d", i+2)
		}
		records = append(records, r)
	}

	ds := student.NewDataset(records)
	opts := ds.Options()
	logger.Info("Dataset ready: %d rows, %d genders, %d majors, %d semesters",
		ds.Len(), len(opts.Genders), len(opts.Majors), len(opts.Semesters))
	return ds, nil
}

func parseRecord(row excel.RawRowData) (student.Record, error) {
	var r student.Record
	var err error

	r.Gender = categorical(row[student.ColGender])
	r.Major = categorical(row[student.ColMajor])
	r.Semester = categorical(row[student.ColSemester])
	r.DropoutRisk = categorical(row[student.ColDropoutRisk])
	r.ParentalSupportLevel = categorical(row[student.ColParentalSupport])

	numerics := []struct {
		column string
		dst    *float64
	}{
		{student.ColStudyHours, &r.StudyHoursPerDay},
		{student.ColAttendance, &r.AttendancePercentage},
		{student.ColExamScore, &r.ExamScore},
		{student.ColSleepHours, &r.SleepHours},
	}
	for _, n := range numerics {
		if *n.dst, err = number(n.column, row[n.column]); err != nil {
			return r, err
		}
	}

	if r.StressLevel, err = stress(row[student.ColStressLevel]); err != nil {
		return r, err
	}
	return r, nil
}

// missingTokens are cell values read as "no value"
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

func isMissing(cell string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(cell))]
}

func categorical(cell string) string {
	if isMissing(cell) {
		return ""
	}
	return strings.TrimSpace(cell)
}

func number(column, cell string) (float64, error) {
	if isMissing(cell) {
		return student.Missing(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, errors.DatasetInvalidf("column %s: %q is not a number", column, cell)
	}
	return v, nil
}

// stressLevels maps ordinal stress labels onto the numeric scale
var stressLevels = map[string]float64{
	"low":      1,
	"medium":   2,
	"moderate": 2,
	"high":     3,
}

func stress(cell string) (float64, error) {
	if v, ok := stressLevels[strings.ToLower(strings.TrimSpace(cell))]; ok {
		return v, nil
	}
	return number(student.ColStressLevel, cell)
}
