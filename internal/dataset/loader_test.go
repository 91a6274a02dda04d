package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"habitlens/adapters/excel"
	"habitlens/domain/student"
	"habitlens/internal/errors"
)

var header = strings.Join(student.RequiredColumns, ",")

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.csv")
	content := strings.Join(append([]string{header}, lines...), "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// row renders one CSV line in RequiredColumns order
func row(gender, major, semester, study, attendance, exam, dropout, support, sleep, stress string) string {
	return strings.Join([]string{gender, major, semester, study, attendance, exam, dropout, support, sleep, stress}, ",")
}

type stubSource struct {
	data *excel.ExcelData
	err  error
}

func (s stubSource) ReadData() (*excel.ExcelData, error) {
	return s.data, s.err
}

func TestLoadFileCSV(t *testing.T) {
	path := writeCSV(t,
		row("Female", "Computer Science", "Fall", "3.5", "92.1", "78", "No", "High", "7.2", "4"),
		row("Male", "Biology", "Spring", "1.0", "65", "55.5", "Yes", "Low", "5", "High"),
		row("Male", "", "Fall", "", "0", "NaN", "", "Medium", "6", "Low"),
	)

	ds, err := LoadFile(excel.ExcelConfig{FilePath: path})
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	rows := ds.Records()
	assert.Equal(t, "Female", rows[0].Gender)
	assert.Equal(t, "Computer Science", rows[0].Major)
	assert.InDelta(t, 3.5, rows[0].StudyHoursPerDay, 1e-9)
	assert.InDelta(t, 4.0, rows[0].StressLevel, 1e-9)
	assert.Equal(t, student.Bucket85To95, rows[0].AttendanceBucket())

	assert.InDelta(t, 3.0, rows[1].StressLevel, 1e-9, "ordinal stress label")
	assert.Equal(t, student.BucketUnder70, rows[1].AttendanceBucket())

	assert.Equal(t, "", rows[2].Major)
	assert.Equal(t, "", rows[2].DropoutRisk)
	assert.False(t, student.Has(rows[2].StudyHoursPerDay))
	assert.False(t, student.Has(rows[2].ExamScore))
	assert.Equal(t, student.AttendanceBucket(""), rows[2].AttendanceBucket())

	opts := ds.Options()
	assert.Equal(t, []string{"Female", "Male"}, opts.Genders)
	assert.Equal(t, []string{"Computer Science", "Biology"}, opts.Majors)
	assert.Equal(t, []string{"Fall", "Spring"}, opts.Semesters)
}

func TestLoadFileCapsAtMaxRows(t *testing.T) {
	lines := make([]string, 0, student.MaxRows+20)
	for i := 0; i < student.MaxRows+20; i++ {
		lines = append(lines, row("F", "CS", "1", "2", "80", fmt.Sprint(i), "No", "Low", "7", "5"))
	}
	path := writeCSV(t, lines...)

	ds, err := LoadFile(excel.ExcelConfig{FilePath: path})
	require.NoError(t, err)
	assert.Equal(t, student.MaxRows, ds.Len())

	rows := ds.Records()
	assert.InDelta(t, float64(student.MaxRows-1), rows[len(rows)-1].ExamScore, 1e-9)
}

func TestLoadFileRowsAfterCapAreNotParsed(t *testing.T) {
	lines := make([]string, 0, student.MaxRows+1)
	for i := 0; i < student.MaxRows; i++ {
		lines = append(lines, row("F", "CS", "1", "2", "80", "70", "No", "Low", "7", "5"))
	}
	lines = append(lines, row("F", "CS", "1", "two", "80", "70", "No", "Low", "7", "5"))
	path := writeCSV(t, lines...)

	ds, err := LoadFile(excel.ExcelConfig{FilePath: path})
	require.NoError(t, err)
	assert.Equal(t, student.MaxRows, ds.Len())
}

func TestLoadFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &student.RequiredColumns))
	values := []interface{}{"F", "Physics", "2", 4.5, 97, 88, "No", "High", 8, 2}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &values))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := LoadFile(excel.ExcelConfig{FilePath: path})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	r := ds.Records()[0]
	assert.Equal(t, "Physics", r.Major)
	assert.InDelta(t, 88.0, r.ExamScore, 1e-9)
	assert.Equal(t, student.BucketAbove95, r.AttendanceBucket())
}

func TestLoadFileXLSXUnknownSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := LoadFile(excel.ExcelConfig{FilePath: path, Sheet: "Students"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatasetInvalid, errors.GetCode(err))
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		message string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.csv") },
			message: "file not readable",
		},
		{
			name:    "header only",
			path:    func(t *testing.T) string { return writeCSV(t) },
			message: "at least a header row and one data row",
		},
		{
			name: "malformed number",
			path: func(t *testing.T) string {
				return writeCSV(t, row("F", "CS", "1", "lots", "80", "70", "No", "Low", "7", "5"))
			},
			message: "row 2: column study_hours_per_day: \"lots\" is not a number",
		},
		{
			name: "unknown stress label",
			path: func(t *testing.T) string {
				return writeCSV(t, row("F", "CS", "1", "2", "80", "70", "No", "Low", "7", "extreme"))
			},
			message: "column stress_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := LoadFile(excel.ExcelConfig{FilePath: tt.path(t)})
			assert.Nil(t, ds)
			require.Error(t, err)
			assert.Equal(t, errors.CodeDatasetInvalid, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestBuildReportsMissingColumns(t *testing.T) {
	data := &excel.ExcelData{
		Headers: []string{student.ColGender, student.ColMajor, student.ColSemester},
		Rows:    []excel.RawRowData{{student.ColGender: "F"}},
	}

	_, err := Build(data)
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatasetInvalid, errors.GetCode(err))
	assert.Contains(t, err.Error(), "study_hours_per_day")
	assert.Contains(t, err.Error(), "stress_level")
}

func TestLoaderWrapsSourceErrors(t *testing.T) {
	_, err := NewLoader(stubSource{err: errors.DatasetInvalid("locked")}).Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatasetInvalid, errors.GetCode(err))
	assert.Equal(t, "failed to read dataset: locked", err.Error())
}

func TestLoaderFromStubSource(t *testing.T) {
	rowData := excel.RawRowData{}
	for _, col := range student.RequiredColumns {
		rowData[col] = "1"
	}
	rowData[student.ColGender] = "N/A"

	ds, err := NewLoader(stubSource{data: &excel.ExcelData{
		Headers: student.RequiredColumns,
		Rows:    []excel.RawRowData{rowData},
	}}).Load()
	require.NoError(t, err)

	assert.Equal(t, "", ds.Records()[0].Gender)
	assert.Empty(t, ds.Options().Genders)
}
