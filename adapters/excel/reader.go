package excel

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"habitlens/internal/errors"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	config   ExcelConfig
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the file named in config. The file type
// is taken from the extension; anything other than .csv is read as xlsx.
func NewDataReader(config ExcelConfig) *DataReader {
	if config.Sheet == "" {
		config.Sheet = DefaultExcelConfig().Sheet
	}
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{config: config, fileType: fileType}
}

// ReadData reads the header row and up to RowLimit data rows
func (r *DataReader) ReadData() (*ExcelData, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.config.FilePath)

	if _, err := os.Stat(r.config.FilePath); err != nil {
		return nil, errors.Wrapf(errors.DatasetInvalid(err.Error()), "%s file not readable", strings.ToUpper(r.fileType))
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	default:
		return r.readExcelData()
	}
}

// readExcelData streams rows from the configured worksheet
func (r *DataReader) readExcelData() (*ExcelData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, errors.Wrap(errors.DatasetInvalid(err.Error()), "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.Rows(r.config.Sheet)
	if err != nil {
		return nil, errors.Wrapf(errors.DatasetInvalid(err.Error()), "failed to read sheet %q", r.config.Sheet)
	}
	defer rows.Close()

	var raw [][]string
	for rows.Next() {
		if r.limitReached(len(raw)) {
			break
		}
		cols, err := rows.Columns()
		if err != nil {
			return nil, errors.Wrapf(errors.DatasetInvalid(err.Error()), "failed to read row %d", len(raw)+1)
		}
		raw = append(raw, cols)
	}
	if err := rows.Error(); err != nil {
		return nil, errors.Wrap(errors.DatasetInvalid(err.Error()), "failed to iterate sheet")
	}
	log.Printf("[DataReader] Sheet %s read in %.2fms (%d rows)", r.config.Sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(raw))

	return r.processRows(raw)
}

// readCSVData reads CSV records until the row limit
func (r *DataReader) readCSVData() (*ExcelData, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, errors.Wrap(errors.DatasetInvalid(err.Error()), "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()

	var raw [][]string
	for !r.limitReached(len(raw)) {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.DatasetInvalid(err.Error()), "failed to read CSV file")
		}
		raw = append(raw, record)
	}
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(raw))

	return r.processRows(raw)
}

// limitReached reports whether n raw rows (header included) already cover the limit
func (r *DataReader) limitReached(n int) bool {
	return r.config.RowLimit > 0 && n > r.config.RowLimit
}

// processRows converts raw string rows into ExcelData format
func (r *DataReader) processRows(rows [][]string) (*ExcelData, error) {
	if len(rows) < 2 {
		return nil, errors.DatasetInvalidf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType))
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rowData := make(RawRowData, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &ExcelData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
