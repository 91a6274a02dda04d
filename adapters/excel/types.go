package excel

// RawRowData represents one data row as header -> trimmed cell text
type RawRowData map[string]string

// ExcelData represents the tabular content of a CSV file or worksheet
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}

// HasColumn reports whether the header row contains name
func (d *ExcelData) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}
