package excel

// ExcelConfig holds configuration for the dataset file source
type ExcelConfig struct {
	FilePath string `json:"file_path"`
	Sheet    string `json:"sheet"`     // worksheet read from .xlsx files
	RowLimit int    `json:"row_limit"` // data rows to read, 0 reads everything
}

// DefaultExcelConfig returns sensible defaults for reading the student dataset
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		Sheet:    "Sheet1",
		RowLimit: 0,
	}
}
