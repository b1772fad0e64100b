package dto

import "errors"

// Custom errors
var (
	ErrMissingFiles      = errors.New("both PDF and Excel files are required")
	ErrInvalidFileFormat = errors.New("invalid file format. PDF and Excel files only")
	ErrEmptySpreadsheet  = errors.New("spreadsheet has no rows")
	ErrMissingColumns    = errors.New("spreadsheet is missing the Schemename or BrokerageName column")
	ErrUnreadableExcel   = errors.New("failed to read Excel file")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
