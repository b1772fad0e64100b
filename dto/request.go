package dto

import (
	"mime/multipart"
	"path/filepath"
	"strings"
)

// FillRequest represents the incoming fill request: one rate PDF and one
// brokerage spreadsheet.
type FillRequest struct {
	PDF   *multipart.FileHeader `form:"pdf" binding:"required"`
	Excel *multipart.FileHeader `form:"excel" binding:"required"`
}

// Validate performs basic validation on the request
func (r *FillRequest) Validate() error {
	if r.PDF == nil || r.Excel == nil {
		return ErrMissingFiles
	}
	if !hasExtension(r.PDF.Filename, ".pdf") {
		return ErrInvalidFileFormat
	}
	if !hasExtension(r.Excel.Filename, ".xlsx", ".xls") {
		return ErrInvalidFileFormat
	}
	return nil
}

func hasExtension(filename string, allowed ...string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
