package service

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/PraharshPatni13/brokerage-filler/config"
	"github.com/PraharshPatni13/brokerage-filler/dto"
	"github.com/PraharshPatni13/brokerage-filler/utils"
)

// Fixed column identifiers expected in the brokerage spreadsheet, and the
// two output columns carrying the resolved rate. B15 is the legacy alias
// of T15 and always holds the same value.
const (
	schemeColumn    = "Schemename"
	brokerageColumn = "BrokerageName"
	rateColumn      = "T15"
	rateAliasColumn = "B15"
)

// maxLegacyRows bounds how many rows are read from a legacy .xls workbook.
const maxLegacyRows = 65536

// FillService resolves every spreadsheet row against an extracted registry
// and writes the augmented workbook.
type FillService struct {
	cfg *config.Config
}

func NewFillService(cfg *config.Config) *FillService {
	return &FillService{cfg: cfg}
}

// Fill reads the spreadsheet, resolves a rate for each row, and returns the
// output workbook bytes. All original columns pass through unchanged; rows
// with no resolvable rate get empty rate cells, never zero.
func (s *FillService) Fill(excelData []byte, filename string, registry dto.SchemeRegistry) ([]byte, error) {
	grid, err := readSpreadsheet(excelData, filename)
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, dto.ErrEmptySpreadsheet
	}

	header := grid[0]
	schemeCol, tierCol := -1, -1
	dateCols := make(map[int]bool)
	for i, col := range header {
		switch col {
		case schemeColumn:
			schemeCol = i
		case brokerageColumn:
			tierCol = i
		}
		lower := strings.ToLower(col)
		if strings.Contains(lower, "date") && !strings.Contains(lower, "brokerage") {
			dateCols[i] = true
		}
	}
	if schemeCol < 0 || tierCol < 0 {
		return nil, dto.ErrMissingColumns
	}

	resolver := NewRateResolver(registry, s.cfg, utils.NewFuzzyMatcher())

	out := excelize.NewFile()
	defer out.Close()
	sheet := out.GetSheetName(0)

	for i, col := range header {
		setCell(out, sheet, i+1, 1, col)
	}
	rateIdx := len(header) + 1
	setCell(out, sheet, rateIdx, 1, rateColumn)
	setCell(out, sheet, rateIdx+1, 1, rateAliasColumn)

	filled := 0
	for ri, row := range grid[1:] {
		outRow := ri + 2
		for ci := range header {
			value := ""
			if ci < len(row) {
				value = row[ci]
			}
			if dateCols[ci] {
				value = reformatDate(value)
			}
			if value != "" {
				setCell(out, sheet, ci+1, outRow, value)
			}
		}

		scheme := cellAt(row, schemeCol)
		tierLabel := cellAt(row, tierCol)
		if rate, ok := resolver.Resolve(scheme, tierLabel); ok {
			value, _ := rate.Float64()
			setCell(out, sheet, rateIdx, outRow, value)
			setCell(out, sheet, rateIdx+1, outRow, value)
			filled++
		}
	}
	log.Printf("Resolved rates for %d of %d spreadsheet rows", filled, len(grid)-1)

	buf, err := out.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write output Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// readSpreadsheet loads the first sheet into a row grid. Legacy .xls
// workbooks go through extrame/xls, everything else through excelize.
func readSpreadsheet(data []byte, filename string) ([][]string, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".xls" {
		wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", dto.ErrUnreadableExcel, err)
		}
		return wb.ReadAllCells(maxLegacyRows), nil
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrUnreadableExcel, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrUnreadableExcel, err)
	}
	return rows, nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		log.Printf("Failed to set cell %s: %v", cell, err)
	}
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"01-02-06",
	"2-Jan-06",
}

// reformatDate rewrites recognizable date values as DD-MM-YYYY and leaves
// everything else untouched.
func reformatDate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("02-01-2006")
		}
	}
	return value
}
