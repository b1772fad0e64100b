package service

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/PraharshPatni13/brokerage-filler/dto"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for ri, row := range rows {
		for ci, value := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func readWorkbook(t *testing.T, data []byte) (*excelize.File, string) {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f, f.GetSheetName(0)
}

func fillRegistry() dto.SchemeRegistry {
	return dto.SchemeRegistry{
		"abc fund": dto.SchemeRates{
			dto.TierFirstYear:  decimal.NewFromFloat(0.5),
			dto.TierSecondYear: decimal.NewFromFloat(0.3),
		},
	}
}

func TestFillResolvesRows(t *testing.T) {
	input := buildWorkbook(t, [][]interface{}{
		{"Schemename", "BrokerageName", "Amount"},
		{"ABC Fund", "FIRST YEAR TRAIL", 1000},
		{"ABC Fnd", "SECOND YEAR TRAIL", 2000},
		{"XYZ Totally Different", "FIRST YEAR TRAIL", 3000},
	})

	svc := NewFillService(extractConfig(""))
	output, err := svc.Fill(input, "brokerage.xlsx", fillRegistry())
	require.NoError(t, err)

	f, sheet := readWorkbook(t, output)

	// Header passes through with the two rate columns appended.
	d1, _ := f.GetCellValue(sheet, "D1")
	e1, _ := f.GetCellValue(sheet, "E1")
	assert.Equal(t, "T15", d1)
	assert.Equal(t, "B15", e1)

	// Exact match.
	d2, _ := f.GetCellValue(sheet, "D2")
	e2, _ := f.GetCellValue(sheet, "E2")
	assert.Equal(t, "0.5", d2)
	assert.Equal(t, d2, e2)

	// Fuzzy match on a misspelled scheme name.
	d3, _ := f.GetCellValue(sheet, "D3")
	assert.Equal(t, "0.3", d3)

	// Unmatched scheme leaves the rate cells empty, never zero.
	d4, _ := f.GetCellValue(sheet, "D4")
	e4, _ := f.GetCellValue(sheet, "E4")
	assert.Equal(t, "", d4)
	assert.Equal(t, "", e4)

	// Original columns pass through unchanged.
	a2, _ := f.GetCellValue(sheet, "A2")
	c2, _ := f.GetCellValue(sheet, "C2")
	assert.Equal(t, "ABC Fund", a2)
	assert.Equal(t, "1000", c2)
}

func TestFillEmptyRegistryLeavesAllRowsEmpty(t *testing.T) {
	input := buildWorkbook(t, [][]interface{}{
		{"Schemename", "BrokerageName"},
		{"ABC Fund", "FIRST YEAR TRAIL"},
	})

	svc := NewFillService(extractConfig(""))
	output, err := svc.Fill(input, "brokerage.xlsx", dto.SchemeRegistry{})
	require.NoError(t, err)

	f, sheet := readWorkbook(t, output)
	c2, _ := f.GetCellValue(sheet, "C2")
	assert.Equal(t, "", c2)
}

func TestFillMissingColumns(t *testing.T) {
	input := buildWorkbook(t, [][]interface{}{
		{"Schemename", "Amount"},
		{"ABC Fund", 1000},
	})

	svc := NewFillService(extractConfig(""))
	_, err := svc.Fill(input, "brokerage.xlsx", fillRegistry())

	assert.ErrorIs(t, err, dto.ErrMissingColumns)
}

func TestFillUnreadableInput(t *testing.T) {
	svc := NewFillService(extractConfig(""))
	_, err := svc.Fill([]byte("not a workbook"), "brokerage.xlsx", fillRegistry())

	assert.ErrorIs(t, err, dto.ErrUnreadableExcel)
}

func TestFillReformatsDateColumns(t *testing.T) {
	input := buildWorkbook(t, [][]interface{}{
		{"Schemename", "BrokerageName", "Trade Date"},
		{"ABC Fund", "FIRST YEAR TRAIL", "2026-03-15"},
		{"ABC Fund", "FIRST YEAR TRAIL", "not a date"},
	})

	svc := NewFillService(extractConfig(""))
	output, err := svc.Fill(input, "brokerage.xlsx", fillRegistry())
	require.NoError(t, err)

	f, sheet := readWorkbook(t, output)
	c2, _ := f.GetCellValue(sheet, "C2")
	c3, _ := f.GetCellValue(sheet, "C3")
	assert.Equal(t, "15-03-2026", c2)
	assert.Equal(t, "not a date", c3)
}
