package service

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/PraharshPatni13/brokerage-filler/dto"
)

// PDFProcessor opens a (possibly encrypted) PDF and reduces it to per-page
// text lines and table grids.
type PDFProcessor interface {
	Open(pdfData []byte, password string) (*dto.Document, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

const (
	// rowTolerance is the max Y distance between fragments of one text row.
	rowTolerance = 2.0
	// cellGap is the horizontal whitespace that separates two table cells.
	cellGap = 12.0
)

func (p *pdfProcessor) Open(pdfData []byte, password string) (*dto.Document, error) {
	// ledongthuc/pdf does not handle encrypted documents, so encrypted
	// input is decrypted with pdfcpu first.
	if password != "" {
		conf := model.NewDefaultConfiguration()
		conf.UserPW = password
		var decrypted bytes.Buffer
		if err := api.Decrypt(bytes.NewReader(pdfData), &decrypted, conf); err != nil {
			return nil, fmt.Errorf("failed to decrypt PDF: %w", err)
		}
		pdfData = decrypted.Bytes()
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	doc := &dto.Document{}
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows := groupTextRows(page.Content().Text)
		doc.Pages = append(doc.Pages, dto.Page{
			Lines:  rowLines(rows),
			Tables: detectTables(rows),
		})
	}

	return doc, nil
}

type textCell struct {
	x    float64
	text string
}

type textRow struct {
	y     float64
	cells []textCell
}

// groupTextRows clusters text fragments into visual rows by Y position,
// then into cells by the horizontal gaps between fragments.
func groupTextRows(texts []pdf.Text) []textRow {
	type fragRow struct {
		y     float64
		frags []pdf.Text
	}

	var rows []fragRow
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}

		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < rowTolerance {
				rows[i].frags = append(rows[i].frags, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, fragRow{y: t.Y, frags: []pdf.Text{t}})
		}
	}

	// PDF Y grows upward: higher Y comes first on the page.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	result := make([]textRow, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row.frags, func(i, j int) bool { return row.frags[i].X < row.frags[j].X })

		var cells []textCell
		var current strings.Builder
		var cellX, lastEnd float64

		for _, frag := range row.frags {
			if current.Len() > 0 && frag.X-lastEnd > cellGap {
				cells = append(cells, textCell{x: cellX, text: strings.TrimSpace(current.String())})
				current.Reset()
			}
			if current.Len() == 0 {
				cellX = frag.X
			}
			current.WriteString(frag.S)
			lastEnd = frag.X + frag.W
		}
		if current.Len() > 0 {
			cells = append(cells, textCell{x: cellX, text: strings.TrimSpace(current.String())})
		}

		result = append(result, textRow{y: row.y, cells: cells})
	}
	return result
}

func rowLines(rows []textRow) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		parts := make([]string, 0, len(row.cells))
		for _, c := range row.cells {
			parts = append(parts, c.text)
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

// detectTables treats maximal runs of consecutive multi-cell rows as
// tabular regions. A run needs at least a header row and one data row.
func detectTables(rows []textRow) []dto.Table {
	var tables []dto.Table
	var run []textRow

	flush := func() {
		if len(run) >= 2 {
			tables = append(tables, buildGrid(run))
		}
		run = nil
	}

	for _, row := range rows {
		if len(row.cells) >= 2 {
			run = append(run, row)
		} else {
			flush()
		}
	}
	flush()

	return tables
}

// buildGrid aligns the run's rows into columns using the header row's cell
// positions as column boundaries.
func buildGrid(run []textRow) dto.Table {
	bounds := make([]float64, len(run[0].cells))
	grid := make(dto.Table, len(run))

	header := make([]string, len(run[0].cells))
	for i, c := range run[0].cells {
		bounds[i] = c.x
		header[i] = c.text
	}
	grid[0] = header

	for ri := 1; ri < len(run); ri++ {
		cols := make([]string, len(bounds))
		for _, cell := range run[ri].cells {
			k := columnIndex(bounds, cell.x)
			if cols[k] != "" {
				cols[k] += " " + cell.text
			} else {
				cols[k] = cell.text
			}
		}
		grid[ri] = cols
	}

	return grid
}

func columnIndex(bounds []float64, x float64) int {
	col := 0
	for k, b := range bounds {
		if x >= b-rowTolerance {
			col = k
		} else {
			break
		}
	}
	return col
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
