package processor

import (
	"fmt"

	"github.com/orayew2002/rast-attendance/excel"
	"github.com/orayew2002/rast-attendance/template"
	"github.com/xuri/excelize/v2"
)

// Processor applies one registry of template handlers to workbook sheets and
// remembers which placeholders it found.
type Processor struct {
	registry *template.Registry
	matched  map[string]bool
}

// New creates a Processor with the given template registry.
func New(registry *template.Registry) *Processor {
	return &Processor{registry: registry, matched: make(map[string]bool)}
}

// ProcessSheet runs the registry over every non-empty cell of sheet. Rows
// are read once up front; handlers that insert rows must sit in their own pass.
func (p *Processor) ProcessSheet(f *excelize.File, sheet string) error {
	return p.ProcessRows(f, sheet, -1)
}

// ProcessRows is ProcessSheet restricted to the first limit rows. A negative
// limit means every row.
func (p *Processor) ProcessRows(f *excelize.File, sheet string, limit int) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("sheet %q: get rows: %w", sheet, err)
	}
	if limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	for row := range rows {
		for col := range rows[row] {
			value := rows[row][col]
			if value == "" {
				continue
			}

			pattern, err := p.registry.Process(f, sheet, row, col, value)
			if err != nil {
				cell := excel.CellName(row, col)
				return fmt.Errorf("sheet %q: cell %s: %w", sheet, cell, err)
			}
			if pattern != "" {
				p.matched[pattern] = true
			}
		}
	}

	return nil
}

// Missing lists the registered placeholders no processed cell contained.
func (p *Processor) Missing() []string {
	var missing []string
	for _, pattern := range p.registry.Patterns() {
		if !p.matched[pattern] {
			missing = append(missing, pattern)
		}
	}
	return missing
}
