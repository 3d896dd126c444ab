// Package htmlreport renders a generated report as one standalone HTML page.
package htmlreport

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/orayew2002/rast-attendance/domain"
)

//go:embed report.html.tmpl
var reportHTML string

var page = template.Must(template.New("report").Funcs(template.FuncMap{
	"isSunday": func(r domain.DayRecord) bool { return r.Kind == domain.KindSunday },
}).Parse(reportHTML))

type view struct {
	Report domain.Report
	Title  string
	Sheets []sheet
}

type sheet struct {
	Anchor  string
	Entry   domain.IndexEntry
	Records []domain.DayRecord
	Summary domain.EmployeeSummary
	StdNote string
}

// Render writes report to w.
func Render(w io.Writer, report domain.Report) error {
	if len(report.Index) != len(report.Employees) {
		return fmt.Errorf("index has %d entries for %d employees", len(report.Index), len(report.Employees))
	}

	v := view{Report: report, Title: report.Title()}
	for i, er := range report.Employees {
		v.Sheets = append(v.Sheets, sheet{
			Anchor:  anchor(i),
			Entry:   report.Index[i],
			Records: er.Records,
			Summary: er.Summary,
			StdNote: fmt.Sprintf("(%d Days x %d Hrs)", er.Summary.PresentDays, domain.StandardHoursPerDay),
		})
	}

	if err := page.Execute(w, v); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func anchor(i int) string {
	return fmt.Sprintf("emp-%d", i+1)
}
