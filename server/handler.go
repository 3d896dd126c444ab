// Package server exposes the attendance generator as a web form and a small
// JSON API.
package server

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/orayew2002/rast-attendance/attendance"
	"github.com/orayew2002/rast-attendance/domain"
	"github.com/orayew2002/rast-attendance/employee"
	"github.com/orayew2002/rast-attendance/metrics"
	"github.com/orayew2002/rast-attendance/report"
	"github.com/orayew2002/rast-attendance/server/response"
	"github.com/rs/zerolog"
)

const (
	ReportIDHeader = "X-Report-ID"

	monthLayout        = "2006-01"
	rosterTemplateName = "roster_template.xlsx"
	sampleRosterSize   = 10
)

var errTooLarge = errors.New("upload exceeds the size limit")

//go:embed form.html.tmpl
var formHTML string

var formPage = template.Must(template.New("form").Parse(formHTML))

// Options are the request defaults taken from the configuration.
type Options struct {
	Company string
	// Holidays returns the default holidays of a year; nil means none.
	Holidays       func(year int) []domain.Holiday
	MaxUploadBytes int64
}

type Handler struct {
	service *report.Service
	logger  *zerolog.Logger
	opts    Options
}

func NewHandler(service *report.Service, logger *zerolog.Logger, opts Options) *Handler {
	return &Handler{service: service, logger: logger, opts: opts}
}

type formView struct {
	Company  string
	Month    string
	Holidays string
	Format   string
	Seed     string
	Error    string
}

type generateRequest struct {
	req    attendance.Request
	format report.Format
	seed   uint64
}

type previewEmployee struct {
	Code      string                 `json:"code"`
	Name      string                 `json:"name"`
	SheetName string                 `json:"sheet_name"`
	Summary   domain.EmployeeSummary `json:"summary"`
}

type previewResponse struct {
	Company   string              `json:"company"`
	Year      int                 `json:"year"`
	Month     int                 `json:"month"`
	Title     string              `json:"title"`
	Employees []previewEmployee   `json:"employees"`
	Index     []domain.IndexEntry `json:"index"`
}

// Form renders the upload form with the configured defaults.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, http.StatusOK, h.defaults())
}

// Generate builds the report and streams it back as an attachment.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	in, err := h.parse(w, r)
	if err != nil {
		metrics.IncFailed("input")
		h.logger.Warn().Err(err).Msg("rejected generation request")

		view := h.echo(r)
		view.Error = err.Error()
		h.renderForm(w, statusFor(err), view)
		return
	}

	out, err := h.service.Build(in.req, in.format, in.seed)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to build report")

		view := h.echo(r)
		view.Error = "Could not generate the report, please try again."
		h.renderForm(w, http.StatusInternalServerError, view)
		return
	}

	w.Header().Set("Content-Type", out.Format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Body)))
	w.Header().Set(ReportIDHeader, out.ID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Body); err != nil {
		h.logger.Warn().Err(err).Str("report_id", out.ID).Msg("failed to write report body")
	}
}

// Preview returns the per-employee summaries and the index as JSON.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	in, err := h.parse(w, r)
	if err != nil {
		metrics.IncFailed("input")
		if errors.Is(err, errTooLarge) {
			response.RequestTooLarge(w, err.Error())
			return
		}
		response.BadRequest(w, "Invalid request", map[string]string{"form": err.Error()})
		return
	}

	rep := h.service.Preview(in.req, in.seed)

	data := previewResponse{
		Company:   rep.Company,
		Year:      rep.Year,
		Month:     rep.Month,
		Title:     rep.Title(),
		Employees: make([]previewEmployee, 0, len(rep.Employees)),
		Index:     rep.Index,
	}
	for i, er := range rep.Employees {
		data.Employees = append(data.Employees, previewEmployee{
			Code:      er.Employee.Code,
			Name:      er.Employee.Name,
			SheetName: rep.Index[i].SheetName,
			Summary:   er.Summary,
		})
	}

	response.Success(w, data)
}

// RosterTemplate serves a small sample roster with the expected columns.
func (h *Handler) RosterTemplate(w http.ResponseWriter, r *http.Request) {
	data, err := employee.WriteToBytes(employee.Sample(sampleRosterSize))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to build roster template")
		response.InternalServerError(w, "Failed to build roster template")
		return
	}

	w.Header().Set("Content-Type", report.XLSX.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rosterTemplateName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) (*generateRequest, error) {
	if h.opts.MaxUploadBytes > 0 {
		if r.ContentLength > h.opts.MaxUploadBytes {
			return nil, errTooLarge
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errTooLarge
		}
		return nil, fmt.Errorf("read form: %w", err)
	}

	company := strings.TrimSpace(r.FormValue("company"))
	if company == "" {
		company = h.opts.Company
	}

	rawMonth := strings.TrimSpace(r.FormValue("month"))
	if rawMonth == "" {
		return nil, errors.New("month is required")
	}
	month, err := time.Parse(monthLayout, rawMonth)
	if err != nil {
		return nil, fmt.Errorf("month %q: want YYYY-MM", rawMonth)
	}

	holidays := h.defaultHolidays(month.Year())
	if _, ok := r.MultipartForm.Value["holidays"]; ok {
		holidays, err = domain.ParseHolidayLines(r.FormValue("holidays"))
		if err != nil {
			return nil, err
		}
	}

	format, err := report.ParseFormat(r.FormValue("format"))
	if err != nil {
		return nil, err
	}

	var seed uint64
	if raw := strings.TrimSpace(r.FormValue("seed")); raw != "" {
		seed, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed %q: must be a non-negative integer", raw)
		}
	}

	file, _, err := r.FormFile("roster")
	if err != nil {
		return nil, errors.New("roster file is required")
	}
	defer file.Close()

	roster, err := employee.ReadRoster(file)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}

	return &generateRequest{
		req: attendance.Request{
			Company:  company,
			Year:     month.Year(),
			Month:    int(month.Month()),
			Holidays: holidays,
			Roster:   roster,
		},
		format: format,
		seed:   seed,
	}, nil
}

// echo refills the form from the submitted values. Nothing is echoed when
// the body was never parsed.
func (h *Handler) echo(r *http.Request) formView {
	v := h.defaults()
	if r.MultipartForm == nil {
		return v
	}

	value := func(key string) string {
		if vals := r.MultipartForm.Value[key]; len(vals) > 0 {
			return vals[0]
		}
		return ""
	}
	if company := value("company"); company != "" {
		v.Company = company
	}
	if format := value("format"); format != "" {
		v.Format = format
	}
	v.Month = value("month")
	v.Holidays = value("holidays")
	v.Seed = value("seed")
	return v
}

func (h *Handler) defaults() formView {
	now := time.Now()
	return formView{
		Company:  h.opts.Company,
		Month:    now.Format(monthLayout),
		Holidays: holidayLines(h.defaultHolidays(now.Year())),
		Format:   string(report.XLSX),
	}
}

func (h *Handler) defaultHolidays(year int) []domain.Holiday {
	if h.opts.Holidays == nil {
		return nil
	}
	return h.opts.Holidays(year)
}

func (h *Handler) renderForm(w http.ResponseWriter, status int, view formView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := formPage.Execute(w, view); err != nil {
		h.logger.Error().Err(err).Msg("failed to render form")
	}
}

func statusFor(err error) int {
	if errors.Is(err, errTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func holidayLines(list []domain.Holiday) string {
	lines := make([]string, 0, len(list))
	for _, h := range list {
		lines = append(lines, h.Date.Format(time.DateOnly)+" "+h.Name)
	}
	return strings.Join(lines, "\n")
}
