package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orayew2002/rast-attendance/attendance"
	"github.com/orayew2002/rast-attendance/domain"
	"github.com/orayew2002/rast-attendance/htmlreport"
	"github.com/orayew2002/rast-attendance/metrics"
	"github.com/orayew2002/rast-attendance/processor"
	"github.com/rs/zerolog"
)

// Format selects the serializer.
type Format string

const (
	XLSX Format = "xlsx"
	HTML Format = "html"
)

// ParseFormat accepts "xlsx" or "html"; blank means xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", XLSX:
		return XLSX, nil
	case HTML:
		return HTML, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// ContentType is the MIME type of the rendered document.
func (f Format) ContentType() string {
	if f == HTML {
		return "text/html; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Output is one rendered report.
type Output struct {
	ID       string
	FileName string
	Format   Format
	Body     []byte
	Report   domain.Report
}

// Service runs the generator and a serializer for one request at a time.
// It keeps no per-request state.
type Service struct {
	logger      *zerolog.Logger
	filePrefix  string
	defaultSeed uint64
}

// NewService creates a Service. defaultSeed is used when a request brings
// none; zero means a fresh seed per request.
func NewService(logger *zerolog.Logger, filePrefix string, defaultSeed uint64) *Service {
	return &Service{logger: logger, filePrefix: filePrefix, defaultSeed: defaultSeed}
}

// Build generates the month for every roster row and renders it.
func (s *Service) Build(req attendance.Request, format Format, seed uint64) (*Output, error) {
	start := time.Now()
	id := uuid.NewString()
	log := s.logger.With().Str("report_id", id).Str("format", string(format)).Logger()

	report := s.generate(req, seed, &log)

	var buf bytes.Buffer
	switch format {
	case HTML:
		if err := htmlreport.Render(&buf, report); err != nil {
			metrics.IncFailed("render")
			return nil, err
		}
	default:
		data, err := processor.RenderWorkbook(report)
		if err != nil {
			metrics.IncFailed("render")
			return nil, fmt.Errorf("render workbook: %w", err)
		}
		buf.Write(data)
		format = XLSX
	}

	took := time.Since(start)
	metrics.ObserveReport(string(format), len(report.Employees), took)
	log.Info().
		Int("employees", len(report.Employees)).
		Int("bytes", buf.Len()).
		Dur("took", took).
		Msg("report generated")

	return &Output{
		ID:       id,
		FileName: FileName(s.filePrefix, req.Year, req.Month, format),
		Format:   format,
		Body:     buf.Bytes(),
		Report:   report,
	}, nil
}

// Preview generates without rendering.
func (s *Service) Preview(req attendance.Request, seed uint64) domain.Report {
	log := s.logger.With().Str("report_id", uuid.NewString()).Logger()
	return s.generate(req, seed, &log)
}

func (s *Service) generate(req attendance.Request, seed uint64, log *zerolog.Logger) domain.Report {
	if seed == 0 {
		seed = s.defaultSeed
	}

	gen := attendance.New(attendance.NewRand(seed), attendance.WithProgress(func(fraction float64) {
		log.Debug().Float64("progress", fraction).Msg("employee processed")
	}))

	log.Debug().
		Int("year", req.Year).
		Int("month", req.Month).
		Int("roster", len(req.Roster)).
		Int("holidays", len(req.Holidays)).
		Msg("generating attendance")

	return gen.Generate(req)
}

// FileName returns e.g. "NFP_Attendance_February_2026.xlsx".
func FileName(prefix string, year, month int, format Format) string {
	label := strconv.Itoa(month) + "_" + strconv.Itoa(year)
	if month >= 1 && month <= 12 {
		label = time.Month(month).String() + "_" + strconv.Itoa(year)
	}

	name := "Attendance_" + label + "." + string(format)
	if prefix != "" {
		name = prefix + "_" + name
	}
	return name
}
