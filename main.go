package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/orayew2002/rast-attendance/attendance"
	"github.com/orayew2002/rast-attendance/config"
	"github.com/orayew2002/rast-attendance/domain"
	"github.com/orayew2002/rast-attendance/employee"
	"github.com/orayew2002/rast-attendance/metrics"
	"github.com/orayew2002/rast-attendance/report"
	"github.com/orayew2002/rast-attendance/server"
	"github.com/rs/zerolog"
)

const sampleRosterSize = 10

// holidayFlags collects repeated -holiday values.
type holidayFlags []domain.Holiday

func (h *holidayFlags) String() string {
	parts := make([]string, 0, len(*h))
	for _, hol := range *h {
		parts = append(parts, hol.Date.Format(time.DateOnly)+"="+hol.Name)
	}
	return strings.Join(parts, ",")
}

func (h *holidayFlags) Set(v string) error {
	hol, err := domain.ParseHoliday(v)
	if err != nil {
		return err
	}
	*h = append(*h, hol)
	return nil
}

func main() {
	var holidays holidayFlags

	configPath := flag.String("config", "", "path to the YAML config (default $ATTENDANCE_CONFIG or configs/config.yaml)")
	serve := flag.Bool("serve", false, "run the web form instead of a one-shot generation")
	input := flag.String("input", "", "path to the roster Excel file")
	output := flag.String("output", "", "path of the generated file (default <prefix>_Attendance_<Month>_<Year>.<format>)")
	month := flag.String("month", time.Now().Format("2006-01"), "target month as YYYY-MM")
	company := flag.String("company", "", "company name printed on every sheet (default from config)")
	format := flag.String("format", "xlsx", "output format: xlsx or html")
	seed := flag.Uint64("seed", 0, "random seed; 0 draws a fresh one")
	rosterTemplate := flag.String("roster-template", "", "write a sample roster workbook to this path and exit")
	flag.Var(&holidays, "holiday", "holiday as YYYY-MM-DD=Name, repeatable (default from config)")
	flag.Parse()

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(console).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Str("log_level", cfg.App.LogLevel).Msg("invalid log level")
	}
	logger = logger.Level(level)

	if cfg.Monitoring.PrometheusEnabled {
		metrics.Register()
	}

	svc := report.NewService(&logger, cfg.Report.FilePrefix, cfg.Report.Seed)

	if *serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		h := server.NewHandler(svc, &logger, server.Options{
			Company:        cfg.Report.CompanyName,
			Holidays:       cfg.HolidaysFor,
			MaxUploadBytes: cfg.MaxUploadBytes(),
		})
		router := server.NewRouter(h, server.RouterOptions{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
			Metrics:        cfg.Monitoring.PrometheusEnabled,
			AccessLog:      true,
		})
		if err := server.Serve(ctx, cfg.Addr(), router, &logger); err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
		return
	}

	if *rosterTemplate != "" {
		if err := employee.WriteToFile(employee.Sample(sampleRosterSize), *rosterTemplate); err != nil {
			fmt.Fprintf(os.Stderr, "roster template: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("done:", *rosterTemplate)
		return
	}

	if *input == "" {
		fmt.Fprintln(os.Stderr, "either -input or -serve is required")
		flag.Usage()
		os.Exit(2)
	}

	if *company == "" {
		*company = cfg.Report.CompanyName
	}

	if err := generate(svc, *input, *output, *month, *company, *format, *seed, holidays, cfg.HolidaysFor); err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}
}

func generate(svc *report.Service, input, output, month, company, rawFormat string, seed uint64, holidays []domain.Holiday, defaults func(year int) []domain.Holiday) error {
	target, err := time.Parse("2006-01", month)
	if err != nil {
		return fmt.Errorf("month %q: want YYYY-MM", month)
	}
	if len(holidays) == 0 {
		holidays = defaults(target.Year())
	}

	format, err := report.ParseFormat(rawFormat)
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	roster, err := employee.ReadRoster(f)
	if err != nil {
		return err
	}

	out, err := svc.Build(attendance.Request{
		Company:  company,
		Year:     target.Year(),
		Month:    int(target.Month()),
		Holidays: holidays,
		Roster:   roster,
	}, format, seed)
	if err != nil {
		return err
	}

	if output == "" {
		output = out.FileName
	}
	if err := os.WriteFile(output, out.Body, 0644); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Println("done:", output)
	return nil
}
