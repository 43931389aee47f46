package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/bpjs"
	"github.com/dannyaudian/payroll-indonesia-go/fixtures"
	"github.com/dannyaudian/payroll-indonesia-go/internal/config"
	"github.com/dannyaudian/payroll-indonesia-go/internal/validator"
	"github.com/dannyaudian/payroll-indonesia-go/pph21"
	"github.com/dannyaudian/payroll-indonesia-go/rates"
	"github.com/dannyaudian/payroll-indonesia-go/slip"
)

// terInput is the JSON payload for the monthly modes.
type terInput struct {
	Employee slip.Record `json:"employee"`
	Slip     *slip.Slip  `json:"slip"`
}

type decemberInput struct {
	Employee      slip.Record      `json:"employee"`
	Slips         []*slip.Slip     `json:"slips"`
	TaxPaidJanNov *decimal.Decimal `json:"tax_paid_jan_nov,omitempty"`
}

type bpjsInput struct {
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func main() {
	mode := flag.String("mode", "ter", "calculation mode: ter, december or bpjs")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.App.LogLevel)
	pph21.SetLogger(logger)
	bpjs.SetLogger(logger)

	store := rates.NewCachedStore(fixtures.DefaultStore(), cfg.RateCacheTTL)

	payload, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Println("Error reading input:", err)
		os.Exit(1)
	}

	var result any
	switch *mode {
	case "ter":
		var in terInput
		if err := json.Unmarshal(payload, &in); err != nil {
			fmt.Println("Error parsing input:", err)
			os.Exit(1)
		}
		result, err = pph21.CalculateMonthlyTER(in.Employee, in.Slip, store, cfg.Tax)
	case "december":
		var in decemberInput
		if err := json.Unmarshal(payload, &in); err != nil {
			fmt.Println("Error parsing input:", err)
			os.Exit(1)
		}
		result, err = pph21.CalculateDecember(in.Employee, in.Slips, in.TaxPaidJanNov, store, cfg.Tax)
	case "bpjs":
		var in bpjsInput
		if err := json.Unmarshal(payload, &in); err != nil {
			fmt.Println("Error parsing input:", err)
			os.Exit(1)
		}
		result, err = bpjs.Calculate(in.BaseSalary, cfg.BPJS)
	default:
		fmt.Println("Unknown mode:", *mode)
		os.Exit(1)
	}
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields, _ := json.MarshalIndent(verrs.ToMap(), "", "  ")
			fmt.Fprintln(os.Stderr, "Invalid input:", string(fields))
			os.Exit(1)
		}
		fmt.Println("Calculation failed:", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Println("Error encoding result:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
