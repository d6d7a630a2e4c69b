package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/alexanderjulianmartinez/tablecheck/internal/config"
	"github.com/alexanderjulianmartinez/tablecheck/internal/logging"
	"github.com/alexanderjulianmartinez/tablecheck/internal/quality"
	"github.com/alexanderjulianmartinez/tablecheck/internal/source/yamlfile"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tablecheck error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 2 {
		printUsage(out)
		return nil
	}

	switch args[1] {
	case "check":
		return runCheck(args[2:], out)
	case "help", "--help", "-h":
		printUsage(out)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func runCheck(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to config.yaml")
	envFile := flags.String("env", ".env", "Optional dotenv file with TABLECHECK_* overrides")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *configPath == "" {
		return fmt.Errorf("missing required flag: --config")
	}

	if err := loadEnv(*envFile); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(logging.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Console: cfg.Log.Console,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	logger = logger.With(zap.String("run_id", uuid.NewString()))

	snap, err := yamlfile.Load(cfg.Snapshot)
	if err != nil {
		logger.Error("failed to load snapshot", zap.String("path", cfg.Snapshot), zap.Error(err))
		return err
	}
	if snap.Name != "" {
		logger = logger.With(zap.String("table", snap.Name))
	}

	inspector, err := quality.NewInspector(snap.Table, logger)
	if err != nil {
		return err
	}

	report := inspector.Inspect(quality.Plan{
		Completeness:    cfg.Checks.Completeness,
		Uniqueness:      cfg.Checks.Uniqueness,
		TypeConsistency: cfg.Checks.TypeConsistency,
	})

	printReport(out, snap, report, cfg.Checks.TypeConsistency)
	return nil
}

func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file: %w", err)
}

func printReport(out io.Writer, snap *yamlfile.Snapshot, report *quality.Report, typesChecked bool) {
	name := snap.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(out, "Table: %s (%d rows, %d columns)\n", name, snap.Table.NumRows(), snap.Table.NumColumns())
	fmt.Fprintf(out, "Columns: %s\n", strings.Join(snap.Table.ColumnNames(), ", "))

	for _, res := range report.Results {
		fmt.Fprintf(out, "[%s] %s: %s\n", res.Status, res.Check, res)
	}
	if typesChecked {
		mismatches := 0
		for _, iss := range report.Issues {
			if iss.Check != quality.TypeConsistencyCheck {
				continue
			}
			mismatches++
			fmt.Fprintf(out, "[%s] %s: %s: %s\n", iss.Severity, iss.Check, iss.Column, iss.Message)
		}
		if mismatches == 0 {
			fmt.Fprintf(out, "[INFO] %s: all columns have consistent data types\n", quality.TypeConsistencyCheck)
		}
	}

	fmt.Fprintf(out, "Issues found: %d\n", len(report.Issues))
}

func printUsage(out io.Writer) {
	fmt.Fprint(out, `tablecheck - table data-quality checker

Usage:
  tablecheck check --config <path> [--env <path>]

Commands:
  check     Run completeness, uniqueness and type consistency checks
  help      Show this help message
`)
}
