/*
payrollctl computes payroll files from the command line.

	payrollctl calc -in workers.csv [-out results.csv] [-year 2024 -month 3]
	                [-payslips DIR] [-concurrency N]
	payrollctl simulate [-n 1000]

calc reads a worker CSV whose columns are the JSON field names, writes one
result row per worker (stdout by default) and optionally a PDF payslip for
every worker that could be computed. Rows that fail validation are kept in
the output with status "rejected". The exit status is 1 when no row could
be computed.

simulate prints the total net salary of n synthetic workers.

LOG_LEVEL and BATCH_CONCURRENCY are read from the environment as for the
server. Logs go to stderr.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"payroll-engine/internal/config"
	"payroll-engine/internal/csvio"
	"payroll-engine/internal/engine"
	"payroll-engine/internal/intake"
	"payroll-engine/internal/logging"
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
	"payroll-engine/internal/payslip"
)

var errNothingComputed = errors.New("no worker could be computed")

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cfg := config.Load()
	logger, err := logging.New(os.Stderr, cfg.LogLevel, "text")
	if err != nil {
		log.Fatal(err)
	}

	switch os.Args[1] {
	case "calc":
		err = runCalc(os.Args[2:], cfg, logger, os.Stdout)
	case "simulate":
		err = runSimulate(os.Args[2:], os.Stdout)
	case "-h", "--help", "help":
		usage(os.Stdout)
		return
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: payrollctl calc -in workers.csv [-out results.csv] [-year Y -month M] [-payslips DIR] [-concurrency N]")
	fmt.Fprintln(w, "       payrollctl simulate [-n count]")
}

func runCalc(args []string, cfg config.Config, logger *log.Logger, stdout io.Writer) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	in := fs.String("in", "", "worker CSV file")
	out := fs.String("out", "", "result CSV file (default stdout)")
	year := fs.Int("year", 0, "payroll year")
	month := fs.Int("month", 0, "payroll month, 1-12")
	payslipDir := fs.String("payslips", "", "directory for PDF payslips")
	concurrency := fs.Int("concurrency", cfg.BatchConcurrency, "parallel workers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("calc: -in is required")
	}
	period := model.Period{Year: *year, Month: *month}

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open workers: %w", err)
	}
	entries, err := csvio.ReadWorkers(f)
	f.Close()
	if err != nil {
		return err
	}

	resp, err := engine.ProcessBatch(context.Background(), entries, period, *concurrency)
	if err != nil {
		return err
	}

	if err := writeResults(*out, stdout, entries, resp.Results); err != nil {
		return err
	}

	if *payslipDir != "" {
		if err := os.MkdirAll(*payslipDir, 0o755); err != nil {
			return fmt.Errorf("create payslip dir: %w", err)
		}
		for _, o := range resp.Results {
			if o.Payroll == nil {
				continue
			}
			path, err := payslip.WriteFile(*payslipDir, o.Index, *o.Record, *o.Payroll, period)
			if err != nil {
				return err
			}
			logger.Debugf("wrote payslip %s", path)
		}
	}

	entry := logger.WithFields(log.Fields{
		"calculation_id": resp.Metadata.CalculationID,
		"workers":        len(entries),
		"computed":       resp.Summary.EmployeeCount,
		"total_net":      resp.Summary.TotalNet,
	})
	switch resp.Metadata.CalculationOutcome {
	case model.OutcomeFailure:
		return errNothingComputed
	case model.OutcomePartial:
		entry.Warn("some workers were rejected")
	default:
		entry.Info("payroll calculated")
	}
	return nil
}

// writeResults writes the result CSV to path, or to stdout when path is
// empty. Close errors on the file are returned.
func writeResults(path string, stdout io.Writer, entries []intake.Entry, outcomes []model.WorkerOutcome) error {
	if path == "" {
		return csvio.WriteResults(stdout, entries, outcomes)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results: %w", err)
	}
	if err := csvio.WriteResults(f, entries, outcomes); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close results %s: %w", path, err)
	}
	return nil
}

func runSimulate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	n := fs.Int("n", 1000, "number of synthetic workers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 {
		return errors.New("simulate: -n must not be negative")
	}
	_, err := fmt.Fprintf(stdout, "%.2f\n", payroll.Simulate(*n))
	return err
}
