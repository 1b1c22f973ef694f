package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gostonefire/hashmetrics"
	"github.com/gostonefire/hashmetrics/crt"
	"github.com/gostonefire/hashmetrics/hashfunc"
	"github.com/gostonefire/hashmetrics/internal/bench"
	"github.com/gostonefire/hashmetrics/internal/keyset"
	"github.com/gostonefire/hashmetrics/internal/report"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdRun = &cobra.Command{
	Use:   "run [flags]",
	Short: "Run the benchmark over all key sets",
	Long: `
The "run" command generates a random, a sequential and a clustered key set,
feeds each of them through every selected technique and hash function and
prints the resulting metrics. Timings are averaged over --repeats runs.

When --keys is not given the number of keys is read from standard input.

EXIT STATUS
===========

Exit status is 0 if the command was successful.
Exit status is 1 if there was a fatal error.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunBenchmark(cmd.InOrStdin(), cmd.OutOrStdout(), runOptions)
	},
}

// RunOptions bundles all options for the run command.
type RunOptions struct {
	Keys      int
	Capacity  int64
	Repeats   int
	Seed      int64
	Technique string
	Hash      string
	CSV       string
}

var runOptions RunOptions

func init() {
	cmdRoot.AddCommand(cmdRun)

	f := cmdRun.Flags()
	f.IntVar(&runOptions.Keys, "keys", 0, "number of keys per key set, read from stdin when 0")
	f.Int64Var(&runOptions.Capacity, "capacity", 17, "initial table capacity")
	f.IntVar(&runOptions.Repeats, "repeats", 5, "number of runs to average timings over")
	f.Int64Var(&runOptions.Seed, "seed", 42, "seed of the random key set")
	f.StringVar(&runOptions.Technique, "technique", "all", "collision resolution technique, one of linear, chaining or all")
	f.StringVar(&runOptions.Hash, "hash", "all", "hash function, one of fibonacci, modulo or all")
	f.StringVar(&runOptions.CSV, "csv", "", "also write results as CSV to `file`")
}

// RunBenchmark executes the benchmark described by opts, reading the number
// of keys from in if not set and printing the report to out.
func RunBenchmark(in io.Reader, out io.Writer, opts RunOptions) (err error) {
	techniques, err := parseTechniques(opts.Technique)
	if err != nil {
		return err
	}
	hashFunctions, err := parseHashFunctions(opts.Hash)
	if err != nil {
		return err
	}

	if opts.Keys == 0 {
		fmt.Fprint(out, "Enter number of keys: ")
		if _, err = fmt.Fscan(in, &opts.Keys); err != nil {
			return errors.Wrap(err, "read number of keys")
		}
	}
	if opts.Keys <= 0 {
		return errors.Errorf("invalid number of keys %d", opts.Keys)
	}

	var csvWriter *report.CSVWriter
	if opts.CSV != "" {
		var f *os.File
		f, err = os.Create(opts.CSV)
		if err != nil {
			return errors.Wrap(err, "create csv file")
		}
		defer func() {
			if cErr := f.Close(); cErr != nil && err == nil {
				err = errors.Wrap(cErr, "close csv file")
			}
		}()

		csvWriter, err = report.NewCSVWriter(f)
		if err != nil {
			return err
		}
	}

	datasets, err := keyset.Datasets(opts.Keys, opts.Seed)
	if err != nil {
		return err
	}

	log.Infof("benchmarking %d keys, initial capacity %d, %d repeats", opts.Keys, opts.Capacity, opts.Repeats)

	for _, dataset := range datasets {
		fmt.Fprintf(out, "===== Dataset: %s =====\n", dataset.Name)

		for _, technique := range techniques {
			for _, hashFunction := range hashFunctions {
				cfg := bench.Config{
					CollisionResolutionTechnique: technique,
					HashFunction:                 hashFunction,
					Capacity:                     opts.Capacity,
					Repeats:                      opts.Repeats,
				}

				var result bench.Result
				result, err = bench.Run(dataset, cfg)
				if err != nil {
					return err
				}

				title := fmt.Sprintf("-- %s / %s Hashing --", crt.Name(technique), hashFunction.Name())
				if err = report.PrintResult(out, title, result); err != nil {
					return err
				}

				if csvWriter != nil {
					if err = csvWriter.Write(result); err != nil {
						return err
					}
				}
			}
		}

		fmt.Fprintln(out)
	}

	if csvWriter != nil {
		return csvWriter.Flush()
	}

	return nil
}

func parseTechniques(s string) ([]int, error) {
	switch strings.ToLower(s) {
	case "linear":
		return []int{crt.LinearProbing}, nil
	case "chaining":
		return []int{crt.SeparateChaining}, nil
	case "all":
		return []int{crt.LinearProbing, crt.SeparateChaining}, nil
	default:
		return nil, errors.Errorf("unknown technique %q", s)
	}
}

func parseHashFunctions(s string) ([]hashfunc.HashFunction, error) {
	switch strings.ToLower(s) {
	case "fibonacci":
		return []hashfunc.HashFunction{hashmetrics.NewFibonacciHash()}, nil
	case "modulo":
		return []hashfunc.HashFunction{hashmetrics.NewModuloHash()}, nil
	case "all":
		return []hashfunc.HashFunction{hashmetrics.NewFibonacciHash(), hashmetrics.NewModuloHash()}, nil
	default:
		return nil, errors.Errorf("unknown hash function %q", s)
	}
}
