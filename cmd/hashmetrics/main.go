package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var logLevel string

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:     "hashmetrics",
	Short:   "Compare collision resolution techniques and hash functions",
	Version: version,
	Long: `
hashmetrics fills integer hash sets built on linear probing and on separate
chaining with random, sequential and clustered key sets, and reports load
factor, cluster lengths, operation timings and memory use for the Fibonacci
and the modulo hash function.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "log level")
		}
		log.SetLevel(level)

		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(0)
	},
}

func init() {
	cmdRoot.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "log level, one of panic, fatal, error, warning, info, debug or trace")
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
