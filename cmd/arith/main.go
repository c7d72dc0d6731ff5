// Package main is the entry point for the arith command line evaluator.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lemonberrylabs/arith/pkg/expr"
)

// errExpectedExpression is the usage error for a missing expression.
var errExpectedExpression = errors.New("expected expression!")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arith EXPRESSION",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate one arithmetic expression using + - * / and parentheses.
Numbers are 32-bit floats; * and / bind tighter than + and -.`,
		Example: `  arith "2 * (3 + 4)"
  arith "-3 + 4"`,
		// Expressions such as "-3 + 4" look like flags, so the root command
		// takes its arguments verbatim.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  configureLogging,
		RunE:               runEvaluate,
	}

	rootCmd.PersistentFlags().Bool("log-with-shortfile", false, "log with short file name")
	rootCmd.PersistentFlags().Bool("log-with-timestamp", true, "log with timestamp")

	rootCmd.AddCommand(cmdServe())
	rootCmd.AddCommand(cmdVersion())
	return rootCmd
}

func configureLogging(cmd *cobra.Command, args []string) error {
	logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
	logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
	logFlags := 0
	if logWithShortFileName {
		logFlags |= log.Lshortfile
	}
	if logWithTimestamp {
		logFlags |= log.LstdFlags
	}
	log.SetFlags(logFlags)
	return nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 1 {
		switch args[0] {
		case "-h", "--help":
			return cmd.Help()
		case "--version":
			return printVersion(cmd.OutOrStdout())
		}
	}
	if len(args) == 0 {
		return errExpectedExpression
	}
	if len(args) > 1 {
		return fmt.Errorf("expected a single expression argument, got %d (quote the expression)", len(args))
	}

	result, err := expr.Eval(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), expr.FormatNumber(result))
	return err
}

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "arith version %s\n", versionString())
	return err
}

func cmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVersion(cmd.OutOrStdout())
		},
	}
}
