// Package main provides the CLI entry point for wizard.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Rusal0/Wizard/pkg/wizard"
	"github.com/Rusal0/Wizard/pkg/wizard/output"
)

const (
	exitAbort      = 1
	exitEmptyMerge = 2
)

var (
	configPath           string
	outputPath           string
	reportPath           string
	skipBadCells         bool
	noConditionalFormats bool
	maxCells             int
	password             string
	verbose              bool
	jsonLogs             bool
)

// exitError carries a specific process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	rootCmd := &cobra.Command{
		Use:   "wizard",
		Short: "Split and merge Excel workbooks",
		Long: `wizard splits a workbook into one file per sheet, or merges several
workbooks into one, keeping cell values and formatting.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Options file (.yaml, .yml, .json, .jsonc)")
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path")
	flags.StringVar(&reportPath, "report", "", "Write warnings and errors as JSON to this file")
	flags.BoolVar(&skipBadCells, "skip-bad-cells", false, "Skip unreadable cells instead of dropping their sheet")
	flags.BoolVar(&noConditionalFormats, "no-conditional-formats", false, "Do not copy conditional formatting rules")
	flags.IntVar(&maxCells, "max-cells", -1, "Maximum cells per input (0 = unlimited, default from config)")
	flags.StringVar(&password, "password", "", "Password for encrypted workbooks")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	flags.BoolVar(&jsonLogs, "json", false, "Log as JSON")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "split [input.xlsx]",
		Short: "Split a workbook into one workbook per sheet, packed in a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE:  runSplit,
	}, &cobra.Command{
		Use:   "merge [input.xlsx...]",
		Short: "Merge the sheets of several workbooks into one workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMerge,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(exitAbort)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	logrus.SetOutput(os.Stderr)
	if jsonLogs {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func loadOptions() (wizard.Options, error) {
	opts := wizard.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = wizard.LoadConfig(configPath); err != nil {
			return opts, err
		}
	}
	if skipBadCells {
		opts.CellFailure = wizard.SkipCell
	}
	if noConditionalFormats {
		include := false
		opts.IncludeConditionalFormats = &include
	}
	if maxCells >= 0 {
		opts.Limits.MaxCells = maxCells
	}
	if password != "" {
		opts.Password = password
	}
	opts.Logger = logrus.StandardLogger()
	return opts, nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	in, err := wizard.LoadInput(args[0])
	if err != nil {
		return err
	}

	result, err := wizard.Split(in, opts)
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	target := outputPath
	if target == "" {
		target = in.Stem() + "_sheets.zip"
	}
	if err := os.WriteFile(target, result.Archive, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := writeReport(result); err != nil {
		return err
	}

	for _, entry := range result.Entries {
		fmt.Printf("  %s\n", color.HiYellowString(entry))
	}
	printWarnings(result.Warnings)
	fmt.Printf("%d sheets written to %s\n", len(result.Entries), color.HiYellowString(filepath.Base(target)))
	return nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	inputs := make([]wizard.Input, 0, len(args))
	for _, path := range args {
		in, err := wizard.LoadInput(path)
		if err != nil {
			return err
		}
		inputs = append(inputs, in)
	}

	result, err := wizard.Merge(inputs, opts)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	if err := writeReport(result); err != nil {
		return err
	}

	for _, inputErr := range result.Errors {
		fmt.Println(color.RedString("  %v", inputErr))
	}
	printWarnings(result.Warnings)
	if result.Workbook == nil {
		return &exitError{code: exitEmptyMerge, err: wizard.ErrEmptyMerge}
	}

	target := outputPath
	if target == "" {
		target = "merged.xlsx"
	}
	if err := os.WriteFile(target, result.Workbook, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, title := range result.Sheets {
		fmt.Printf("  %s\n", color.HiYellowString(title))
	}
	fmt.Printf("%d sheets from %d of %d files written to %s\n",
		len(result.Sheets), len(inputs)-len(result.Errors), len(inputs), color.HiYellowString(filepath.Base(target)))
	return nil
}

func writeReport(report any) error {
	if reportPath == "" {
		return nil
	}
	data, err := output.ToJSON(report, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(reportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// printWarnings prints a one-line summary; each warning is also logged.
func printWarnings(warnings []wizard.Warning) {
	if len(warnings) > 0 {
		fmt.Println(color.HiBlackString("  %d warnings", len(warnings)))
	}
}
