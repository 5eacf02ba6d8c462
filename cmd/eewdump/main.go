package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ftl/eew-fastcast/config"
)

var (
	format         string
	validateOnly   bool
	epicenterCodes string
	areaCodes      string
	outputEncoding string
	envFile        string
)

var rootCmd = &cobra.Command{
	Use:   "eewdump [file...]",
	Short: "Decode JMA earthquake early warning telegrams",
	Long: `eewdump decodes fastcast telegrams of the JMA earthquake early warning (緊急地震速報)
for advanced users and prints their content.

The input may contain any number of telegrams, each one terminated by "9999=".
Without file arguments, or with "-", the telegrams are read from stdin.

Examples:
  # Print a telegram as Japanese text
  eewdump telegram.txt

  # Print all telegrams of a log as JSON lines
  eewdump --format json eew.log

  # Only check the telegrams, the exit code is 1 if any of them is invalid
  eewdump --validate eew.log

  # Use complete code tables
  eewdump --epicenter-codes epicenter.csv --area-codes area.csv telegram.txt`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runDump,
}

func init() {
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json)")
	rootCmd.Flags().BoolVar(&validateOnly, "validate", false, "Only validate the telegrams")
	rootCmd.Flags().StringVar(&epicenterCodes, "epicenter-codes", "", "CSV file with epicenter codes (default: built-in table, or EEW_EPICENTER_CODES)")
	rootCmd.Flags().StringVar(&areaCodes, "area-codes", "", "CSV file with area codes (default: built-in table, or EEW_AREA_CODES)")
	rootCmd.Flags().StringVarP(&outputEncoding, "encoding", "e", "utf-8", "Output encoding (utf-8, shift_jis, euc-jp, iso-2022-jp)")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "File with environment variables")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if epicenterCodes != "" {
		cfg.EpicenterCodes = epicenterCodes
	}
	if areaCodes != "" {
		cfg.AreaCodes = areaCodes
	}
	logger := cfg.NewLogger(cmd.ErrOrStderr())
	for _, table := range cfg.BuiltinTables() {
		logger.Warn("using the built-in code table, it only covers part of Japan", "table", table)
	}

	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s", format)
	}
	decoder, err := cfg.NewDecoder()
	if err != nil {
		logger.Error("failed to load code tables", "error", err)
		return err
	}
	out, err := encodedWriter(cmd.OutOrStdout(), outputEncoding)
	if err != nil {
		return err
	}
	defer func() {
		// iso-2022-jp writes its final escape sequence on close
		if closeErr := out.Close(); closeErr != nil && err == nil {
			logger.Error("failed to write output", "error", closeErr)
			err = closeErr
		}
	}()

	d := &dumper{
		decoder:  decoder,
		json:     format == "json",
		validate: validateOnly,
		out:      out,
		logger:   logger,
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		if err := dumpFile(d, cmd.InOrStdin(), name); err != nil {
			logger.Error("failed to read telegrams", "source", name, "error", err)
			return err
		}
	}

	logger.Debug("done", "telegrams", d.count, "invalid", d.invalid)
	if d.invalid > 0 {
		return fmt.Errorf("%d of %d telegrams are invalid", d.invalid, d.count)
	}
	return nil
}

func dumpFile(d *dumper, stdin io.Reader, name string) error {
	if name == "-" {
		return d.dump("stdin", stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.dump(name, f)
}
