package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/idataframe/internal/core"
	"github.com/JonMunkholm/idataframe/internal/format"
	"github.com/JonMunkholm/idataframe/internal/logging"
	"github.com/JonMunkholm/idataframe/internal/source"
)

var parseFlags struct {
	file        string
	columns     []string
	maxValues   int
	maxMessages int
	dedupe      bool
	rows        int
	quiet       bool
	diagnostics bool
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Classify the columns of a CSV or JSON file",
	Example: "  idf parse -f people.csv -c Email=email -c Street=address\n" +
		"  idf parse -f ledger.json -c Total=balance --max-messages 5 --diagnostics",
	RunE: runParse,
}

func init() {
	f := parseCmd.Flags()
	f.StringVarP(&parseFlags.file, "file", "f", "", "CSV or JSON file (required)")
	f.StringArrayVarP(&parseFlags.columns, "column", "c", nil, "Column mapping NAME=TYPE (repeatable)")
	f.IntVar(&parseFlags.maxValues, "max-values", 0, "Stop each column after this row index, -1 for no limit (overrides IDF_MAX_VALUES)")
	f.IntVar(&parseFlags.maxMessages, "max-messages", 0, "Stop each column after this many diagnostics, -1 for no limit (overrides IDF_MAX_MESSAGES)")
	f.BoolVar(&parseFlags.dedupe, "dedupe", false, "Report each distinct diagnostic once (overrides IDF_DEDUPE_MESSAGES)")
	f.IntVar(&parseFlags.rows, "rows", 0, "Rows to render, -1 for all (overrides IDF_OUTPUT_MAX_ROWS)")
	f.BoolVarP(&parseFlags.quiet, "quiet", "q", false, "Only print the summary")
	f.BoolVar(&parseFlags.diagnostics, "diagnostics", false, "Print every diagnostic")

	_ = parseCmd.MarkFlagRequired("file")
}

// columnMapping assigns a semantic type to a source column.
type columnMapping struct {
	column   string
	typeName string
}

// parseMapping splits "Column=type". The column name may itself contain '='.
func parseMapping(s string) (columnMapping, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 || i == len(s)-1 {
		return columnMapping{}, fmt.Errorf("invalid column mapping %q (use NAME=TYPE)", s)
	}
	return columnMapping{
		column:   strings.TrimSpace(s[:i]),
		typeName: strings.TrimSpace(s[i+1:]),
	}, nil
}

// parseOptions applies the flags the user set on top of the configuration.
func parseOptions(cmd *cobra.Command) core.ParseOptions {
	p := cfg.Parse
	flags := cmd.Flags()
	if flags.Changed("max-values") {
		p.MaxValues = parseFlags.maxValues
	}
	if flags.Changed("max-messages") {
		p.MaxMessages = parseFlags.maxMessages
	}
	if flags.Changed("dedupe") {
		p.DedupeMessages = parseFlags.dedupe
	}
	return p.ParseOptions()
}

func runParse(cmd *cobra.Command, _ []string) error {
	if len(parseFlags.columns) == 0 {
		return fmt.Errorf("invalid column mapping: at least one --column NAME=TYPE is required")
	}
	mappings := make([]columnMapping, 0, len(parseFlags.columns))
	for _, s := range parseFlags.columns {
		m, err := parseMapping(s)
		if err != nil {
			return err
		}
		mappings = append(mappings, m)
	}

	mode, err := outputMode()
	if err != nil {
		return err
	}
	opts := parseOptions(cmd)
	if opts.MaxMessages == 0 {
		return fmt.Errorf("invalid value for --max-messages: must be positive, or -1 for no limit")
	}

	ctx := logging.WithSessionID(cmd.Context(), uuid.NewString())
	logger := logging.WithFields(ctx, "file", parseFlags.file)

	data, err := source.Load(parseFlags.file)
	if err != nil {
		return err
	}
	frame, err := data.Frame()
	if err != nil {
		return err
	}
	frame.SetLogger(logger)

	for _, m := range mappings {
		if err := frame.Register(m.column, m.typeName); err != nil {
			return err
		}
	}

	logger.Info("parsing file", "rows", data.Rows(), "columns", len(mappings))
	reports := frame.ParseAll(opts)

	rows := cfg.Output.MaxRows
	if cmd.Flags().Changed("rows") {
		rows = parseFlags.rows
	}

	out := cmd.OutOrStdout()
	if !parseFlags.quiet {
		fmt.Fprintln(out, format.Table(frame.DF(), mode, rows))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, format.Summary(reports, mode))
	if parseFlags.diagnostics {
		fmt.Fprintln(out)
		fmt.Fprintln(out, format.Diagnostics(reports, mode))
	}
	return nil
}
