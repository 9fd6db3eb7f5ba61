package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/idataframe/internal/core"
	"github.com/JonMunkholm/idataframe/internal/format"
)

var classifyCmd = &cobra.Command{
	Use:     "classify TYPE VALUE...",
	Short:   "Classify values given on the command line",
	Example: "  idf classify email 'Ana@Example.COM' not-an-email",
	Args:    cobra.MinimumNArgs(2),
	RunE:    runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	mode, err := outputMode()
	if err != nil {
		return err
	}

	cells := make([]any, len(args)-1)
	for i, v := range args[1:] {
		cells[i] = v
	}

	c, err := core.NewByName(args[0], cells)
	if err != nil {
		return err
	}

	opts := cfg.Parse.ParseOptions()
	opts.Verbose = false
	table, msgs := c.Parse(opts)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, format.Table(table, mode, -1))
	fmt.Fprintln(out)
	fmt.Fprintln(out, format.Diagnostics([]core.ColumnReport{{
		Column:   c.Name(),
		Type:     c.Descriptor().Name,
		Table:    table,
		Messages: msgs,
	}}, mode))
	return nil
}
