package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/idataframe/internal/core"
	"github.com/JonMunkholm/idataframe/internal/format"
)

var typesFlags struct {
	scale string
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered semantic types",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

var matchesCmd = &cobra.Command{
	Use:   "matches TYPE",
	Short: "Show the match cascade of a type in trial order",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatches,
}

func init() {
	typesCmd.Flags().StringVar(&typesFlags.scale, "scale", "", "Only list types on this scale: nominal, ordinal, interval or ratio")
}

func runTypes(cmd *cobra.Command, _ []string) error {
	mode, err := outputMode()
	if err != nil {
		return err
	}

	defs := core.All()
	if typesFlags.scale != "" {
		scale, err := core.ParseScaleKind(typesFlags.scale)
		if err != nil {
			return fmt.Errorf("invalid value for --scale: %w", err)
		}
		defs = core.ByScale(scale)
	}

	fmt.Fprintln(cmd.OutOrStdout(), format.Types(defs, mode))
	return nil
}

func runMatches(cmd *cobra.Command, args []string) error {
	mode, err := outputMode()
	if err != nil {
		return err
	}

	// A probe column is enough to build the cascade.
	c, err := core.NewByName(args[0], []any{""})
	if err != nil {
		return err
	}

	tb := format.NewTable(mode)
	tb.Header("#", "Match", "Pattern", "Template")
	for i, m := range c.Matches() {
		tb.Row(i+1, m.Name, m.Pattern, m.Template)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	return nil
}
