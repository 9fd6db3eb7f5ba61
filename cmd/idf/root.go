package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/idataframe/internal/catalog"
	"github.com/JonMunkholm/idataframe/internal/config"
	"github.com/JonMunkholm/idataframe/internal/format"
)

// version is set at build time via -ldflags.
var version = "dev"

// cfg is loaded by main before any command runs.
var cfg *config.Config

var rootFlags struct {
	catalog string
	output  string
}

// installedCatalog guards against installing the same catalog twice.
var installedCatalog string

var rootCmd = &cobra.Command{
	Use:   "idf",
	Short: "Classify table columns into semantic types",
	Long: "idf parses the columns of a CSV or JSON file as semantic types\n" +
		"(email, address, amount, ...) and reports a diagnostic for every\n" +
		"value that could not be classified.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadCatalog,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.catalog, "catalog", "", "YAML or TOML type catalog (overrides IDF_CATALOG)")
	f.StringVarP(&rootFlags.output, "output", "o", "", "Output format: ascii, markdown or csv (overrides IDF_OUTPUT)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.Version = version
}

// loadCatalog installs the user type catalog, if one is configured.
func loadCatalog(cmd *cobra.Command, _ []string) error {
	path := cfg.Catalog.Path
	if rootFlags.catalog != "" {
		path = rootFlags.catalog
	}
	if path == "" || path == installedCatalog {
		return nil
	}

	c, err := catalog.Load(path)
	if err != nil {
		return err
	}
	if err := c.Install(); err != nil {
		return err
	}
	installedCatalog = path

	slog.Debug("catalog installed", "path", path, "types", c.Names())
	return nil
}

// outputMode resolves the output format from the flag or the configuration.
func outputMode() (format.Mode, error) {
	name := cfg.Output.Format
	if rootFlags.output != "" {
		name = rootFlags.output
	}
	m, err := format.ParseMode(name)
	if err != nil {
		return m, fmt.Errorf("invalid value for --output: %w", err)
	}
	return m, nil
}
