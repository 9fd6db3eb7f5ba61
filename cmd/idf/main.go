// idf classifies the columns of CSV and JSON files into semantic types.
//
// Usage:
//
//	idf parse -f people.csv -c Email=email -c Street=address [--diagnostics]
//	idf classify count 12 3.7 abc
//	idf types [--scale ordinal]
//	idf matches address
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/idataframe/internal/config"
	"github.com/JonMunkholm/idataframe/internal/core"
	_ "github.com/JonMunkholm/idataframe/internal/core/itypes" // Register built-in types
	"github.com/JonMunkholm/idataframe/internal/logging"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	loaded, err := config.Load()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
	cfg = loaded

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints the user message followed by the technical detail.
func reportError(w io.Writer, err error) {
	ue := core.NewUserError(err)
	slog.Debug("command failed", "code", ue.User.Code, "error", ue.Technical)
	fmt.Fprintln(w, core.FormatUserError(err))
	fmt.Fprintf(w, "  %v\n", ue.Technical)
}
