// Package main is the pdftext CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyperjump/pdftext/internal/config"
	"github.com/hyperjump/pdftext/internal/extract"
	"github.com/hyperjump/pdftext/pkg/utils"
)

// version is set at build time via ldflags.
var version = "dev"

// stdinPath selects standard input as the document source.
const stdinPath = "-"

// errNoDocument is returned when neither an argument nor document.path names a file.
var errNoDocument = errors.New("no document given: pass a file argument or set document.path in the config file")

// newRootCmd builds the command tree. Each call returns fresh commands and flags.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pdftext",
		Short: "Extract plain text from PDF documents",
		Long: `pdftext reads a PDF document page by page and writes its plain text to
standard output, one newline after every page.

The document is given as an argument, or as document.path in the config file
(./pdftext.yaml by default). Use "-" to read the PDF from standard input.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "config file (default: ./"+config.LocalConfigName+" when present)")
	root.PersistentFlags().Bool("debug", false, "enable debug logging on stderr")

	root.AddCommand(newExtractCmd(), newWatchCmd(), newVersionCmd())
	return root
}

// setup loads the config named by --config and builds the logger.
// --debug overrides the config's debug setting when set.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, used, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Debug("config loaded",
		zap.String("config_path", used),
		zap.Bool("debug", cfg.Debug),
		zap.String("document_path", cfg.Document.Path),
	)
	return cfg, logger, nil
}

// resolveDocumentPath returns the positional argument if given, else the configured path.
func resolveDocumentPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Document.Path != "" {
		return cfg.Document.Path, nil
	}
	return "", errNoDocument
}

// extractText extracts path, reading the PDF from stdin when path is "-".
func extractText(e *extract.Extractor, path string, stdin io.Reader) (string, error) {
	if path != stdinPath {
		return e.Extract(path)
	}
	content, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return e.ExtractBytes(content)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
