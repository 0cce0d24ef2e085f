package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/hyperjump/pdftext/internal/extract"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file]",
		Short: "Write the plain text of a PDF to standard output",
		Long: `Extract opens the PDF, extracts the text of each page in order and writes
the concatenation to standard output, with a newline after every page (empty
pages included). Nothing is written when the document cannot be opened or a
page cannot be decoded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			path, err := resolveDocumentPath(args, cfg)
			if err != nil {
				return err
			}
			text, err := extractText(extract.NewExtractor(extract.WithLogger(logger)), path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
}
