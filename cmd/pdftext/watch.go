package main

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyperjump/pdftext/internal/extract"
	"github.com/hyperjump/pdftext/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-extract a PDF every time it changes",
		Long: `Watch extracts the document once, then writes its full text again each time
the file is written or replaced, until interrupted. Extraction failures while
watching are logged and watching continues.`,
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
			if path == stdinPath {
				return errors.New("watch needs a file path; standard input cannot be watched")
			}
			debounce := cfg.Watch.Debounce()
			if d, _ := cmd.Flags().GetDuration("debounce"); d > 0 {
				debounce = d
			}

			ex := extract.NewExtractor(extract.WithLogger(logger))
			out := cmd.OutOrStdout()
			var mu sync.Mutex
			emit := func(p string) {
				mu.Lock()
				defer mu.Unlock()
				text, err := ex.Extract(p)
				if err != nil {
					logger.Warn("extract failed", zap.String("path", p), zap.Error(err))
					return
				}
				if _, err := io.WriteString(out, text); err != nil {
					logger.Warn("write output failed", zap.Error(err))
				}
			}

			watchOpts := []watcher.WatcherOption{watcher.WithDebounce(debounce)}
			if cfg.Debug {
				watchOpts = append(watchOpts, watcher.WithLogger(logger))
			}
			w, err := watcher.NewWatcher(path, emit, watchOpts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := w.Start(ctx); err != nil {
				return err
			}

			emit(w.Path())
			logger.Info("watching for changes", zap.String("path", w.Path()), zap.Duration("debounce", debounce))
			<-ctx.Done()
			// Stop returns once an in-flight extraction has finished writing.
			w.Stop()
			logger.Info("stopped watching", zap.String("path", w.Path()))
			return nil
		},
	}
	cmd.Flags().Duration("debounce", 0, "quiet period before re-extracting (default from config, 400ms)")
	return cmd
}
