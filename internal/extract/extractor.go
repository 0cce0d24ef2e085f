// Package extract provides plain-text extraction from PDF documents.
package extract

import (
	"bytes"
	"time"

	"go.uber.org/zap"
)

// Extractor extracts plain text from PDF files.
type Extractor struct {
	logger *zap.Logger // optional; when set, logs debug events
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithLogger sets a logger for debug output (document opened, page extracted).
func WithLogger(l *zap.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = l }
}

// NewExtractor returns a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract opens the PDF at path and returns the text of every page in order,
// each followed by a newline. A document with no pages yields "".
// Returns *OpenError if the file cannot be opened or parsed and *PageError if
// a page cannot be decoded; no partial text is returned on error.
func (e *Extractor) Extract(path string) (string, error) {
	doc, err := Open(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return e.extractDocument(doc)
}

// ExtractBytes is like Extract but reads the PDF from content.
func (e *Extractor) ExtractBytes(content []byte) (string, error) {
	doc, err := NewDocument(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return e.extractDocument(doc)
}

func (e *Extractor) extractDocument(doc *Document) (string, error) {
	start := time.Now()
	if e.logger != nil {
		e.logger.Debug("document opened", zap.String("path", doc.Path()), zap.Int("pages", doc.NumPage()))
	}
	text, err := e.joinPages(doc.Path(), doc.Texts())
	if err != nil {
		return "", err
	}
	if e.logger != nil {
		e.logger.Debug("document extracted",
			zap.String("path", doc.Path()),
			zap.Int("chars", len(text)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return text, nil
}
