package extract

import (
	"iter"
	"strings"

	"github.com/hyperjump/pdftext/pkg/utils"
	"go.uber.org/zap"
)

// previewLen is the number of bytes of page text included in debug logs.
const previewLen = 60

// joinPages concatenates page texts in order, writing a newline after each
// page, empty pages included.
func (e *Extractor) joinPages(path string, pages iter.Seq2[string, error]) (string, error) {
	var buf strings.Builder
	n := 0
	for text, err := range pages {
		if err != nil {
			return "", err
		}
		n++
		if e.logger != nil {
			e.logger.Debug("page extracted",
				zap.String("path", path),
				zap.Int("page", n),
				zap.Int("chars", len(text)),
				zap.String("preview", utils.Truncate(strings.TrimSpace(text), previewLen)),
			)
		}
		buf.WriteString(text)
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}
