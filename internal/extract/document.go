package extract

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrPageRange is wrapped by PageError when a page number is outside 1..NumPage.
var ErrPageRange = errors.New("page out of range")

// Document is an opened PDF. It owns the underlying file until Close is called.
type Document struct {
	path     string
	file     *os.File
	reader   *pdf.Reader
	numPages int
}

// Open opens the PDF at path. The caller must Close the returned Document.
// All failures are reported as *OpenError.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if fi.IsDir() {
		_ = f.Close()
		return nil, &OpenError{Path: path, Err: errors.New("is a directory")}
	}
	doc, err := newDocument(path, f, fi.Size())
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	doc.file = f
	return doc, nil
}

// NewDocument reads a PDF of the given size from r. Close is a no-op for
// documents created this way; r stays owned by the caller.
func NewDocument(r io.ReaderAt, size int64) (*Document, error) {
	return newDocument(memoryPath, r, size)
}

func newDocument(path string, r io.ReaderAt, size int64) (doc *Document, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, &OpenError{Path: path, Err: fmt.Errorf("%v", p)}
		}
	}()
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &Document{
		path:     path,
		reader:   reader,
		numPages: reader.NumPage(),
	}, nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// NumPage returns the number of pages in the document.
func (d *Document) NumPage() int {
	return d.numPages
}

// PageText returns the plain text of page n (1-based) with surrounding
// whitespace removed. A page without a page object or without extractable
// text yields "". Decoding failures are reported as *PageError.
func (d *Document) PageText(n int) (text string, err error) {
	if n < 1 || n > d.numPages {
		return "", &PageError{Page: n, Err: ErrPageRange}
	}
	defer func() {
		if p := recover(); p != nil {
			text, err = "", &PageError{Page: n, Err: fmt.Errorf("%v", p)}
		}
	}()
	page := d.reader.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", &PageError{Page: n, Err: err}
	}
	// The library opens every text object with a newline, so a page holding
	// "Hello" decodes as "\n\n\nHello" and a blank page as "\n\n".
	return strings.TrimSpace(text), nil
}

// Texts returns the text of each page in document order. Iteration stops
// after the first error.
func (d *Document) Texts() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for i := 1; i <= d.numPages; i++ {
			text, err := d.PageText(i)
			if !yield(text, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the underlying file, if any.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
