package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperjump/pdftext/internal/config"
	"github.com/hyperjump/pdftext/internal/extract"
)

// syncBuffer is a bytes.Buffer safe for one writer goroutine and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writePDF(t *testing.T, path string, pages ...string) {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		doc.AddPage()
		if text != "" {
			doc.Text(20, 20, text)
		}
	}
	require.NoError(t, doc.OutputFileAndClose(path))
}

// run executes the CLI with args in an empty working directory.
func run(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(bytes.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveDocumentPath(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		cfgPath string
		want    string
		wantErr bool
	}{
		{"argument wins", []string{"a.pdf"}, "/cfg/b.pdf", "a.pdf", false},
		{"falls back to config", nil, "/cfg/b.pdf", "/cfg/b.pdf", false},
		{"empty argument falls back", []string{""}, "/cfg/b.pdf", "/cfg/b.pdf", false},
		{"stdin marker", []string{"-"}, "", "-", false},
		{"nothing given", nil, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Document: config.DocumentConfig{Path: tt.cfgPath}}
			got, err := resolveDocumentPath(tt.args, cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, errNoDocument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writePDF(t, path, "Hello", "", "World")

	out, err := run(t, nil, "extract", path)
	require.NoError(t, err)
	assert.Equal(t, "Hello\n\nWorld\n", out)
}

func TestExtractCmd_stdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writePDF(t, path, "From stdin")
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := run(t, content, "extract", "-")
	require.NoError(t, err)
	assert.Equal(t, "From stdin\n", out)
}

func TestExtractCmd_configDocumentPath(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, filepath.Join(dir, "configured.pdf"), "Configured")
	cfgPath := filepath.Join(dir, "pdftext.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("document:\n  path: ./configured.pdf\n"), 0600))

	out, err := run(t, nil, "extract", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Configured\n", out)
}

func TestExtractCmd_missingFile(t *testing.T) {
	out, err := run(t, nil, "extract", "/no/such/file.pdf")
	require.Error(t, err)
	assert.Empty(t, out)

	var oe *extract.OpenError
	assert.ErrorAs(t, err, &oe)
}

func TestExtractCmd_noDocument(t *testing.T) {
	out, err := run(t, nil, "extract")
	assert.ErrorIs(t, err, errNoDocument)
	assert.Empty(t, out)
}

func TestExtractCmd_tooManyArgs(t *testing.T) {
	_, err := run(t, nil, "extract", "a.pdf", "b.pdf")
	assert.Error(t, err)
}

func TestExtractCmd_badConfig(t *testing.T) {
	_, err := run(t, nil, "extract", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "x.pdf")
	assert.ErrorContains(t, err, "failed to read config")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "pdftext version dev\n", out)
}

func TestWatchCmd_rejectsStdin(t *testing.T) {
	_, err := run(t, nil, "watch", "-")
	assert.ErrorContains(t, err, "standard input")
}

func TestWatchCmd_reextractsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	writePDF(t, path, "Before")

	cmd := newRootCmd()
	out := &syncBuffer{}
	cmd.SetArgs([]string{"watch", "--debounce", "50ms", path})
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "Before") },
		3*time.Second, 20*time.Millisecond)

	tmp := filepath.Join(dir, "doc.pdf.tmp")
	writePDF(t, tmp, "After")
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "After") },
		3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
