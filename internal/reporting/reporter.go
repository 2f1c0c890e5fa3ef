// internal/reporting/reporter.go
package reporting

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/xkilldash9x/typogen/internal/batch"
)

// Reporter writes batch records to an output.
type Reporter interface {
	// Write emits a single record.
	Write(rec batch.Record) error
	// Close flushes the report and closes any underlying file.
	Close() error
}

// Supported formats.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// encoder renders records onto a buffered writer.
type encoder interface {
	encode(rec batch.Record) error
	finish() error
}

// nopWriteCloser wraps an io.Writer and provides a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}

// New creates a reporter for format writing to outputPath, or to stdout when
// the path is empty or "stdout".
func New(format, outputPath string) (Reporter, error) {
	format = strings.ToLower(format)
	if !supported(format) {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	var writer io.WriteCloser
	if outputPath == "" || outputPath == "stdout" {
		writer = &nopWriteCloser{os.Stdout}
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
		}
		writer = f
	}
	return newStreamReporter(format, writer), nil
}

// NewWithWriter creates a reporter over w. Close flushes but does not close w.
func NewWithWriter(format string, w io.Writer) (Reporter, error) {
	format = strings.ToLower(format)
	if !supported(format) {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return newStreamReporter(format, &nopWriteCloser{w}), nil
}

func supported(format string) bool {
	switch format {
	case FormatText, FormatJSONL, FormatYAML:
		return true
	}
	return false
}

// streamReporter is safe for concurrent use.
type streamReporter struct {
	mu     sync.Mutex
	out    io.WriteCloser
	buf    *bufio.Writer
	enc    encoder
	closed bool
}

func newStreamReporter(format string, out io.WriteCloser) *streamReporter {
	buf := bufio.NewWriter(out)
	r := &streamReporter{out: out, buf: buf}
	switch format {
	case FormatJSONL:
		r.enc = newJSONLEncoder(buf)
	case FormatYAML:
		r.enc = newYAMLEncoder(buf)
	default:
		r.enc = &textEncoder{w: buf}
	}
	return r
}

func (r *streamReporter) Write(rec batch.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return fmt.Errorf("reporter is closed")
	}
	if err := r.enc.encode(rec); err != nil {
		return fmt.Errorf("failed to write record %d/%d: %w", rec.SampleIndex, rec.Variant, err)
	}
	return nil
}

// Close is idempotent.
func (r *streamReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	err := r.enc.finish()
	if flushErr := r.buf.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("failed to flush report: %w", flushErr)
	}
	if closeErr := r.out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close report: %w", closeErr)
	}
	return err
}
