package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// ResultWriter is the interface for writing analysis results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single analysed position to the output.
	WriteResult(r worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter returns the writer matching the output settings.
func NewResultWriter(w io.Writer, cfg *config.OutputConfig) ResultWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.ShowMoves)
}

// TextWriter writes one line of text per result.
type TextWriter struct {
	w         io.Writer
	showMoves bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, showMoves bool) *TextWriter {
	return &TextWriter{
		w:         w,
		showMoves: showMoves,
	}
}

// WriteResult writes a result as text.
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	OutputResult(tw.w, r, tw.showMoves)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []worker.ProcessResult
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]worker.ProcessResult, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	if jw.single {
		return WriteJSON(jw.w, ResultToJSON(r))
	}

	// Buffer for batch output
	jw.results = append(jw.results, r)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	err := OutputResultsJSON(jw.results, jw.w)

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
