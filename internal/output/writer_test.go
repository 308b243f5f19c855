package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

func sampleResults() []worker.ProcessResult {
	return []worker.ProcessResult{
		{
			Index:      0,
			Source:     "start",
			FEN:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			Status:     worker.StatusOngoing,
			Turn:       chess.White,
			LegalMoves: []string{"a2a3", "a2a4"},
			Perft:      20,
		},
		{
			Index:  1,
			Source: "broken",
			FEN:    "not a fen",
			Status: worker.StatusInvalid,
			Err:    errors.ErrInvalidFEN,
		},
		{
			Index:       2,
			Source:      "again",
			FEN:         "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			Status:      worker.StatusDuplicate,
			Turn:        chess.White,
			DuplicateOf: "start",
		},
	}
}

// TestTextWriter_WriteResult verifies text writer outputs one line per result
func TestTextWriter_WriteResult(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, false)
	for _, r := range sampleResults() {
		if err := writer.WriteResult(r); err != nil {
			t.Fatalf("WriteResult failed: %v", err)
		}
	}

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines; want 3:\n%s", len(lines), output)
	}
	if !strings.Contains(lines[0], "start: ongoing, White to move, 2 legal moves, perft 20") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "broken: invalid") {
		t.Errorf("unexpected second line %q", lines[1])
	}
	if lines[2] != "again: duplicate of start" {
		t.Errorf("unexpected third line %q", lines[2])
	}
}

// TestTextWriter_ShowMoves verifies legal moves are listed on request
func TestTextWriter_ShowMoves(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, true)
	writer.WriteResult(sampleResults()[0])

	if !strings.Contains(buf.String(), "a2a3 a2a4") {
		t.Errorf("missing legal moves in %q", buf.String())
	}
}

// TestJSONWriter_WriteResult verifies JSON writer outputs correct format
func TestJSONWriter_WriteResult(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	for _, r := range sampleResults() {
		if err := writer.WriteResult(r); err != nil {
			t.Fatalf("WriteResult failed: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Flush")
	}

	// Flush to ensure all output is written
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("got %d results; want 3", len(out.Results))
	}
	if out.Results[0].Turn != "white" || out.Results[0].Result != "*" || out.Results[0].Perft != 20 {
		t.Errorf("unexpected first result %+v", out.Results[0])
	}
	if out.Results[1].Error == "" || out.Results[1].Turn != "" {
		t.Errorf("invalid result should carry only the error: %+v", out.Results[1])
	}
	if out.Results[2].DuplicateOf != "start" || out.Results[2].Result != "" {
		t.Errorf("unexpected duplicate result %+v", out.Results[2])
	}
}

// TestJSONWriterSingle verifies single mode writes each result immediately
func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)
	writer.WriteResult(sampleResults()[0])

	var jr JSONResult
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if jr.Source != "start" {
		t.Errorf("Source = %q; want start", jr.Source)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

// TestResultWriter_Interface verifies that writers implement the interface
func TestResultWriter_Interface(t *testing.T) {
	var buf bytes.Buffer

	var _ ResultWriter = NewTextWriter(&buf, false)
	var _ ResultWriter = NewJSONWriter(&buf)
}

// TestNewResultWriter verifies the output settings select the writer
func TestNewResultWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()

	if _, ok := NewResultWriter(&buf, cfg).(*TextWriter); !ok {
		t.Error("default output should be text")
	}
	cfg.JSONFormat = true
	if _, ok := NewResultWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("JSON output should use JSONWriter")
	}
}

// TestJSONWriter_Close verifies Close flushes pending results
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	writer.WriteResult(sampleResults()[0])
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	// Output should have content after close
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}
}

// TestJSONWriter_EmptyFlush verifies nothing is written without results
func TestJSONWriter_EmptyFlush(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	if err := writer.Flush(); err != nil {
		t.Errorf("Flush failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
