package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// JSONState represents the state of a game in JSON format.
type JSONState struct {
	FEN        string     `json:"fen"`
	StartFEN   string     `json:"startFEN,omitempty"`
	Turn       string     `json:"turn"` // "white" or "black"
	Status     string     `json:"status"`
	Result     string     `json:"result"`
	InCheck    bool       `json:"inCheck,omitempty"`
	Moves      []string   `json:"moves,omitempty"`
	LegalMoves []string   `json:"legalMoves,omitempty"`
	Promotion  *JSONMove  `json:"promotion,omitempty"`
	Board      []string   `json:"board,omitempty"`
	Snapshots  []JSONMove `json:"snapshots,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
	FEN       string `json:"fen,omitempty"`
}

// JSONResult represents one analysed position in JSON format.
type JSONResult struct {
	Index       int      `json:"index"`
	Source      string   `json:"source,omitempty"`
	FEN         string   `json:"fen"`
	Status      string   `json:"status"`
	Turn        string   `json:"turn,omitempty"`
	Result      string   `json:"result,omitempty"`
	InCheck     bool     `json:"inCheck,omitempty"`
	LegalMoves  []string `json:"legalMoves,omitempty"`
	Perft       uint64   `json:"perft,omitempty"`
	DuplicateOf string   `json:"duplicateOf,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// OutputStateJSON outputs the state of a game in JSON format.
func OutputStateJSON(e *engine.Engine, cfg *config.Config) error {
	return WriteJSON(cfg.OutputFile, StateToJSON(e, cfg.Output))
}

// StateToJSON converts the state of a game to JSON format.
func StateToJSON(e *engine.Engine, opts *config.OutputConfig) *JSONState {
	js := &JSONState{
		FEN:     e.FEN(),
		Turn:    colourName(e.Turn()),
		Status:  string(StateStatus(e)),
		Result:  e.Result().String(),
		InCheck: e.IsCheck(e.Turn()),
		Moves:   e.Moves(),
	}
	if start := e.StartFEN(); start != engine.InitialFEN {
		js.StartFEN = start
	}
	if pending, ok := e.PromotionPending(); ok {
		js.Promotion = &JSONMove{
			UCI:  pending.From.String() + pending.To.String(),
			From: pending.From.String(),
			To:   pending.To.String(),
		}
	}
	if opts == nil {
		return js
	}
	if opts.ShowMoves {
		for _, m := range e.AllPossibleMoves(e.Turn()) {
			js.LegalMoves = append(js.LegalMoves, m.String())
		}
	}
	if opts.ShowBoard {
		js.Board = boardRows(e.Board())
	}
	return js
}

// SnapshotsToJSON converts every legal move for the side to move, with
// the position it leads to.
func SnapshotsToJSON(e *engine.Engine) []JSONMove {
	possible := e.AllPossibleMovesWithSnapshots(e.Turn())
	result := make([]JSONMove, 0, len(possible))
	for _, p := range possible {
		result = append(result, moveToJSON(p.MovePair, p.FEN))
	}
	return result
}

// moveToJSON converts a move pair to JSON format.
func moveToJSON(m chess.MovePair, fen string) JSONMove {
	jm := JSONMove{
		UCI:  m.String(),
		From: m.From.String(),
		To:   m.To.String(),
		FEN:  fen,
	}
	if m.Promotion != chess.Empty && m.Promotion != chess.Off {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	return jm
}

// ResultToJSON converts an analysed position to JSON format.
func ResultToJSON(r worker.ProcessResult) *JSONResult {
	jr := &JSONResult{
		Index:       r.Index,
		Source:      r.Source,
		FEN:         r.FEN,
		Status:      string(r.Status),
		LegalMoves:  r.LegalMoves,
		Perft:       r.Perft,
		DuplicateOf: r.DuplicateOf,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
		return jr
	}
	jr.Turn = colourName(r.Turn)
	if r.Status != worker.StatusDuplicate {
		jr.Result = r.Result.String()
		jr.InCheck = r.InCheck
	}
	return jr
}

// OutputResultsJSON outputs analysed positions as a JSON array.
func OutputResultsJSON(results []worker.ProcessResult, w io.Writer) error {
	out := &JSONOutput{Results: make([]*JSONResult, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, ResultToJSON(r))
	}
	return WriteJSON(w, out)
}

// encodeJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
