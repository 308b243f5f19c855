package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

// errQuit ends a session.
var errQuit = stderrors.New("quit")

// Session plays one game from commands read line by line. The game
// archive is optional; without it the storage commands fail.
type Session struct {
	cfg   *config.Config
	game  *engine.Engine
	store *storage.GameStore
	out   io.Writer

	commandCount int
}

// command is one interactive command.
type command struct {
	name  string
	usage string
	help  string
	run   func(s *Session, args []string) error
}

// commands is filled in by init; help refers back to it.
var commands []command

func init() {
	commands = []command{
		{"fen", "fen", "Print the position as FEN", (*Session).cmdFEN},
		{"board", "board", "Print the board", (*Session).cmdBoard},
		{"status", "status", "Print the state of the game", (*Session).cmdStatus},
		{"setup", "setup [fen]", "Start again from fen (default: initial position)", (*Session).cmdSetup},
		{"move", "move <uci>", "Play a move, e.g. e2e4 or e7e8n", (*Session).cmdMove},
		{"promote", "promote <q|r|b|n>", "Complete a pending promotion", (*Session).cmdPromote},
		{"undo", "undo", "Take back the last move", (*Session).cmdUndo},
		{"moves", "moves [square]", "List legal moves, or those of one piece", (*Session).cmdMoves},
		{"history", "history", "List the moves played", (*Session).cmdHistory},
		{"perft", "perft <n>", "Count leaf nodes to depth n", (*Session).cmdPerft},
		{"divide", "divide <n>", "Perft count below each legal move", (*Session).cmdDivide},
		{"save", "save <id>", "Store the game under id", (*Session).cmdSave},
		{"load", "load <id>", "Replay the game stored under id", (*Session).cmdLoad},
		{"delete", "delete <id>", "Remove the game stored under id", (*Session).cmdDelete},
		{"list", "list", "List stored games", (*Session).cmdList},
		{"find", "find", "List stored games ending in this position", (*Session).cmdFind},
		{"help", "help", "List commands", (*Session).cmdHelp},
		{"quit", "quit", "End the session", (*Session).cmdQuit},
	}
}

// lookupCommand finds a command by name.
func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// NewSession creates a session starting from cfg.StartFEN. store may be nil.
func NewSession(cfg *config.Config, store *storage.GameStore) (*Session, error) {
	game, err := engine.NewFromFEN(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:   cfg,
		game:  game,
		store: store,
		out:   cfg.OutputFile,
	}, nil
}

// Run executes commands from r until quit or end of input. Command
// failures are reported on the output and do not end the session.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := s.Execute(scanner.Text()); stderrors.Is(err, errQuit) {
			break
		} else if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	s.cfg.Logf(config.Summary, "%d command(s), %d move(s), result %s",
		s.commandCount, len(s.game.Moves()), s.game.Result())
	return scanner.Err()
}

// Execute runs a single command line. Blank lines and # comments are
// ignored. A bare move such as "e2e4" is taken as "move e2e4".
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	s.commandCount++

	name, args := strings.ToLower(fields[0]), fields[1:]
	c, ok := lookupCommand(name)
	if !ok {
		if _, err := engine.ParseUCIMove(fields[0]); err == nil && len(args) == 0 {
			return s.cmdMove(fields)
		}
		return fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	s.cfg.Logf(config.Commentary, "> %s", strings.Join(fields, " "))
	return c.run(s, args)
}

func (s *Session) cmdFEN(args []string) error {
	fmt.Fprintln(s.out, s.game.FEN())
	return nil
}

func (s *Session) cmdBoard(args []string) error {
	output.WriteBoard(s.out, s.game.Board())
	return nil
}

func (s *Session) cmdStatus(args []string) error {
	return output.OutputState(s.game, s.cfg)
}

func (s *Session) cmdSetup(args []string) error {
	if err := s.game.SetupBoard(strings.Join(args, " ")); err != nil {
		return err
	}
	s.cfg.Logf(config.Commentary, "new game from %s", s.game.StartFEN())
	return s.cmdStatus(nil)
}

func (s *Session) cmdMove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: move <uci>")
	}
	pair, err := engine.ParseUCIMove(args[0])
	if err != nil {
		return err
	}

	if pair.Promotion != chess.Empty {
		if err := s.game.ApplyUCI(args[0]); err != nil {
			return err
		}
		return s.afterMove()
	}

	outcome, err := s.game.Move(pair.From, pair.To)
	if err != nil {
		return err
	}
	if outcome == chess.PromotionPending {
		fmt.Fprintf(s.out, "%s: promote to q, r, b or n\n", args[0])
		return nil
	}
	return s.afterMove()
}

// afterMove reports the position after a committed move.
func (s *Session) afterMove() error {
	moves := s.game.Moves()
	s.cfg.Logf(config.Commentary, "played %s", moves[len(moves)-1])
	if s.game.IsGameOver() || s.cfg.Output.JSONFormat {
		return s.cmdStatus(nil)
	}
	if s.game.IsCheck(s.game.Turn()) {
		fmt.Fprintf(s.out, "%s is in check\n", s.game.Turn())
	}
	return nil
}

func (s *Session) cmdPromote(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: promote <q|r|b|n>")
	}
	if !s.game.CommitPromotion(args[0]) {
		return errors.ErrNoPromotion
	}
	return s.afterMove()
}

func (s *Session) cmdUndo(args []string) error {
	if !s.game.Revert() {
		return fmt.Errorf("nothing to undo")
	}
	fmt.Fprintln(s.out, s.game.FEN())
	return nil
}

func (s *Session) cmdMoves(args []string) error {
	if len(args) > 0 {
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			return fmt.Errorf("%v: %w", err, errors.ErrInvalidSquare)
		}
		var names []string
		for _, to := range s.game.LegalMovesForPiece(sq) {
			names = append(names, to.String())
		}
		if s.cfg.Output.JSONFormat {
			if names == nil {
				names = []string{}
			}
			return output.WriteJSON(s.out, names)
		}
		fmt.Fprintln(s.out, strings.Join(names, " "))
		return nil
	}

	if s.cfg.Output.JSONFormat {
		return output.WriteJSON(s.out, output.SnapshotsToJSON(s.game))
	}
	output.OutputLegalMoves(s.out, s.game.AllPossibleMoves(s.game.Turn()))
	return nil
}

func (s *Session) cmdHistory(args []string) error {
	if s.cfg.Output.JSONFormat {
		return output.WriteJSON(s.out, s.game.Moves())
	}
	output.OutputHistory(s.out, s.game.StartFEN(), s.game.History())
	return nil
}

// perftDepthArg parses a depth within the configured bounds.
func perftDepthArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: perft <n>")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 || depth > config.MaxPerftDepth {
		return 0, fmt.Errorf("depth must be 0-%d, got %q", config.MaxPerftDepth, args[0])
	}
	return depth, nil
}

func (s *Session) cmdPerft(args []string) error {
	depth, err := perftDepthArg(args)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "perft(%d) = %d\n", depth, s.game.Perft(depth))
	return nil
}

func (s *Session) cmdDivide(args []string) error {
	depth, err := perftDepthArg(args)
	if err != nil {
		return err
	}
	counts := engine.Divide(s.game.Board(), depth)
	var total uint64
	for _, m := range s.game.AllPossibleMoves(s.game.Turn()) {
		count := counts[m.String()]
		fmt.Fprintf(s.out, "%s: %d\n", m, count)
		total += count
	}
	fmt.Fprintf(s.out, "total: %d\n", total)
	return nil
}

// archive returns the store or ErrNoArchive.
func (s *Session) archive() (*storage.GameStore, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w (use -store or -memstore)", errors.ErrNoArchive)
	}
	return s.store, nil
}

// idArg returns the single id argument of a storage command.
func idArg(name string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s <id>", name)
	}
	return args[0], nil
}

func (s *Session) cmdSave(args []string) error {
	store, err := s.archive()
	if err != nil {
		return err
	}
	id, err := idArg("save", args)
	if err != nil {
		return err
	}
	if _, pending := s.game.PromotionPending(); pending {
		return errors.ErrPromotionPending
	}
	if err := store.Save(storage.NewGameRecord(id, s.game)); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s\n", id)
	return nil
}

func (s *Session) cmdLoad(args []string) error {
	store, err := s.archive()
	if err != nil {
		return err
	}
	id, err := idArg("load", args)
	if err != nil {
		return err
	}
	game, err := store.Restore(id)
	if err != nil {
		return err
	}
	s.game = game
	return s.cmdStatus(nil)
}

func (s *Session) cmdDelete(args []string) error {
	store, err := s.archive()
	if err != nil {
		return err
	}
	id, err := idArg("delete", args)
	if err != nil {
		return err
	}
	return store.Delete(id)
}

func (s *Session) cmdList(args []string) error {
	store, err := s.archive()
	if err != nil {
		return err
	}
	ids, err := store.List()
	if err != nil {
		return err
	}
	return s.printIDs(ids)
}

func (s *Session) cmdFind(args []string) error {
	store, err := s.archive()
	if err != nil {
		return err
	}
	ids, err := store.FindByPosition(hashing.Zobrist(s.game.Board()))
	if err != nil {
		return err
	}
	return s.printIDs(ids)
}

// printIDs writes game ids one per line, or as a JSON array.
func (s *Session) printIDs(ids []string) error {
	if s.cfg.Output.JSONFormat {
		if ids == nil {
			ids = []string{}
		}
		return output.WriteJSON(s.out, ids)
	}
	for _, id := range ids {
		fmt.Fprintln(s.out, id)
	}
	return nil
}

func (s *Session) cmdHelp(args []string) error {
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-18s %s\n", c.usage, c.help)
	}
	return nil
}

func (s *Session) cmdQuit(args []string) error {
	return errQuit
}
