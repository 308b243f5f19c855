package main

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/storage"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func newInteractiveConfig(t *testing.T, out io.Writer) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.SetOutput(out)
	cfg.LogFile = io.Discard
	cfg.Output.ShowBoard = false
	cfg.Storage.Dir = t.TempDir()
	return cfg
}

func TestRunInteractive(t *testing.T) {
	var out, errw bytes.Buffer
	cfg := newInteractiveConfig(t, &out)

	code := runInteractive(cfg, strings.NewReader("e2e4\nsave g1\nquit\n"), &errw)
	testutil.AssertEqual(t, code, 0)
	testutil.AssertEqual(t, errw.String(), "")
}

func TestRunInteractiveReadErrorClosesStore(t *testing.T) {
	var out, errw bytes.Buffer
	cfg := newInteractiveConfig(t, &out)

	in := io.MultiReader(
		strings.NewReader("e2e4\nsave g1\n"),
		iotest.ErrReader(stderrors.New("stdin gone")),
	)
	code := runInteractive(cfg, in, &errw)
	testutil.AssertEqual(t, code, 1)
	testutil.AssertContains(t, errw.String(), "Error reading commands: stdin gone")

	// The archive lock is only released by Close.
	store, err := storage.Open(*cfg.Storage, nil)
	testutil.AssertNoError(t, err)
	defer store.Close()

	ids, err := store.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ids, []string{"g1"})
}

func TestRunInteractiveBadStart(t *testing.T) {
	var out, errw bytes.Buffer
	cfg := newInteractiveConfig(t, &out)
	cfg.StartFEN = "not a fen"

	code := runInteractive(cfg, strings.NewReader(""), &errw)
	testutil.AssertEqual(t, code, 2)
	testutil.AssertContains(t, errw.String(), "Error: ")

	store, err := storage.Open(*cfg.Storage, nil)
	testutil.AssertNoError(t, err)
	store.Close()
}
