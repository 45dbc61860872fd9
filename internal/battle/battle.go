// Package battle ties the pieces together for one run: it reads the turn
// script, builds the game from the setup, plays it, and reports the result.
package battle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"knights-battle/internal/config"
	"knights-battle/internal/game"
	"knights-battle/internal/render"
	"knights-battle/internal/script"
	"log/slog"
	"os"
)

// Options names the files a run reads and writes. An empty SetupPath plays
// the default board; an empty OutputPath skips writing the snapshot.
type Options struct {
	MovesPath  string
	OutputPath string
	SetupPath  string
}

// Run plays the script at opts.MovesPath to completion. Every input error is
// returned before the first turn is played.
func Run(opts Options, out io.Writer, logger *slog.Logger) (*game.Game, error) {
	if err := config.CheckMovesPath(opts.MovesPath); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(opts.MovesPath)
	if err != nil {
		return nil, fmt.Errorf("read moves: %w", err)
	}
	turns, err := script.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.MovesPath, err)
	}

	setup := config.DefaultSetup()
	if opts.SetupPath != "" {
		if setup, err = config.LoadSetup(opts.SetupPath); err != nil {
			return nil, err
		}
	}

	g, err := game.New(setup, turns)
	if err != nil {
		return nil, err
	}
	logger.Debug("game ready", "turns", len(turns), "knights", len(setup.Knights), "items", len(setup.Items))
	g.Play()
	logEvents(logger, g.Events())

	snap := g.Snapshot()
	if err := Report(out, g, snap); err != nil {
		return g, err
	}
	if opts.OutputPath != "" {
		if err := game.WriteSnapshot(opts.OutputPath, snap); err != nil {
			return g, fmt.Errorf("write snapshot: %w", err)
		}
		logger.Info("snapshot written", "path", opts.OutputPath)
	}
	return g, nil
}

// Report prints the final board, one status line per knight, and the
// snapshot JSON.
func Report(out io.Writer, g *game.Game, snap game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if _, err := io.WriteString(out, render.Text(g.Board())); err != nil {
		return err
	}
	for _, k := range g.Knights() {
		if _, err := fmt.Fprintf(out, "%s %s\n", k.Glyph, render.StatusLine(k)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

func logEvents(logger *slog.Logger, events []game.Event) {
	for _, e := range events {
		level := slog.LevelDebug
		if e.Kind == game.EventFought || e.Kind == game.EventDrowned {
			level = slog.LevelInfo
		}
		logger.Log(context.Background(), level, e.String(), "turn", e.Turn, "kind", e.Kind.String())
	}
}
