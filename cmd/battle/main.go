// knights-battle plays a turn script to completion and prints the final
// state. Build:
//
//	go build -o knights-battle ./cmd/battle
//
// Usage:
//
//	./knights-battle [-moves moves.txt] [-out final_state.json] [-setup setup.yaml] [-log-level info] [-view]
//
// Flag defaults come from KNIGHTS_MOVES, KNIGHTS_OUTPUT, KNIGHTS_SETUP and
// KNIGHTS_LOG_LEVEL.
package main

import (
	"flag"
	"fmt"
	"io"
	"knights-battle/internal/battle"
	"knights-battle/internal/component"
	"knights-battle/internal/config"
	"knights-battle/internal/game"
	"knights-battle/internal/render"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
)

// cli is the resolved command line.
type cli struct {
	opts  battle.Options
	level slog.Level
	view  bool
}

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	c, err := parseFlags(os.Args[1:], env, os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.level}))
	g, err := battle.Run(c.opts, os.Stdout, logger)
	if err != nil {
		logger.Error("battle failed", "error", err)
		os.Exit(1)
	}
	if c.view {
		if err := view(g); err != nil {
			logger.Error("view", "error", err)
			os.Exit(1)
		}
	}
}

// parseFlags resolves args against env. Flags win over the environment.
func parseFlags(args []string, env config.Env, errOut io.Writer) (cli, error) {
	fs := flag.NewFlagSet("knights-battle", flag.ContinueOnError)
	fs.SetOutput(errOut)
	moves := fs.String("moves", env.MovesPath, "Path to the .txt turn script")
	out := fs.String("out", env.OutputPath, "Where to write the final state (.zst to compress, empty to skip)")
	setup := fs.String("setup", env.SetupPath, "Optional YAML board and roster setup")
	level := fs.String("log-level", env.LogLevel, "Log level: debug, info, warn or error")
	showView := fs.Bool("view", false, "Show the final board in the terminal until a key is pressed")
	if err := fs.Parse(args); err != nil {
		return cli{}, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(errOut, err)
		return cli{}, err
	}

	env.LogLevel = *level
	lvl, err := env.Level()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return cli{}, err
	}
	return cli{
		opts:  battle.Options{MovesPath: *moves, OutputPath: *out, SetupPath: *setup},
		level: lvl,
		view:  *showView,
	}, nil
}

// view draws the final board on the terminal and waits for a key press.
func view(g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	draw := func() {
		r := render.NewRenderer(screen)
		if p, ok := focus(g.Knights()); ok {
			r.CenterOn(p.X, p.Y)
		}
		r.DrawFrame(g.Board(), g.Knights())
	}
	draw()
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case nil:
			return nil
		}
	}
}

// focus picks the cell the view centres on: the first knight still standing.
func focus(knights []*component.Knight) (component.Position, bool) {
	for _, k := range knights {
		if p, ok := k.Position(); ok {
			return p, true
		}
	}
	return component.Position{}, false
}
