package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"knights-battle/internal/battle"
	"knights-battle/internal/config"
	"log/slog"
	"os"
	"strings"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	lvl, err := env.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	fmt.Println("Welcome to Knights Battle!")
	path, err := promptPath(os.Stdin, os.Stdout, env.MovesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := battle.Options{MovesPath: path, OutputPath: env.OutputPath, SetupPath: env.SetupPath}
	if _, err := battle.Run(opts, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// promptPath asks for the turn script path. A blank answer, or end of input,
// picks def.
func promptPath(in io.Reader, out io.Writer, def string) (string, error) {
	fmt.Fprintf(out, "Path to the moves file [%s]: ", def)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read path: %w", err)
	}
	if path := strings.TrimSpace(line); path != "" {
		return path, nil
	}
	return def, nil
}
