// Command sgfrender draws the board of an SGF Go record.
//
//	sgfrender [flags] game.sgf [board.png]
//
// The input "-" is read from standard input and the output "-" goes to
// standard output. Without an output the image is written next to the input,
// with the extension of the output format.
//
// Exit codes: 0 success, 2 malformed SGF, 3 bad configuration or board size,
// 4 illegal move, 5 I/O failure, 1 anything else.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gorgonia/goban"
	"github.com/gorgonia/goban/internal/config"
	"github.com/gorgonia/goban/internal/logging"
	"github.com/gorgonia/goban/internal/metrics"
	"github.com/gorgonia/goban/internal/server"
	"github.com/gorgonia/goban/sgf"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"
)

const (
	exitOK = iota
	exitOther
	exitParse
	exitConfig
	exitSemantic
	exitIO
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := config.NewFlagSet("sgfrender")
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "sgfrender: %v\n", err)
		return exitConfig
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		fmt.Fprintf(stderr, "sgfrender: %v\n", err)
		return exitConfig
	}
	defer logger.Sync()

	if cfg.Serve != "" {
		return serve(cfg, logger, stderr)
	}

	if len(cfg.Args) < 1 || len(cfg.Args) > 2 {
		fmt.Fprintln(stderr, "usage: sgfrender [flags] game.sgf [board.png]")
		fs.PrintDefaults()
		return exitConfig
	}
	input := cfg.Args[0]
	text, err := readInput(input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "sgfrender: %v\n", err)
		return exitIO
	}

	if cfg.Info || cfg.Dot != "" {
		if code := describe(cfg, text, stdout, stderr); code != exitOK || cfg.Info {
			return code
		}
	}

	output := outputPath(cfg, input)
	if len(cfg.Args) == 2 {
		output = cfg.Args[1]
	}
	opts := cfg.Options()
	opts.Logger = logger

	var res *goban.Result
	switch {
	case output == "-" && cfg.OutputFormat(output) == config.FormatGIF:
		res, err = goban.Animate(text, stdout, opts)
	case output == "-":
		res, err = goban.Render(text, stdout, opts)
	case cfg.Format != "" && nameFormat(output) != cfg.Format:
		// RenderFile picks the format from the name
		fmt.Fprintf(stderr, "sgfrender: %s output cannot be named %s\n", cfg.Format, output)
		return exitConfig
	default:
		res, err = goban.RenderFile(text, output, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "sgfrender: %v\n", err)
		return exitCode(err)
	}
	logger.Info("rendered",
		zap.String("output", output),
		zap.Int("applied", res.Applied),
		zap.Int("total", res.Total),
	)
	if opts.MoveNumber != nil && res.Applied < *opts.MoveNumber {
		fmt.Fprintf(stderr, "sgfrender: the record has only %d moves\n", res.Applied)
	}
	return exitOK
}

func readInput(input string, stdin io.Reader) (string, error) {
	var b []byte
	var err error
	if input == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(input)
	}
	if err != nil {
		return "", errors.Wrap(err, "reading the record")
	}
	return string(b), nil
}

func nameFormat(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".gif") {
		return config.FormatGIF
	}
	return config.FormatPNG
}

func outputPath(cfg *config.Config, input string) string {
	ext := "." + cfg.OutputFormat("")
	if input == "-" {
		return "-"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// describe prints the --info summary and writes the --dot file.
func describe(cfg *config.Config, text string, stdout, stderr io.Writer) int {
	tree, err := sgf.Parse(text)
	if err != nil {
		fmt.Fprintf(stderr, "sgfrender: %v\n", err)
		return exitParse
	}
	if cfg.Info {
		s, err := tree.Summary()
		if err != nil {
			fmt.Fprintf(stderr, "sgfrender: %v\n", err)
			return exitConfig
		}
		b, err := yaml.Marshal(s)
		if err != nil {
			fmt.Fprintf(stderr, "sgfrender: %v\n", err)
			return exitOther
		}
		stdout.Write(b)
	}
	if cfg.Dot != "" {
		dot, err := tree.ToDot()
		if err != nil {
			fmt.Fprintf(stderr, "sgfrender: %v\n", err)
			return exitOther
		}
		if err = os.WriteFile(cfg.Dot, []byte(dot), 0644); err != nil {
			fmt.Fprintf(stderr, "sgfrender: %v\n", err)
			return exitIO
		}
	}
	return exitOK
}

func exitCode(err error) int {
	switch goban.KindOf(err) {
	case goban.KindParse:
		return exitParse
	case goban.KindConfig:
		return exitConfig
	case goban.KindSemantic:
		return exitSemantic
	case goban.KindIO:
		return exitIO
	}
	return exitOther
}

func serve(cfg *config.Config, logger *zap.Logger, stderr io.Writer) int {
	s := server.New(cfg.Serve, cfg.Canvas, logger, metrics.New())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdown); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	if err := s.ListenAndServe(); err != nil {
		fmt.Fprintf(stderr, "sgfrender: %v\n", err)
		return exitIO
	}
	return exitOK
}
