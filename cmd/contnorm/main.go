package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/contnorm/gensym"
	"github.com/wippyai/contnorm/normalize"
	"github.com/wippyai/contnorm/rewrite"
)

func main() {
	var (
		expr        = flag.String("e", "", "Expression to normalize instead of reading files")
		pretty      = flag.Bool("pretty", isTerminal(os.Stdout), "Indent the normal form")
		maxIter     = flag.Int("max-iter", rewrite.MaxIterations, "Maximum pipeline rounds per form")
		strict      = flag.Bool("strict", false, "Fail when a form does not reach a fixed point")
		prefix      = flag.String("prefix", gensym.DefaultPrefix, "Prefix for generated labels and temporaries")
		jobs        = flag.Int("j", 0, "Files normalized concurrently (0 = GOMAXPROCS)")
		verbose     = flag.Bool("v", false, "Log every pass at debug level")
		stats       = flag.Bool("stats", false, "Print iterations and convergence for each form")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: contnorm [flags] [file ...]")
		fmt.Fprintln(os.Stderr, "       contnorm -e '(bash (call k v))'")
		fmt.Fprintln(os.Stderr, "       contnorm -i  (interactive mode)")
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	rewrite.SetLogger(log)
	normalize.SetLogger(log)

	cfg := normalize.Config{
		Prefix:        *prefix,
		MaxIterations: *maxIter,
		Concurrency:   *jobs,
		Strict:        *strict,
	}

	if *interactive {
		if !isTerminal(os.Stdin) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := outputOptions{
		pretty: *pretty,
		stats:  *stats,
		color:  isTerminal(os.Stdout),
	}
	if err := run(context.Background(), os.Stdout, os.Stdin, *expr, flag.Args(), cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, stdin io.Reader, expr string, files []string, cfg normalize.Config, opts outputOptions) error {
	units, err := collectUnits(stdin, expr, files)
	if err != nil {
		return err
	}

	outputs, err := normalize.Batch(ctx, units, cfg)
	if err != nil {
		return err
	}

	for i, out := range outputs {
		if len(outputs) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, opts.style(headerStyle, ";; "+out.Name))
		}
		for _, res := range out.Results {
			writeResult(w, res, opts)
		}
	}
	return nil
}

func collectUnits(stdin io.Reader, expr string, files []string) ([]normalize.Unit, error) {
	var units []normalize.Unit
	if expr != "" {
		units = append(units, normalize.Unit{Name: "-e", Source: expr})
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		units = append(units, normalize.Unit{Name: path, Source: string(data)})
	}
	if len(units) > 0 {
		return units, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []normalize.Unit{{Name: "<stdin>", Source: string(data)}}, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
