// Command rinha evaluates a rinha program given as a JSON (or YAML) AST.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/funvibe/rinha/internal/config"
	"github.com/funvibe/rinha/internal/diagnostics"
	"github.com/funvibe/rinha/internal/evaluator"
	"github.com/funvibe/rinha/internal/parser"
	"github.com/funvibe/rinha/internal/pipeline"
	"github.com/funvibe/rinha/internal/prettyprinter"
)

var (
	configFlag   = flag.String("config", "", "config `file` (default: nearest rinha.yaml above the program)")
	noMemoFlag   = flag.Bool("no-memo", false, "disable memoization of side-effect-free calls")
	maxDepthFlag = flag.Int("max-depth", -1, "maximum nested call `depth`, 0 for unbounded (default from config)")
	statsFlag    = flag.Bool("stats", false, "print evaluation statistics to stderr")
	formatFlag   = flag.Bool("format", false, "print the program as rinha source instead of running it")
)

// options are the command line overrides applied on top of the config file.
type options struct {
	ConfigPath string
	NoMemo     bool
	MaxDepth   int // negative keeps the configured value
	Stats      bool
	Format     bool

	// LogLevelSet is true when -loglevel was given, so the config's
	// log_level must not override it.
	LogLevelSet bool
}

func (o options) apply(cfg *config.Config) {
	if o.NoMemo {
		cfg.Memoize = false
	}
	if o.MaxDepth >= 0 {
		cfg.MaxDepth = o.MaxDepth
	}
	if cfg.LogLevel != "" && !o.LogLevelSet {
		if lvl, ok := config.ParseLogLevel(cfg.LogLevel); ok {
			log.SetLogLevelQuiet(lvl)
		}
	}
}

func main() {
	cli.ArgsHelp = "program.json"
	cli.MinArgs = 1
	cli.MaxArgs = 1
	log.SetLogLevelQuiet(log.Warning)
	cli.Main()

	opts := options{
		ConfigPath: *configFlag,
		NoMemo:     *noMemoFlag,
		MaxDepth:   *maxDepthFlag,
		Stats:      *statsFlag,
		Format:     *formatFlag,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "loglevel" {
			opts.LogLevelSet = true
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, flag.Arg(0), os.Stdout, os.Stderr, opts)
	stop()
	os.Exit(code)
}

// run evaluates the program at path and returns the exit status.
func run(ctx context.Context, path string, stdout, stderr io.Writer, opts options) int {
	cfg, err := config.Resolve(opts.ConfigPath, path)
	if err != nil {
		diagnostics.NewPrinter(stderr, config.ColorAuto).Report(err)
		return diagnostics.ExitInputError
	}
	opts.apply(cfg)
	printer := diagnostics.NewPrinter(stderr, cfg.Color)

	last := pipeline.Processor(&evaluator.EvaluatorProcessor{Context: ctx})
	if opts.Format {
		last = pipeline.ProcessorFunc(formatProgram)
	}
	result := pipeline.New(&parser.ParserProcessor{}, last).
		Run(pipeline.NewPipelineContext(path, stdout, cfg))

	if opts.Stats && result.Stats != nil {
		fmt.Fprintln(stderr, result.Stats)
	}
	if err := result.Err(); err != nil {
		printer.Report(err)
		return diagnostics.ExitCode(err)
	}
	return diagnostics.ExitOK
}

func formatProgram(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}
	if _, err := fmt.Fprintln(ctx.Out, prettyprinter.Print(ctx.AstRoot.Expression)); err != nil {
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
