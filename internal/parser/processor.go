package parser

import (
	"fmt"
	"os"

	"fortio.org/log"

	"github.com/funvibe/rinha/internal/config"
	"github.com/funvibe/rinha/internal/pipeline"
)

// ReadError reports a program file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("reading %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// ParserProcessor reads the program file and decodes its AST.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 {
		return ctx
	}

	if ctx.Source == nil {
		if !config.HasSourceExt(ctx.FilePath) {
			log.Warnf("%s: unrecognized extension, decoding as JSON/YAML anyway", ctx.FilePath)
		}
		data, err := os.ReadFile(ctx.FilePath)
		if err != nil {
			ctx.Errors = append(ctx.Errors, &ReadError{Path: ctx.FilePath, Err: err})
			return ctx
		}
		ctx.Source = data
	}

	file, err := Decode(ctx.Source, ctx.FilePath)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.AstRoot = file
	return ctx
}
