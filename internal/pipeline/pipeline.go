package pipeline

import (
	"fmt"
	"io"

	"github.com/funvibe/rinha/internal/ast"
	"github.com/funvibe/rinha/internal/config"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// PipelineContext carries the state shared between stages.
type PipelineContext struct {
	FilePath string
	Source   []byte // read from FilePath when nil
	Config   *config.Config
	Out      io.Writer

	AstRoot *ast.File

	// Result is the display form of the program's value.
	Result string
	// Stats summarizes the evaluation session, if one ran.
	Stats fmt.Stringer

	Errors []error
}

func NewPipelineContext(path string, out io.Writer, cfg *config.Config) *PipelineContext {
	if cfg == nil {
		cfg = config.Default()
	}
	return &PipelineContext{FilePath: path, Out: out, Config: cfg}
}

// Err returns the first error recorded by any stage.
func (c *PipelineContext) Err() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c.Errors[0]
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Every stage runs; stages skip their work when
// an earlier stage recorded an error.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
