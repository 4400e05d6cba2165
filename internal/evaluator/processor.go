package evaluator

import (
	"context"

	"github.com/funvibe/rinha/internal/pipeline"
)

// EvaluatorProcessor runs the decoded program in a new Session.
type EvaluatorProcessor struct {
	// Context cancels a running program. Optional.
	Context context.Context
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	session := NewSession(ctx.Config, ctx.Out)
	session.Evaluator.Context = ep.Context
	result, err := session.Run(ctx.AstRoot)
	ctx.Stats = session.Stats()
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Result = result.Inspect()
	return ctx
}
