package pipeline

// Pipeline is a fixed sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run feeds the context through every stage. Stages run even after errors
// so diagnostics from all of them are collected; stages that need clean
// input check ctx.Errors themselves.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
