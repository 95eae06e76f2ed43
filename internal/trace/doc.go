// Package trace records spans and point events for the mofc pipeline.
//
//	mofc parse --trace=- --trace-level=detail schema/
//
// Scopes, coarse to fine, are driver, pass, file and production. A level
// admits every scope up to its own granularity; LevelError admits only
// failed events. A span opened at file scope names its document, and every
// event below it carries that name in Event.File.
//
// Spans travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	sp, ctx := trace.BeginCtx(ctx, trace.ScopeFile, path)
//	if err != nil {
//		sp.Fail(err)
//	}
//
// A RingTracer at LevelError keeps everything in memory and is worth
// dumping only once something has failed.
package trace
