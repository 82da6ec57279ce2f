// Package render turns a classified graph into Graphviz DOT text and
// rasterized images.
//
// ToDOT is pure text generation and always succeeds. Image generation goes
// through the Engine interface so the classification pipeline never touches
// process-spawning or cgo-free Graphviz details directly:
//
//	Available(ctx) error                      capability probe
//	Render(ctx, dot, format) ([]byte, error)  DOT text to image bytes
//
// Two engines ship with dfscope: Graphviz renders in-process via
// goccy/go-graphviz, DotCommand shells out to a dot binary on PATH
// (probed with "dot -V"). Engine failures are reported, never fatal:
// classification output that was already produced stands.
package render
