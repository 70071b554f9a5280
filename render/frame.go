package render

// FrameContext is everything a step reads from its surroundings.
// Simulations never query the window or the clock themselves.
type FrameContext struct {
	CanvasWidth  float64
	CanvasHeight float64
	ElapsedMs    float64 // monotonic milliseconds since the host started
}
