package ren

// Frame contains a set of operations for drawing.
type Frame struct {
	DrawOperations []DrawOperation
}

// Draw draws the frame.
func (frame *Frame) Draw(r *Renderer) {
	for _, drawOperation := range frame.DrawOperations {
		drawOperation.Draw(r)
	}
}

// FrameSeries is a named sequence of frames played in a loop.
type FrameSeries struct {
	Name   string
	Frames []Frame
}
