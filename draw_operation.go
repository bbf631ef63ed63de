package ren

// DrawOperation is a recorded drawing call that can be replayed on a
// renderer.
type DrawOperation interface {
	Draw(r *Renderer)
}

type stateOperation struct {
	update func(st *State)
}

func (o *stateOperation) Draw(r *Renderer) {
	r.Update(o.update)
}

// NewStateOperation creates an operation that changes the drawing state.
func NewStateOperation(update func(st *State)) DrawOperation {
	return &stateOperation{update}
}

type resetOperation struct{}

func (resetOperation) Draw(r *Renderer) {
	r.Reset()
}

// NewResetOperation creates an operation that restores the default state.
func NewResetOperation() DrawOperation {
	return resetOperation{}
}
