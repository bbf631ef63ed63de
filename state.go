package ren

// State is the drawing context consulted by every drawing call.
type State struct {
	// Translate is added to every drawing position.
	Translate Point
	// Color is used by Plot, Rect, Box, Line, Circ and Ring.
	Color Pixel
	// Blend merges drawn colors into the target.
	Blend BlendMode
	// Clip confines drawing to a part of the target.
	Clip Rect
	// Font is used by Text. It is not owned by the state.
	Font *Font
	// Target receives all drawing. It is not owned by the state.
	Target *Buffer
}

// Begin acquires the state exclusively and returns a copy of it.
// Every Begin must be paired with End.
func (r *Renderer) Begin() State {
	r.lock.Lock()
	return r.state
}

// End commits st and releases the state.
func (r *Renderer) End(st State) {
	r.state = st
	r.lock.Unlock()
}

// Update runs fn on the state between Begin and End. The state is released
// even when fn panics.
func (r *Renderer) Update(fn func(st *State)) {
	st := r.Begin()
	defer func() { r.End(st) }()
	fn(&st)
}

// Reset restores the default state: full screen clip, opaque black,
// BlendReplace, screen target and no font.
func (r *Renderer) Reset() {
	r.lock.Lock()
	r.state = r.defaultState()
	r.lock.Unlock()
}

// State returns a copy of the committed state.
func (r *Renderer) State() State {
	return r.state
}

func (r *Renderer) defaultState() State {
	return State{
		Color:  Black,
		Blend:  BlendReplace,
		Clip:   Rect{W: ScreenWidth, H: ScreenHeight},
		Target: r.screen,
	}
}

// bounds returns the part of the target drawing may touch.
func (st *State) bounds() Rect {
	return st.Clip.Intersect(st.Target.Bounds())
}
