package ren

// Transform describes how a source region is rotated and scaled when it is
// blitted. Rotation is in radians and happens about (OriginX, OriginY),
// which is also the point placed at the destination position.
type Transform struct {
	Angle   float32
	ScaleX  float32
	ScaleY  float32
	OriginX float32
	OriginY float32
}

// Identity returns the transform that leaves the source untouched.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Rotate returns a copy of the transform with the given angle.
func (tr Transform) Rotate(angle float32) Transform {
	tr.Angle = angle
	return tr
}

// Scale returns a copy of the transform with the given scale factors.
func (tr Transform) Scale(sx, sy float32) Transform {
	tr.ScaleX, tr.ScaleY = sx, sy
	return tr
}

// Origin returns a copy of the transform with the given origin.
func (tr Transform) Origin(ox, oy float32) Transform {
	tr.OriginX, tr.OriginY = ox, oy
	return tr
}
