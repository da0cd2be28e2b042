package engine

// Interpolator eases a rendered position toward a logical target by a fixed
// fraction each frame. For 0 < alpha < 1 the gap shrinks by (1-alpha) per step
// and never overshoots.
type Interpolator struct {
	pos   Vec2
	alpha float64
}

func NewInterpolator(start Vec2, alpha float64) *Interpolator {
	return &Interpolator{pos: start, alpha: alpha}
}

// Step moves one frame toward target and returns the new position
func (ip *Interpolator) Step(target Vec2) Vec2 {
	ip.pos = ip.pos.Add(target.Sub(ip.pos).Scale(ip.alpha))
	return ip.pos
}

func (ip *Interpolator) Position() Vec2 {
	return ip.pos
}

