package sim

// ScenicBand streams a looping row of decorative elements (trees, ground
// tiles, parallax layers) past the viewport. Unlike the obstacle ring, the
// re-seed is keyed purely off world position: an element that falls behind
// the viewport jumps forward by whole loop lengths, which may be several
// multiples after a large frame-time excursion, so no element is ever
// visible twice and no visible gap opens.
type ScenicBand struct {
	name    string
	factor  float64
	width   float64
	margin  float64
	loop    float64
	startXs []float64
	xs      []float64
}

// newScenicBand builds a band from its config; the session validates the
// config first.
func newScenicBand(bc BandConfig) *ScenicBand {
	b := &ScenicBand{
		name:    bc.Name,
		factor:  bc.Factor,
		width:   bc.Width,
		margin:  bc.Margin,
		loop:    bc.Spacing * float64(bc.Count),
		startXs: make([]float64, bc.Count),
		xs:      make([]float64, bc.Count),
	}
	for i := range b.startXs {
		b.startXs[i] = bc.StartX + float64(i)*bc.Spacing
	}
	b.reset()
	return b
}

// reset restores the initial element positions.
func (b *ScenicBand) reset() {
	copy(b.xs, b.startXs)
}

// advance re-seeds every element that has fully left the viewport at the
// band's parallax-scaled scroll position.
func (b *ScenicBand) advance(scroll float64) {
	eff := scroll * b.factor
	for i := range b.xs {
		for b.xs[i]-eff+b.width < -b.margin {
			b.xs[i] += b.loop
		}
	}
}

// Name returns the band's renderer identifier.
func (b *ScenicBand) Name() string {
	return b.name
}

// Width returns the element width.
func (b *ScenicBand) Width() float64 {
	return b.width
}

// screenXs appends the screen-space x positions of all elements to dst.
func (b *ScenicBand) screenXs(scroll float64, dst []float64) []float64 {
	eff := scroll * b.factor
	for _, x := range b.xs {
		dst = append(dst, x-eff)
	}
	return dst
}
