package depgraph

// ProgressCallback observes scan progress. It must not block.
type ProgressCallback func(current, total int)

// ProgressMarker reports progress every stepPercent percent and on completion.
type ProgressMarker struct {
	current     int
	total       int
	step        int
	significant int
	callback    ProgressCallback
}

// NewProgressMarker creates a marker for total units of work. A stepPercent
// below 1 reports on every percent.
func NewProgressMarker(total, stepPercent int, callback ProgressCallback) *ProgressMarker {
	if stepPercent < 1 {
		stepPercent = 1
	}
	return &ProgressMarker{total: total, step: stepPercent, callback: callback}
}

// Advance moves the marker forward by delta units.
func (p *ProgressMarker) Advance(delta int) {
	p.current += delta
	if p.callback == nil || p.total <= 0 {
		return
	}
	significant := p.current * 100 / p.total / p.step
	if significant != p.significant || p.current == p.total {
		p.significant = significant
		p.callback(p.current, p.total)
	}
}
