package carousel

// Placement is the instruction for one item view
// OffsetX is relative to the container, screen position is ContainerOffset + OffsetX
type Placement struct {
	OffsetX float64
	Active  bool
}

// Indicator is the instruction for one indicator view
type Indicator struct {
	Active bool
}

// Plan is the per-frame output applied by the view layer
type Plan struct {
	Items           []Placement
	Indicators      []Indicator
	ContainerOffset float64
	ContainerWidth  float64
	ItemWidth       float64
	Counter         int
}

// ActiveCount returns the number of active items
func (p Plan) ActiveCount() int {
	n := 0
	for _, it := range p.Items {
		if it.Active {
			n++
		}
	}
	return n
}

func (p Plan) clone() Plan {
	out := p
	out.Items = append([]Placement(nil), p.Items...)
	out.Indicators = append([]Indicator(nil), p.Indicators...)
	return out
}
