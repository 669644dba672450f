package scale

import "math"

// Domain is a closed data-space interval [Min, Max].
type Domain struct {
	Min, Max float64
}

// Fit returns the smallest domain containing every finite value. ok is false
// when no finite value exists.
func Fit(values []float64) (d Domain, ok bool) {
	d = Domain{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		d.Add(v)
		ok = true
	}
	if !ok {
		return Domain{}, false
	}
	return d, true
}

// Add grows the domain to include v. NaN and Inf are ignored.
func (d *Domain) Add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if v < d.Min {
		d.Min = v
	}
	if v > d.Max {
		d.Max = v
	}
}

// Union returns the smallest domain containing both d and o.
func (d Domain) Union(o Domain) Domain {
	return Domain{Min: math.Min(d.Min, o.Min), Max: math.Max(d.Max, o.Max)}
}

// Span returns Max - Min.
func (d Domain) Span() float64 { return d.Max - d.Min }

// LogSpan returns the span in log units of the given base.
func (d Domain) LogSpan(base float64) float64 {
	return math.Log(d.Max)/math.Log(base) - math.Log(d.Min)/math.Log(base)
}

// EnsureSpan widens a degenerate (zero-span) domain so scales never divide
// by zero: an all-zero domain becomes [-1, 1], any other single value v
// becomes the ordered interval between 0 and 2v.
func (d Domain) EnsureSpan() Domain {
	if d.Span() != 0 {
		return d
	}
	v := d.Min
	if v == 0 {
		return Domain{Min: -1, Max: 1}
	}
	if v > 0 {
		return Domain{Min: 0, Max: 2 * v}
	}
	return Domain{Min: 2 * v, Max: 0}
}

// ToNormalized maps v to [0, 1] over the domain.
func (d Domain) ToNormalized(v float64) float64 {
	return (v - d.Min) / d.Span()
}

// ToData maps a normalized position n in [0, 1] back to data space.
func (d Domain) ToData(n float64) float64 {
	return d.Min + n*d.Span()
}

// Contains reports whether v lies inside the closed interval.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}
