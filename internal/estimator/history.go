package estimator

// History keeps the most recent valid estimates, oldest first, for
// convergence plots. Once full, each new value evicts the oldest.
type History struct {
	values []float64
	start  int
	size   int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{values: make([]float64, capacity)}
}

// Record appends e if it is valid.
func (h *History) Record(e Estimate) {
	if !e.Valid {
		return
	}
	if h.size < len(h.values) {
		h.values[(h.start+h.size)%len(h.values)] = e.Value
		h.size++
		return
	}
	h.values[h.start] = e.Value
	h.start = (h.start + 1) % len(h.values)
}

func (h *History) Len() int {
	return h.size
}

// Values returns a copy of the retained estimates, oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, h.size)
	for i := range out {
		out[i] = h.values[(h.start+i)%len(h.values)]
	}
	return out
}
