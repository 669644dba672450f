package data

// Frame is an in-memory column store implementing [Source]. It is the
// reference adapter used by tests, examples, and the CLI; production callers
// with columnar engines plug in their own [Source].
type Frame struct {
	cols  map[string]Column
	order []string
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{cols: make(map[string]Column)}
}

// AddNums adds (or replaces) a numeric column and returns the frame for
// chaining. Use NaN entries for nulls.
func (f *Frame) AddNums(name string, values ...float64) *Frame {
	f.add(name, NumColumn(values))
	return f
}

// AddNumColumn adds a prebuilt numeric column view without copying.
func (f *Frame) AddNumColumn(name string, col NumColumn) *Frame {
	f.add(name, col)
	return f
}

// AddCats adds (or replaces) a categorical column and returns the frame for
// chaining.
func (f *Frame) AddCats(name string, labels ...string) *Frame {
	f.add(name, CatColumn(labels))
	return f
}

func (f *Frame) add(name string, col Column) {
	if _, exists := f.cols[name]; !exists {
		f.order = append(f.order, name)
	}
	f.cols[name] = col
}

// Column implements [Source].
func (f *Frame) Column(name string) (Column, bool) {
	c, ok := f.cols[name]
	return c, ok
}

// Names returns the column names in insertion order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}
