package domain

// Record is one flattened place: a mapping from column name to a scalar
// value (string, number, bool or nil) or a pre-serialised JSON string for
// structures that have no scalar representation. Column insertion order
// is preserved so repeated flattening of the same input produces
// identical output.
type Record struct {
	cols []string
	vals map[string]any
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{vals: make(map[string]any)}
}

// Set writes col to v, overwriting any previous value. The column keeps
// its original position when already present.
func (r *Record) Set(col string, v any) {
	if _, ok := r.vals[col]; !ok {
		r.cols = append(r.cols, col)
	}
	r.vals[col] = v
}

// SetOnce writes col to v only if the column has not been written yet.
// Subsequent writers of an already-filled column are ignored.
func (r *Record) SetOnce(col string, v any) {
	if _, ok := r.vals[col]; ok {
		return
	}
	r.cols = append(r.cols, col)
	r.vals[col] = v
}

// Get returns the value for col and whether the column is present.
// A present column may still hold nil.
func (r *Record) Get(col string) (any, bool) {
	v, ok := r.vals[col]
	return v, ok
}

// Has reports whether col has been written.
func (r *Record) Has(col string) bool {
	_, ok := r.vals[col]
	return ok
}

// Columns returns the column names in insertion order.
func (r *Record) Columns() []string {
	out := make([]string, len(r.cols))
	copy(out, r.cols)
	return out
}

// Len returns the number of columns.
func (r *Record) Len() int {
	return len(r.cols)
}
