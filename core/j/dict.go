package j

// Dict maps unique string keys to values in insertion order.
type Dict struct {
	keys   []string
	values []J
	index  map[string]int
}

// NewDict returns an empty dict.
func NewDict() *Dict {
	return &Dict{index: make(map[string]int)}
}

// Set stores v under k. Overwriting keeps k's original position.
func (d *Dict) Set(k string, v J) {
	if i, ok := d.index[k]; ok {
		d.values[i] = v
		return
	}
	d.index[k] = len(d.keys)
	d.keys = append(d.keys, k)
	d.values = append(d.values, v)
}

// Get returns the value stored under k.
func (d *Dict) Get(k string) (J, bool) {
	i, ok := d.index[k]
	if !ok {
		return nil, false
	}
	return d.values[i], true
}

// Has reports whether k is present.
func (d *Dict) Has(k string) bool {
	_, ok := d.index[k]
	return ok
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Range calls fn for each entry in insertion order until fn returns false.
func (d *Dict) Range(fn func(k string, v J) bool) {
	for i, k := range d.keys {
		if !fn(k, d.values[i]) {
			return
		}
	}
}

// Equal reports whether d and o hold equal values under the same keys in the
// same order.
func (d *Dict) Equal(o *Dict) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.keys) != len(o.keys) {
		return false
	}
	for i, k := range d.keys {
		if o.keys[i] != k || !Equal(d.values[i], o.values[i]) {
			return false
		}
	}
	return true
}
