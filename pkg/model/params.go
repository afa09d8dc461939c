package model

import "slices"

// Params is an insertion-ordered mapping from a unique index key to
// Parameter. The order of keys matches the order of data matrix columns.
//
// Params is not safe for concurrent use. It is owned by a single dataset.
type Params struct {
	keys []string
	data map[string]*Parameter
}

// NewParams creates an empty Params.
func NewParams() *Params {
	return &Params{data: make(map[string]*Parameter)}
}

// Set adds a parameter under the key. An existing key keeps its position
// and gets a new value.
func (p *Params) Set(key string, par *Parameter) {
	if _, ok := p.data[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.data[key] = par
}

// Get returns a parameter by index key.
func (p *Params) Get(key string) (*Parameter, bool) {
	res, ok := p.data[key]
	return res, ok
}

// Has is true if the key exists.
func (p *Params) Has(key string) bool {
	_, ok := p.data[key]
	return ok
}

// Delete removes the key. It returns false if the key did not exist.
func (p *Params) Delete(key string) bool {
	if _, ok := p.data[key]; !ok {
		return false
	}
	delete(p.data, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
	return true
}

// Rename moves a parameter to a new key keeping its position. It does
// nothing and returns false if the old key is absent or the new key is
// taken.
func (p *Params) Rename(oldKey, newKey string) bool {
	par, ok := p.data[oldKey]
	if !ok || p.Has(newKey) {
		return false
	}
	delete(p.data, oldKey)
	p.data[newKey] = par
	p.keys[slices.Index(p.keys, oldKey)] = newKey
	return true
}

// Keys returns a copy of index keys in insertion order.
func (p *Params) Keys() []string {
	return slices.Clone(p.keys)
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.keys)
}

// Each calls fn for every parameter in order. Iteration stops when fn
// returns false.
func (p *Params) Each(fn func(key string, par *Parameter) bool) {
	for _, k := range p.Keys() {
		if !fn(k, p.data[k]) {
			return
		}
	}
}
