// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ordered implements a string keyed map that remembers key insertion
// order.
package ordered

import (
	"iter"
)

// Map is a generic map whose iteration order is the order in which keys were
// first inserted. The zero value is ready to use.
type Map[V any] struct {
	keys []string
	m    map[string]V
}

// New returns a map with room for n keys.
func New[V any](n int) *Map[V] {
	return &Map[V]{
		keys: make([]string, 0, n),
		m:    make(map[string]V, n),
	}
}

// Len returns the number of keys.
func (o *Map[V]) Len() int {
	return len(o.keys)
}

// Get returns the value stored for key.
func (o *Map[V]) Get(key string) (V, bool) {
	v, ok := o.m[key]
	return v, ok
}

// Set stores v under key. A new key is placed at the end of the iteration
// order; an existing key keeps its position.
func (o *Map[V]) Set(key string, v V) {
	if o.m == nil {
		o.m = map[string]V{}
	}
	if _, ok := o.m[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.m[key] = v
}

// Keys returns the keys in insertion order. The returned slice must not be
// modified.
func (o *Map[V]) Keys() []string {
	return o.keys
}

// All iterates over key and value pairs in insertion order.
func (o *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range o.keys {
			if !yield(k, o.m[k]) {
				return
			}
		}
	}
}

// Append appends vs to the slice stored under key in a map of slices.
func Append[E any](o *Map[[]E], key string, vs ...E) {
	cur, _ := o.Get(key)
	o.Set(key, append(cur, vs...))
}
