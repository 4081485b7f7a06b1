// File: vec.go
// Title: Owned Growable Buffer
// Description: Vec is a growable array that owns its storage. Access is bounds
//              checked and reports errors instead of panicking; negative indices
//              count from the end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package slicex

import (
	"slices"

	"github.com/msto63/bstr/foundation/core/errors"
)

// Vec is an owned growable array. The zero value is an empty Vec ready to use.
type Vec[T any] struct {
	items []T
}

// NewVec returns an empty Vec with room for capacity elements
func NewVec[T any](capacity int) Vec[T] {
	if capacity < 0 {
		capacity = 0
	}
	return Vec[T]{items: make([]T, 0, capacity)}
}

// VecOf returns a Vec holding a copy of items
func VecOf[T any](items ...T) Vec[T] {
	return Vec[T]{items: slices.Clone(items)}
}

// Adopt returns a Vec that takes ownership of items without copying.
// The caller must not use items afterwards.
func Adopt[T any](items []T) Vec[T] {
	return Vec[T]{items: items}
}

// Len returns the number of elements
func (v *Vec[T]) Len() int {
	return len(v.items)
}

// Cap returns the number of elements the Vec holds without reallocating
func (v *Vec[T]) Cap() int {
	return cap(v.items)
}

// Reserve makes room for at least n more elements
func (v *Vec[T]) Reserve(n int) {
	if n > 0 {
		v.items = slices.Grow(v.items, n)
	}
}

// Push appends one element
func (v *Vec[T]) Push(item T) {
	v.items = append(v.items, item)
}

// Extend appends all items
func (v *Vec[T]) Extend(items ...T) {
	v.items = append(v.items, items...)
}

// Resize sets the length to n, filling new slots with fill
func (v *Vec[T]) Resize(n int, fill T) {
	if n < 0 {
		n = 0
	}
	if n <= len(v.items) {
		clear(v.items[n:])
		v.items = v.items[:n]
		return
	}
	v.Reserve(n - len(v.items))
	for len(v.items) < n {
		v.items = append(v.items, fill)
	}
}

// Pop removes and returns the last element
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if len(v.items) == 0 {
		return zero, false
	}
	last := v.items[len(v.items)-1]
	v.items[len(v.items)-1] = zero
	v.items = v.items[:len(v.items)-1]
	return last, true
}

// At returns the element at index i; negative indices count from the end
func (v *Vec[T]) At(i int) (T, error) {
	idx, err := v.index("at", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.items[idx], nil
}

// Set replaces the element at index i; negative indices count from the end
func (v *Vec[T]) Set(i int, item T) error {
	idx, err := v.index("set", i)
	if err != nil {
		return err
	}
	v.items[idx] = item
	return nil
}

// Items returns the elements. The slice is borrowed: it aliases the Vec's
// storage until the next mutation.
func (v *Vec[T]) Items() []T {
	return v.items
}

// Clone returns an independent copy
func (v *Vec[T]) Clone() Vec[T] {
	return Vec[T]{items: slices.Clone(v.items)}
}

// Take moves the storage into a new Vec and leaves v empty
func (v *Vec[T]) Take() Vec[T] {
	taken := Vec[T]{items: v.items}
	v.items = nil
	return taken
}

// Clear removes all elements and keeps the capacity
func (v *Vec[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

func (v *Vec[T]) index(operation string, i int) (int, error) {
	n := len(v.items)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, errors.IndexOutOfRange(errors.ModuleSlicex, operation, i, n)
	}
	return idx, nil
}
