// Package slicex provides the owned growable buffer behind stringx.String and a
// few generic slice helpers.
//
// Package: slicex
// Title: Growable Buffer and Slice Helpers
// Description: Vec[T] owns its storage, exposes explicit capacity reservation and
//              returns SLICEX_INDEX_OUT_OF_RANGE errors for bad indices. Clone
//              copies, Take moves. Map and Filter convert plain slices.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-16 v0.2.0: Vec buffer, helpers reduced to Map and Filter
//
// Usage:
//
//	buf := slicex.NewVec[byte](16)
//	buf.Extend('h', 'i')
//	buf.Push(0)
//	last, _ := buf.At(-1) // 0
//
//	names := slicex.Map(parts, func(s stringx.String) string { return s.String() })
package slicex
