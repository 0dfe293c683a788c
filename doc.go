// Package flatcol provides composable columnar storage regions: append-only,
// typed arenas that store large numbers of structurally similar values
// contiguously instead of as individual heap objects.
//
// A region accepts values through Push, hands back an opaque index, and
// resolves indices back to borrowed read items through Index. Regions compose
// structurally: a tuple region owns one sub-region per field, a slice region
// stores every element of every pushed slice in a single inner region, an
// option region stores only the present values. The index of a composed
// region is the composition of its sub-regions' indices, so lookups stay
// cheap at any nesting depth and read items reference region memory without
// copying.
//
// # Quick Start
//
// FlatStack pairs one region with an ordered index sequence and is the
// "array of records" abstraction applications use directly:
//
//	stack := flatcol.NewStrings()
//	stack.Append("columnar")
//	stack.Append("storage")
//	first := stack.Get(0) // "columnar", borrowed from the region buffer
//
// Composite shapes are built by nesting regions:
//
//	// records of (id, name)
//	r := flatcol.NewTuple2Region[uint64, uint64, uint64, *flatcol.MirrorRegion[uint64], string, flatcol.Span, string](
//	    flatcol.NewMirrorRegion[uint64](),
//	    flatcol.NewStringRegion(),
//	)
//
// # Concurrency Model
//
// Regions are single-writer. Concurrent lookups are safe as long as no Push,
// Clear or MergeFrom runs at the same time; that discipline is the caller's.
// The intended parallel pattern is to build independent regions in workers
// and combine them afterwards in a single-threaded merge step (see
// BuildParallel and MergeFrom).
//
// # Indices
//
// Indices are trusted capability tokens. Looking up an index that was never
// returned by the region, or one issued before the last Clear, is a caller
// bug and panics at best.
package flatcol
