package flatcol

import (
	"fmt"
	"iter"
)

// ColumnsRegion transposes row-major input into column-major storage: the
// k-th value of every pushed row lands in column k, and each column is its
// own inner region instance. When most rows share a length this improves
// locality and lets per-column specializations (dictionaries, offset
// compaction) see homogeneous streams. Rows of different lengths are fine; a
// length-n row touches only the first n columns. Columns are created lazily
// the first time a row reaches them.
type ColumnsRegion[T, I, R any, Re Region[T, I, R, Re]] struct {
	newColumn func() Re
	columns   []Re
	rows      OwnedRegion[I]
	scratch   []I
}

// NewColumnsRegion creates a ColumnsRegion. newColumn constructs the inner
// region backing each column on demand.
func NewColumnsRegion[T, I, R any, Re Region[T, I, R, Re]](newColumn func() Re) *ColumnsRegion[T, I, R, Re] {
	return &ColumnsRegion[T, I, R, Re]{newColumn: newColumn}
}

// Push distributes row across the columns and returns the row's index.
func (r *ColumnsRegion[T, I, R, Re]) Push(row []T) Span {
	r.growColumns(len(row))
	r.scratch = r.scratch[:0]
	for k, v := range row {
		r.scratch = append(r.scratch, r.columns[k].Push(v))
	}
	return r.rows.Push(r.scratch)
}

func (r *ColumnsRegion[T, I, R, Re]) growColumns(width int) {
	for len(r.columns) < width {
		r.columns = append(r.columns, r.newColumn())
	}
}

// Index returns a view over the row stored at i.
func (r *ColumnsRegion[T, I, R, Re]) Index(i Span) ColumnsView[T, I, R, Re] {
	return ColumnsView[T, I, R, Re]{
		columns: r.columns,
		indices: r.rows.Index(i),
	}
}

// Columns returns the number of columns allocated so far.
func (r *ColumnsRegion[T, I, R, Re]) Columns() int {
	return len(r.columns)
}

// Clear clears every column and the row index region. The set of columns is
// retained so refilling does not reconstruct them.
func (r *ColumnsRegion[T, I, R, Re]) Clear() {
	for _, c := range r.columns {
		c.Clear()
	}
	r.rows.Clear()
}

// MergeFrom grows the column set to the widest input, reserves each column
// from the matching columns of the inputs, and reserves the row index
// region.
func (r *ColumnsRegion[T, I, R, Re]) MergeFrom(regions []*ColumnsRegion[T, I, R, Re]) {
	width := len(r.columns)
	for _, other := range regions {
		width = max(width, len(other.columns))
	}
	r.growColumns(width)

	peers := make([]Re, 0, len(regions))
	for k := range width {
		peers = peers[:0]
		for _, other := range regions {
			if k < len(other.columns) {
				peers = append(peers, other.columns[k])
			}
		}
		r.columns[k].MergeFrom(peers)
	}

	rows := make([]*OwnedRegion[I], len(regions))
	for k, other := range regions {
		rows[k] = &other.rows
	}
	r.rows.MergeFrom(rows)
}

// HeapSize reports the row index region and every column.
func (r *ColumnsRegion[T, I, R, Re]) HeapSize(fn func(used, reserved int)) {
	r.rows.HeapSize(fn)
	for _, c := range r.columns {
		c.HeapSize(fn)
	}
}

// ColumnsView is the read item of ColumnsRegion: one stored row, resolved
// lazily column by column.
type ColumnsView[T, I, R any, Re Region[T, I, R, Re]] struct {
	columns []Re
	indices []I
}

// Len returns the row's length.
func (v ColumnsView[T, I, R, Re]) Len() int {
	return len(v.indices)
}

// Get resolves the value stored in column k of this row.
func (v ColumnsView[T, I, R, Re]) Get(k int) R {
	return v.columns[k].Index(v.indices[k])
}

// All iterates the row's values in column order.
func (v ColumnsView[T, I, R, Re]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for k := range v.indices {
			if !yield(v.Get(k)) {
				return
			}
		}
	}
}

// FixedColumnsRegion is ColumnsRegion for rows that all share one length.
// The first pushed row fixes the region's width; any later row of a
// different width is a contract violation and panics. In exchange the region
// needs no per-row length bookkeeping: the index is the bare row number.
type FixedColumnsRegion[T, I, R any, Re Region[T, I, R, Re]] struct {
	newColumn func() Re
	columns   []Re
	indices   [][]I // column-major: indices[k][row]
	rowCount  int
}

// NewFixedColumnsRegion creates a FixedColumnsRegion. newColumn constructs
// the inner region backing each column; the column count is fixed by the
// first pushed row.
func NewFixedColumnsRegion[T, I, R any, Re Region[T, I, R, Re]](newColumn func() Re) *FixedColumnsRegion[T, I, R, Re] {
	return &FixedColumnsRegion[T, I, R, Re]{newColumn: newColumn}
}

// Push stores row and returns its row number. Panics if row's length differs
// from the width fixed by the first push.
func (r *FixedColumnsRegion[T, I, R, Re]) Push(row []T) uint64 {
	if r.columns == nil {
		r.columns = make([]Re, len(row))
		r.indices = make([][]I, len(row))
		for k := range r.columns {
			r.columns[k] = r.newColumn()
		}
	}
	if len(row) != len(r.columns) {
		panic(fmt.Sprintf("flatcol: fixed columns push of width %d into region of width %d", len(row), len(r.columns)))
	}
	for k, v := range row {
		r.indices[k] = append(r.indices[k], r.columns[k].Push(v))
	}
	r.rowCount++
	return uint64(r.rowCount - 1)
}

// Index returns a view over the stored row.
func (r *FixedColumnsRegion[T, I, R, Re]) Index(row uint64) FixedColumnsView[T, I, R, Re] {
	return FixedColumnsView[T, I, R, Re]{region: r, row: int(row)}
}

// Len returns the number of stored rows.
func (r *FixedColumnsRegion[T, I, R, Re]) Len() int {
	return r.rowCount
}

// Width returns the fixed row width, or zero before the first push.
func (r *FixedColumnsRegion[T, I, R, Re]) Width() int {
	return len(r.columns)
}

// Clear clears every column and drops all rows. Both the columns and the
// fixed width are retained; rows pushed after Clear must match the original
// width.
func (r *FixedColumnsRegion[T, I, R, Re]) Clear() {
	for k, c := range r.columns {
		c.Clear()
		r.indices[k] = r.indices[k][:0]
	}
	r.rowCount = 0
}

// MergeFrom reserves column and index capacity from regions. All non-empty
// inputs must share the receiver's width (or fix it, if the receiver is
// fresh); a width mismatch panics like a mismatched push would.
func (r *FixedColumnsRegion[T, I, R, Re]) MergeFrom(regions []*FixedColumnsRegion[T, I, R, Re]) {
	var rows int
	for _, other := range regions {
		if other.columns == nil {
			continue
		}
		if r.columns == nil {
			r.columns = make([]Re, other.Width())
			r.indices = make([][]I, other.Width())
			for k := range r.columns {
				r.columns[k] = r.newColumn()
			}
		}
		if other.Width() != r.Width() {
			panic(fmt.Sprintf("flatcol: fixed columns merge of width %d into region of width %d", other.Width(), r.Width()))
		}
		rows += other.rowCount
	}
	peers := make([]Re, 0, len(regions))
	for k := range r.columns {
		peers = peers[:0]
		for _, other := range regions {
			if other.columns != nil {
				peers = append(peers, other.columns[k])
			}
		}
		r.columns[k].MergeFrom(peers)
		r.indices[k] = reserveCap(r.indices[k], rows)
	}
}

// HeapSize reports every column's storage and index list.
func (r *FixedColumnsRegion[T, I, R, Re]) HeapSize(fn func(used, reserved int)) {
	for k, c := range r.columns {
		c.HeapSize(fn)
		sliceHeapSize(r.indices[k], fn)
	}
}

// FixedColumnsView is the read item of FixedColumnsRegion: one stored row.
type FixedColumnsView[T, I, R any, Re Region[T, I, R, Re]] struct {
	region *FixedColumnsRegion[T, I, R, Re]
	row    int
}

// Len returns the region's fixed width.
func (v FixedColumnsView[T, I, R, Re]) Len() int {
	return v.region.Width()
}

// Get resolves the value stored in column k of this row.
func (v FixedColumnsView[T, I, R, Re]) Get(k int) R {
	return v.region.columns[k].Index(v.region.indices[k][v.row])
}

// All iterates the row's values in column order.
func (v FixedColumnsView[T, I, R, Re]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for k := 0; k < v.Len(); k++ {
			if !yield(v.Get(k)) {
				return
			}
		}
	}
}

var _ Region[
	[]uint64, Span,
	ColumnsView[uint64, uint64, uint64, *MirrorRegion[uint64]],
	*ColumnsRegion[uint64, uint64, uint64, *MirrorRegion[uint64]],
] = (*ColumnsRegion[uint64, uint64, uint64, *MirrorRegion[uint64]])(nil)

var _ Region[
	[]uint64, uint64,
	FixedColumnsView[uint64, uint64, uint64, *MirrorRegion[uint64]],
	*FixedColumnsRegion[uint64, uint64, uint64, *MirrorRegion[uint64]],
] = (*FixedColumnsRegion[uint64, uint64, uint64, *MirrorRegion[uint64]])(nil)
