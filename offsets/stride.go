package offsets

// strideState enumerates the shapes of sequence a Stride can still describe.
type strideState uint8

const (
	strideEmpty strideState = iota
	strideZero
	strideStriding
	strideSaturated
)

// Stride encodes an offset sequence in constant space as long as the sequence
// is an arithmetic progression starting at zero, optionally followed by
// repeats of its last element. This covers the two offset patterns that
// dominate in practice: fixed-width rows (pure stride) and a run of empty
// rows at the tail (saturation).
//
// Push reports whether the value fit the current shape. Once a push is
// rejected the Stride is unchanged and the caller must fall back to a general
// container for that value and all following ones.
type Stride struct {
	state  strideState
	stride uint64
	count  int // values on the arithmetic ramp, including the zero
	reps   int // trailing repeats of the last ramp value
}

// Push offers v to the state machine. It returns false if v does not extend
// the encoded sequence; the state is left untouched in that case.
func (s *Stride) Push(v uint64) bool {
	switch s.state {
	case strideEmpty:
		if v != 0 {
			return false
		}
		s.state = strideZero
		s.count = 1
		return true
	case strideZero:
		if v == 0 {
			// A repeated zero saturates immediately with stride zero.
			s.state = strideSaturated
			s.reps = 1
			return true
		}
		s.state = strideStriding
		s.stride = v
		s.count = 2
		return true
	case strideStriding:
		last := s.stride * uint64(s.count-1)
		switch v {
		case last + s.stride:
			s.count++
			return true
		case last:
			s.state = strideSaturated
			s.reps = 1
			return true
		default:
			return false
		}
	case strideSaturated:
		if v == s.stride*uint64(s.count-1) {
			s.reps++
			return true
		}
		return false
	default:
		return false
	}
}

// Len returns the number of values pushed so far.
func (s *Stride) Len() int {
	return s.count + s.reps
}

// Index returns the i-th pushed value. Indices at or past the arithmetic ramp
// resolve to the last ramp value.
func (s *Stride) Index(i int) uint64 {
	if i >= s.count {
		i = s.count - 1
	}
	return s.stride * uint64(i)
}

// Clear resets the machine to the empty state.
func (s *Stride) Clear() {
	*s = Stride{}
}
