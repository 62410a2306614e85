package id

// Sequence is a monotonically increasing counter starting at 1. It is not
// safe for concurrent use.
type Sequence struct {
	last int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) NextID() int64 {
	s.last++
	return s.last
}

// Last returns the most recently issued id, or 0 when nothing was issued.
func (s *Sequence) Last() int64 {
	return s.last
}
