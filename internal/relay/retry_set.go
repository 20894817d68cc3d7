package relay

import (
	"encoding/json"
	"slices"
)

// RetrySet is the set of sequence numbers deferred for a later attempt.
type RetrySet map[uint64]struct{}

// NewRetrySet builds a set out of the given sequence numbers.
func NewRetrySet(seqNumbers ...uint64) RetrySet {
	s := make(RetrySet, len(seqNumbers))
	for _, seq := range seqNumbers {
		s.Add(seq)
	}
	return s
}

func (s RetrySet) Add(seq uint64) {
	s[seq] = struct{}{}
}

func (s RetrySet) Remove(seq uint64) {
	delete(s, seq)
}

func (s RetrySet) Contains(seq uint64) bool {
	_, ok := s[seq]
	return ok
}

// Union returns a new set holding the members of both sets.
func (s RetrySet) Union(other RetrySet) RetrySet {
	out := make(RetrySet, len(s)+len(other))
	for seq := range s {
		out.Add(seq)
	}
	for seq := range other {
		out.Add(seq)
	}
	return out
}

// Sorted returns the members in ascending order.
func (s RetrySet) Sorted() []uint64 {
	out := make([]uint64, 0, len(s))
	for seq := range s {
		out = append(out, seq)
	}
	slices.Sort(out)
	return out
}

// MarshalJSON encodes the set as an ascending array so equal sets serialize identically.
func (s RetrySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *RetrySet) UnmarshalJSON(data []byte) error {
	var seqNumbers []uint64
	if err := json.Unmarshal(data, &seqNumbers); err != nil {
		return err
	}
	*s = NewRetrySet(seqNumbers...)
	return nil
}
