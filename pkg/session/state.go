package session

import "sort"

// State is a snapshot of one practice session. Values returned by Engine are
// deep copies; mutating them does not affect the engine.
type State struct {
	Points         int
	Streak         int
	Level          int
	ElapsedSeconds int
	Running        bool
	// Used maps a technique name to the set of example indices marked used.
	Used         map[string]map[int]struct{}
	Notification string
}

// NewState returns the state a session starts from and returns to on reset.
func NewState() State {
	return State{
		Level: 1,
		Used:  make(map[string]map[int]struct{}),
	}
}

// IsUsed reports whether the example at index of the named technique has
// been marked used.
func (s State) IsUsed(name string, index int) bool {
	_, ok := s.Used[name][index]
	return ok
}

// UsedIndices returns the sorted example indices marked used for name.
func (s State) UsedIndices(name string) []int {
	set := s.Used[name]
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// UsedCount returns the number of examples marked used across all techniques.
func (s State) UsedCount() int {
	n := 0
	for _, set := range s.Used {
		n += len(set)
	}
	return n
}

func (s State) clone() State {
	cp := s
	cp.Used = make(map[string]map[int]struct{}, len(s.Used))
	for name, set := range s.Used {
		inner := make(map[int]struct{}, len(set))
		for i := range set {
			inner[i] = struct{}{}
		}
		cp.Used[name] = inner
	}
	return cp
}

func (s *State) markUsed(name string, index int) {
	set, ok := s.Used[name]
	if !ok {
		set = make(map[int]struct{})
		s.Used[name] = set
	}
	set[index] = struct{}{}
}
