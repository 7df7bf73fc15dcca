package core

// Rule is an elementary cellular automaton rule encoded as a Wolfram code:
// bit i of the code holds the next state for the 3-bit neighborhood value i.
type Rule uint8

// Rule150 flips a cell when an odd number of its three upstream neighbors
// are alive. It is the rule the generator uses by default.
const Rule150 Rule = 150

// Next returns the successor state for the (left, center, right)
// neighborhood. States other than 0 are treated as alive.
func (r Rule) Next(left, center, right uint8) uint8 {
	idx := (clip(left) << 2) | (clip(center) << 1) | clip(right)
	return uint8(r>>idx) & 1
}

// Table expands the rule into its 8-entry lookup form, indexed by the
// neighborhood value.
func (r Rule) Table() [8]uint8 {
	var t [8]uint8
	for i := range t {
		t[i] = uint8(r>>i) & 1
	}
	return t
}

func clip(v uint8) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}
