package ecs

import "math/bits"

// Mask is a bitset over a registry's component roster. Bit i is set iff the
// owner has the component registered at slot i. The roster is capped at
// MaxComponents, so a single word is enough.
type Mask uint64

// Mark sets the bit for the given slot.
func (m *Mask) Mark(slot int) {
	*m |= 1 << slot
}

// Has reports whether the bit for the given slot is set.
func (m Mask) Has(slot int) bool {
	return m&(1<<slot) != 0
}

// ContainsAll reports whether every bit set in other is also set in m.
func (m Mask) ContainsAll(other Mask) bool {
	return m&other == other
}

// ContainsAny reports whether m and other share at least one set bit.
func (m Mask) ContainsAny(other Mask) bool {
	return m&other != 0
}

// Count returns the number of set bits.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}
