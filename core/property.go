package core

import (
	"math/bits"
	"strconv"
	"strings"
)

// Property is a bit index into a PropertySet
type Property uint8

// MaxProperties is the width of PropertySet
const MaxProperties = 64

// PropertySet is a fixed-width bitset of boolean entity tags
type PropertySet uint64

// Props builds a set from individual properties
func Props(ps ...Property) PropertySet {
	var s PropertySet
	for _, p := range ps {
		s |= 1 << p
	}
	return s
}

// Has reports whether p is set
func (s PropertySet) Has(p Property) bool {
	return s&(1<<p) != 0
}

// Contains reports whether s is a superset of other
func (s PropertySet) Contains(other PropertySet) bool {
	return s&other == other
}

func (s PropertySet) With(p Property) PropertySet {
	return s | 1<<p
}

func (s PropertySet) Without(p Property) PropertySet {
	return s &^ (1 << p)
}

// Len returns the number of set properties
func (s PropertySet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Each calls fn for every set property in ascending order
func (s PropertySet) Each(fn func(p Property)) {
	for v := uint64(s); v != 0; v &= v - 1 {
		fn(Property(bits.TrailingZeros64(v)))
	}
}

// Format renders the set using names, unknown bits as their index
func (s PropertySet) Format(names map[Property]string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Each(func(p Property) {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		if n, ok := names[p]; ok {
			sb.WriteString(n)
		} else {
			sb.WriteByte('#')
			sb.WriteString(strconv.Itoa(int(p)))
		}
	})
	sb.WriteByte('}')
	return sb.String()
}
