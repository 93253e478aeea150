package automaton

// mix64 is the murmur3 64-bit finalizer. State ids are assigned sequentially,
// so the additive set hashes in stateset.go need the ids spread across the
// whole word to stay collision-resistant.
func mix64(v uint64) uint64 {
	v = (v ^ (v >> 33)) * 0xff51afd7ed558ccd
	v = (v ^ (v >> 33)) * 0xc4ceb9fe1a85ec53
	return v ^ (v >> 33)
}
