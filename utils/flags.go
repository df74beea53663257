package utils

// FlagSet is a small set of named bit flags. It is parameterized over the
// flag type so unrelated rule sets (submission requirements, configuration
// warnings) each get their own set type instead of sharing a mutable base.
type FlagSet[F ~uint32] struct {
	bits F
}

// Set adds a flag to the set.
func (s *FlagSet[F]) Set(flag F) {
	s.bits |= flag
}

// Has reports whether a flag is present.
func (s FlagSet[F]) Has(flag F) bool {
	return s.bits&flag != 0
}

// Empty reports whether no flag is set.
func (s FlagSet[F]) Empty() bool {
	return s.bits == 0
}
