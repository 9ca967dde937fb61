package driven

// CommitteeDirectory maps committee names to testimony recipient addresses.
type CommitteeDirectory interface {
	// Lookup returns the recipient address for a committee name.
	Lookup(name string) (string, bool)

	// Names returns all configured committee names, sorted.
	Names() []string
}
