package shared

// Crew is a value object holding personnel counts by role
type Crew struct {
	Workers        int
	Archaeologists int
	Linguists      int
}

// Add returns the element-wise sum of two crews
func (c Crew) Add(other Crew) Crew {
	return Crew{
		Workers:        c.Workers + other.Workers,
		Archaeologists: c.Archaeologists + other.Archaeologists,
		Linguists:      c.Linguists + other.Linguists,
	}
}

// Subtract returns the element-wise difference, clamped at zero so
// personnel counts can never go negative
func (c Crew) Subtract(other Crew) Crew {
	return Crew{
		Workers:        clampNonNegative(c.Workers - other.Workers),
		Archaeologists: clampNonNegative(c.Archaeologists - other.Archaeologists),
		Linguists:      clampNonNegative(c.Linguists - other.Linguists),
	}
}

// Covers reports whether every role count meets or exceeds the requirement
func (c Crew) Covers(required Crew) bool {
	return c.Workers >= required.Workers &&
		c.Archaeologists >= required.Archaeologists &&
		c.Linguists >= required.Linguists
}

// IsZero reports whether all role counts are zero
func (c Crew) IsZero() bool {
	return c.Workers == 0 && c.Archaeologists == 0 && c.Linguists == 0
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
