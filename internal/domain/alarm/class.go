package alarm

// Class is a classification tag that records are grouped and filtered by.
// Classes are shared by reference and never owned or copied by the store;
// two records pointing at the same Class belong to the same group.
type Class struct {
	// Name uniquely identifies the class within the surrounding platform.
	Name string
	// Description is free-form text shown to operators.
	Description string
}

// NewClass creates a classification tag with the provided name.
func NewClass(name string) *Class {
	return &Class{Name: name}
}

// Matches reports whether c accepts the provided record class.
// A nil receiver acts as a wildcard. Pointer identity is checked first,
// falling back to name equality for callers holding their own Class value.
func (c *Class) Matches(other *Class) bool {
	if c == nil {
		return true
	}

	if c == other {
		return true
	}

	return other != nil && c.Name == other.Name
}
