package model

// FieldSpec describes one editable row a form owns: a stable key for focus
// coordination and persistence, a human label, and the authoritative value.
type FieldSpec struct {
	Key   string
	Label string
	Value string
}

// DisplayLabel returns the label, falling back to the key when none was set.
func (s FieldSpec) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Key
}
