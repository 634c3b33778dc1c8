package formx

// Field names shared by the outreach forms.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Fields maps a field name to its current value.
type Fields map[string]string

// Get returns the value of name, or "".
func (f Fields) Get(name string) string { return f[name] }

// Clone returns an independent copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func emptyFields(names []string) Fields {
	out := make(Fields, len(names))
	for _, n := range names {
		out[n] = ""
	}
	return out
}
