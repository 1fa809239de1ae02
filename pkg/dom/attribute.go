package dom

// Attribute is a single name/value pair on an element. Insertion order is
// preserved and duplicate names are not deduplicated.
//
// A boolean attribute carries no value. The model does not distinguish a
// boolean attribute from one explicitly assigned an empty string.
type Attribute struct {
	Name  string
	Value string
}

// NewAttribute creates an attribute with a value.
func NewAttribute(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// NewBoolean creates a valueless attribute.
func NewBoolean(name string) Attribute {
	return Attribute{Name: name}
}

// IsBoolean reports whether the attribute has no value.
func (a Attribute) IsBoolean() bool {
	return len(a.Value) == 0
}

// HTML renders the attribute as markup text. Values are always double
// quoted, regardless of how the source quoted them.
func (a Attribute) HTML() string {
	if a.IsBoolean() {
		return a.Name
	}
	return a.Name + `="` + a.Value + `"`
}
