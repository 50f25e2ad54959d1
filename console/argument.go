package console

// Argument is a named positional slot declared by a [Command].
// Positional tokens are assigned to arguments in declaration order, and required arguments must be declared before optional ones.
type Argument struct {
	name         string
	description  string
	required     bool
	position     int
	defaultValue string
	value        string
	set          bool
}

// NewArgument creates an optional [Argument].
func NewArgument(name, description string) *Argument {
	return &Argument{name: name, description: description, position: -1}
}

// SetRequired specifies whether parsing should fail if this [Argument] is not provided.
func (a *Argument) SetRequired(required bool) *Argument {
	a.required = required
	return a
}

// SetDefault sets the value reported by an optional [Argument] when it's not provided.
func (a *Argument) SetDefault(value string) *Argument {
	a.defaultValue = value
	return a
}

func (a *Argument) Name() string {
	return a.name
}

func (a *Argument) Description() string {
	return a.description
}

func (a *Argument) Required() bool {
	return a.required
}

// Position returns the index of this [Argument] in declaration order, or -1 if it hasn't been added to an [Input].
func (a *Argument) Position() int {
	return a.position
}

// Exists reports whether a positional token was assigned to this [Argument].
func (a *Argument) Exists() bool {
	return a.set
}

// Value returns the assigned token, or the default value if none was assigned.
func (a *Argument) Value() string {
	if !a.set {
		return a.defaultValue
	}
	return a.value
}

func (a *Argument) usage() string {
	if a.required {
		return a.name
	}
	return "[" + a.name + "]"
}
