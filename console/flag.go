package console

import (
	"regexp"
	"strconv"

	flag "github.com/spf13/pflag"
)

var (
	flagNamePattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	flagAliasPattern = regexp.MustCompile(`^[a-zA-Z0-9]$`)
)

type flagKind int

const (
	boolFlag flagKind = iota
	valueFlag
)

// Flag describes a single switch that may be passed as --name, or -alias when an alias is set.
// A Flag is either boolean (see [NewFlag]) or valued (see [NewValueFlag]).
//
// Boolean flags may be made stackable with [Flag.SetStackable], where each occurrence increments a counter.
// Values are available after [Input.Parse] has run.
type Flag struct {
	name         string
	alias        string
	description  string
	kind         flagKind
	stackable    bool
	defaultValue string
	hasDefault   bool
	owner        string

	fs *flag.FlagSet
	pf *flag.Flag
}

// NewFlag creates a boolean [Flag].
func NewFlag(name, description string) *Flag {
	return &Flag{name: name, description: description, kind: boolFlag}
}

// NewValueFlag creates a [Flag] that takes a value, either as --name=value or as the following token.
// If the flag appears more than once, then the last value wins.
func NewValueFlag(name, description, defaultValue string) *Flag {
	return &Flag{
		name:         name,
		description:  description,
		kind:         valueFlag,
		defaultValue: defaultValue,
		hasDefault:   len(defaultValue) > 0,
	}
}

// Alias sets a single character shorthand for this [Flag].
func (f *Flag) Alias(alias rune) *Flag {
	f.alias = string(alias)
	return f
}

// SetStackable specifies whether repeated occurrences of this [Flag] should be counted.
func (f *Flag) SetStackable(stackable bool) *Flag {
	f.stackable = stackable
	return f
}

// SetDefault sets the value reported when this [Flag] is not passed.
// Stackable flags require an integer, and boolean flags require a value accepted by [strconv.ParseBool].
func (f *Flag) SetDefault(value string) *Flag {
	f.defaultValue = value
	f.hasDefault = true
	return f
}

func (f *Flag) Name() string {
	return f.name
}

func (f *Flag) AliasName() string {
	return f.alias
}

func (f *Flag) Description() string {
	return f.description
}

func (f *Flag) IsStackable() bool {
	return f.stackable
}

// TakesValue reports whether this [Flag] consumes a value.
func (f *Flag) TakesValue() bool {
	return f.kind == valueFlag
}

func (f *Flag) validate() error {
	if !flagNamePattern.MatchString(f.name) {
		return newConfigError("%w: flag name '%s' must be kebab-case", ErrInvalidName, f.name)
	}
	if len(f.alias) > 0 && !flagAliasPattern.MatchString(f.alias) {
		return newConfigError("%w: alias '%s' for flag '%s' must be a single letter or digit", ErrInvalidName, f.alias, f.name)
	}
	if f.stackable && f.kind == valueFlag {
		return newConfigError("%w: flag '%s'", ErrStackableValue, f.name)
	}
	if !f.hasDefault {
		return nil
	}
	switch {
	case f.stackable:
		if _, err := strconv.Atoi(f.defaultValue); err != nil {
			return newConfigError("%w: stackable flag '%s' requires an integer default, got '%s'", ErrInvalidDefault, f.name, f.defaultValue)
		}
	case f.kind == boolFlag:
		if _, err := strconv.ParseBool(f.defaultValue); err != nil {
			return newConfigError("%w: boolean flag '%s' requires a boolean default, got '%s'", ErrInvalidDefault, f.name, f.defaultValue)
		}
	}
	return nil
}

// bind registers this Flag in the given FlagSet. The Flag must already be validated.
func (f *Flag) bind(fs *flag.FlagSet) {
	switch {
	case f.stackable:
		fs.CountP(f.name, f.alias, f.description)
	case f.kind == valueFlag:
		fs.StringP(f.name, f.alias, f.defaultValue, f.description)
	default:
		def, _ := strconv.ParseBool(f.defaultValue)
		fs.BoolP(f.name, f.alias, def, f.description)
	}
	f.fs = fs
	f.pf = fs.Lookup(f.name)
}

// Exists reports whether this [Flag] appeared on the command line at least once, regardless of its value.
func (f *Flag) Exists() bool {
	return f.pf != nil && f.pf.Changed
}

// Value returns the parsed value as a string, or the declared default if the flag wasn't passed.
func (f *Flag) Value() string {
	if !f.Exists() {
		return f.defaultValue
	}
	return f.pf.Value.String()
}

// ValueOr returns the parsed value, or def if the flag wasn't passed.
func (f *Flag) ValueOr(def string) string {
	if !f.Exists() {
		return def
	}
	return f.pf.Value.String()
}

// Bool returns true if a boolean flag is set, or a stackable flag was counted at least once.
func (f *Flag) Bool() bool {
	if f.stackable {
		return f.Count() > 0
	}
	if !f.Exists() {
		val, _ := strconv.ParseBool(f.defaultValue)
		return val
	}
	val, _ := strconv.ParseBool(f.pf.Value.String())
	return val
}

// Count returns the number of times a stackable flag occurred, or its declared default (0 unless set) if it never did.
func (f *Flag) Count() int {
	def, _ := strconv.Atoi(f.defaultValue)
	return f.CountOr(def)
}

// CountOr returns the number of times a stackable flag occurred, or def if it never did.
func (f *Flag) CountOr(def int) int {
	if !f.Exists() {
		return def
	}
	count, err := f.fs.GetCount(f.name)
	if err != nil {
		return def
	}
	return count
}

// Int interprets the value of this [Flag] as an integer.
func (f *Flag) Int() (int, error) {
	if f.stackable {
		return f.Count(), nil
	}
	return strconv.Atoi(f.Value())
}
