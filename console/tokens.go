package console

import (
	"strconv"
	"strings"
)

// checkTokens classifies each raw token and verifies that every flag token maps to a registered [Flag].
// Values are assigned afterward by the FlagSet, which follows the same token rules.
func (in *Input) checkTokens(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return nil
		case strings.HasPrefix(arg, "--"):
			consumed, err := in.checkLongFlag(arg, args[i+1:])
			if err != nil {
				return err
			}
			i += consumed
		case len(arg) > 1 && arg[0] == '-':
			consumed, err := in.checkShortCluster(arg, args[i+1:])
			if err != nil {
				return err
			}
			i += consumed
		}
	}
	return nil
}

// checkLongFlag validates a --name or --name=value token, returning the number of following tokens consumed as a value.
func (in *Input) checkLongFlag(arg string, rest []string) (int, error) {
	name, value, hasValue := strings.Cut(arg[2:], "=")
	if len(name) == 0 || strings.HasPrefix(name, "-") {
		return 0, newParseError(arg, "%w: %s", ErrMalformedFlag, arg)
	}
	f, ok := in.flags[name]
	if !ok {
		return 0, newParseError("--"+name, "%w: --%s", ErrUnknownFlag, name)
	}
	if hasValue {
		return 0, f.checkInlineValue(arg, value)
	}
	if !f.TakesValue() {
		return 0, nil
	}
	if len(rest) == 0 {
		return 0, newParseError(arg, "%w: %s", ErrMissingValue, arg)
	}
	return 1, nil
}

// checkShortCluster validates a token like -abc, which is the same as -a -b -c.
// A valued flag in the cluster takes the remainder of the token as its value, or the next token if nothing remains.
func (in *Input) checkShortCluster(arg string, rest []string) (int, error) {
	cluster := arg[1:]
	if cluster[0] == '=' {
		return 0, newParseError(arg, "%w: %s", ErrMalformedFlag, arg)
	}
	for i := 0; i < len(cluster); i++ {
		alias := cluster[i : i+1]
		f, ok := in.aliases[alias]
		if !ok {
			if len(cluster) == 1 {
				return 0, newParseError(arg, "%w: %s", ErrUnknownFlag, arg)
			}
			return 0, newParseError("-"+alias, "%w: -%s in %s", ErrUnknownFlag, alias, arg)
		}
		remaining := cluster[i+1:]
		if remaining == "=" {
			return 0, newParseError(arg, "%w: %s has no value after '='", ErrMalformedFlag, arg)
		}
		if strings.HasPrefix(remaining, "=") {
			return 0, f.checkInlineValue(arg, remaining[1:])
		}
		if !f.TakesValue() {
			continue
		}
		if len(remaining) > 0 {
			return 0, nil
		}
		if len(rest) == 0 {
			return 0, newParseError("-"+alias, "%w: -%s", ErrMissingValue, alias)
		}
		return 1, nil
	}
	return 0, nil
}

// checkInlineValue verifies a value attached with '=' to a flag that normally takes none.
func (f *Flag) checkInlineValue(arg, value string) error {
	var err error
	switch {
	case f.stackable:
		_, err = strconv.ParseInt(value, 0, 0)
	case f.kind == boolFlag:
		_, err = strconv.ParseBool(value)
	}
	if err != nil {
		return newParseError(arg, "%w: '%s' in %s", ErrInvalidValue, value, arg)
	}
	return nil
}
