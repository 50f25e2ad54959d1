package console

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	err := newConfigError("%w: '--help'", ErrDuplicateFlag)
	assert.ErrorIs(t, err, &ConfigError{})
	assert.ErrorIs(t, err, ErrDuplicateFlag)
	assert.NotErrorIs(t, err, &ParseError{})
	assert.Equal(t, "configuration error: duplicate flag: '--help'", err.Error())
	assert.Equal(t, "configuration error", (&ConfigError{}).Error())
}

func TestParseError(t *testing.T) {
	err := newParseError("--nope", "%w: --nope", ErrUnknownFlag)
	assert.ErrorIs(t, err, &ParseError{})
	assert.ErrorIs(t, err, ErrUnknownFlag)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "--nope", perr.Token)
	assert.Equal(t, "parse error: unknown flag: --nope", err.Error())
	assert.Equal(t, "parse error", (&ParseError{}).Error())
}

func TestErrorCollector(t *testing.T) {
	var c errorCollector
	c.add(nil)
	assert.NoError(t, c.result(), "An empty collector should not be an error")

	c.add(newConfigError("%w: 'a'", ErrDuplicateCommand))
	c.add(errors.New("other"))
	err := c.result()
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	assert.ErrorIs(t, err, &ConfigError{})
	assert.Equal(t, "configuration error: duplicate command: 'a'\nother", err.Error())
}
