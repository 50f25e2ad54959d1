package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlag_Validate(t *testing.T) {
	tests := map[string]struct {
		flag    *Flag
		wantErr error
	}{
		"Boolean flag": {
			flag: NewFlag("dry-run", "Doesn't do anything").Alias('n'),
		},
		"Valued flag": {
			flag: NewValueFlag("port", "Port to listen on", "80").Alias('p'),
		},
		"Stackable flag with default": {
			flag: NewFlag("verbose", "More output").SetStackable(true).SetDefault("2"),
		},
		"Upper case name": {
			flag:    NewFlag("DryRun", ""),
			wantErr: ErrInvalidName,
		},
		"Empty name": {
			flag:    NewFlag("", ""),
			wantErr: ErrInvalidName,
		},
		"Trailing dash": {
			flag:    NewFlag("dry-", ""),
			wantErr: ErrInvalidName,
		},
		"Symbol alias": {
			flag:    NewFlag("dry-run", "").Alias('-'),
			wantErr: ErrInvalidName,
		},
		"Stackable valued flag": {
			flag:    NewValueFlag("level", "", "").SetStackable(true),
			wantErr: ErrStackableValue,
		},
		"Stackable non-integer default": {
			flag:    NewFlag("verbose", "").SetStackable(true).SetDefault("lots"),
			wantErr: ErrInvalidDefault,
		},
		"Boolean non-boolean default": {
			flag:    NewFlag("force", "").SetDefault("maybe"),
			wantErr: ErrInvalidDefault,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.flag.validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, &ConfigError{})
		})
	}
}

func TestFlag_Stackable(t *testing.T) {
	tests := map[string]struct {
		args  []string
		count int
	}{
		"Absent":          {args: nil, count: 0},
		"Once":            {args: []string{"-v"}, count: 1},
		"Cluster":         {args: []string{"-vvv"}, count: 3},
		"Long repeated":   {args: []string{"--verbose", "--verbose", "--verbose"}, count: 3},
		"Mixed":           {args: []string{"-vv", "--verbose"}, count: 3},
		"Explicit number": {args: []string{"--verbose=5"}, count: 5},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			in := NewInput(tc.args)
			verbose := NewFlag("verbose", "").Alias('v').SetStackable(true)
			require.NoError(t, in.AddFlag(verbose))
			require.NoError(t, in.Parse())
			assert.Equal(t, tc.count, verbose.Count())
			assert.Equal(t, tc.count > 0, verbose.Exists())
		})
	}
}

func TestFlag_StackableDefault(t *testing.T) {
	in := NewInput(nil)
	verbose := NewFlag("verbose", "").Alias('v').SetStackable(true).SetDefault("1")
	require.NoError(t, in.AddFlag(verbose))
	require.NoError(t, in.Parse())
	assert.False(t, verbose.Exists())
	assert.Equal(t, 1, verbose.Count(), "Declared default should be used when absent")
	assert.Equal(t, 4, verbose.CountOr(4))
}

func TestFlag_LastValueWins(t *testing.T) {
	in := NewInput([]string{"--name", "first", "-n", "second", "--name=third"})
	name := NewValueFlag("name", "", "nobody").Alias('n')
	require.NoError(t, in.AddFlag(name))
	require.NoError(t, in.Parse())
	assert.True(t, name.Exists())
	assert.Equal(t, "third", name.Value())
}

func TestFlag_ExistsWithFalsyValue(t *testing.T) {
	in := NewInput([]string{"--force=false", "--name="})
	force := NewFlag("force", "")
	name := NewValueFlag("name", "", "default")
	require.NoError(t, in.AddFlag(force))
	require.NoError(t, in.AddFlag(name))
	require.NoError(t, in.Parse())

	assert.True(t, force.Exists())
	assert.False(t, force.Bool())
	assert.True(t, name.Exists())
	assert.Equal(t, "", name.Value())
	assert.Equal(t, "", name.ValueOr("fallback"))
}

func TestFlag_Defaults(t *testing.T) {
	in := NewInput(nil)
	port := NewValueFlag("port", "", "8080")
	force := NewFlag("force", "").SetDefault("true")
	require.NoError(t, in.AddFlag(port))
	require.NoError(t, in.AddFlag(force))
	require.NoError(t, in.Parse())

	assert.False(t, port.Exists())
	assert.Equal(t, "8080", port.Value())
	assert.Equal(t, "9090", port.ValueOr("9090"))
	num, err := port.Int()
	assert.NoError(t, err)
	assert.Equal(t, 8080, num)
	assert.True(t, force.Bool())
}
