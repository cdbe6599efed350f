package semgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, name := range []string{"CLASS", "INSTANCE", "TERMINAL"} {
		kind, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, kind.String())
	}

	for _, bad := range []string{"", "class", "PROPERTY", "ABSTRACT"} {
		_, err := ParseKind(bad)
		assert.True(t, IsInvalidArgument(err), "expected invalid argument for %q", bad)
	}
}

func TestParseRef(t *testing.T) {
	for _, ref := range []Ref{ClassRef(1), InstanceRef(10), TerminalRef(20)} {
		parsed, err := ParseRef(ref.String())
		require.NoError(t, err)
		assert.Equal(t, ref, parsed)
	}

	for _, bad := range []string{
		"20",
		"WIDGET:20",
		"CLASS:",
		"CLASS:5abc",
		"CLASS: 7",
		"CLASS:7 ",
		"CLASS:-1",
		"CLASS:+1",
		"CLASS:1.5",
		"CLASS:1:2",
		"CLASS:18446744073709551616",
	} {
		_, err := ParseRef(bad)
		assert.True(t, IsInvalidArgument(err), "expected invalid argument for %q", bad)
	}
}

func TestRefKeepsTag(t *testing.T) {
	class := ClassRef(3)
	inst := InstanceRef(3)

	assert.NotEqual(t, class, inst)
	assert.Equal(t, "CLASS:3", class.String())
	assert.Equal(t, "INSTANCE:3", inst.String())
	_, err := NewRef(Kind(9), 1)
	assert.True(t, IsInvalidArgument(err))
}
