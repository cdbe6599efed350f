package semgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProperty(t *testing.T) {
	store := newTestStore(t)

	cases := []struct {
		name  string
		kind  string
		error string
	}{
		{name: "hasWeight", kind: "INSTANCE"},
		{name: "subClassOf", kind: "ABSTRACT"},
		{name: "hasCost", kind: "instance", error: `creating property: invalid property kind: "instance"`},
		{name: "hasCost", kind: "", error: `creating property: invalid property kind: ""`},
		{name: "hasCost", kind: "CLASS", error: `creating property: invalid property kind: "CLASS"`},
	}
	for idx, testCase := range cases {
		id, err := store.CreateProperty(testCase.name, PropertyKind(testCase.kind))
		if testCase.error != "" {
			require.Error(t, err, "case %d", idx)
			assert.True(t, IsInvalidArgument(err), "case %d", idx)
			assert.Equal(t, testCase.error, err.Error(), "case %d", idx)
			continue
		}
		require.NoError(t, err, "case %d", idx)
		property, err := store.GetProperty(id)
		require.NoError(t, err)
		assert.Equal(t, testCase.name, property.Name)
		assert.Equal(t, PropertyKind(testCase.kind), property.Kind)
	}

	// the rejected creates allocated nothing
	all, err := store.Properties()
	require.NoError(t, err)
	assert.Len(t, all, 2)
	next, err := store.CreateProperty("hasCost", PropertyInstance)
	require.NoError(t, err)
	assert.Equal(t, ID(3), next)
}

func TestParsePropertyKind(t *testing.T) {
	kind, err := ParsePropertyKind("ABSTRACT")
	require.NoError(t, err)
	assert.Equal(t, PropertyAbstract, kind)

	_, err = ParsePropertyKind("SCHEMA")
	assert.True(t, IsInvalidArgument(err))
}

func TestPropertyString(t *testing.T) {
	p := &Property{ID: 5, Name: "hasWeight", Kind: PropertyInstance}
	assert.Equal(t, "<id='5', name='hasWeight', type_='INSTANCE'>", p.String())
}
