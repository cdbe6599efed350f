package semgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTerminal(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreateTerminal("1200", "kg")
	require.NoError(t, err)

	terminal, err := store.GetTerminal(id)
	require.NoError(t, err)
	assert.Equal(t, &Terminal{ID: id, Value: "1200", Unit: "kg"}, terminal)
	assert.Equal(t, "<id='1', value='1200', unit='kg'>", terminal.String())

	_, err = store.GetTerminal(id + 1)
	assert.True(t, IsNotFound(err))
}
