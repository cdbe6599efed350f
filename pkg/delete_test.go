package semgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteBlockedByReferences(t *testing.T) {
	store := newTestStore(t)
	f := newVehicleFixture(t, store)

	object := TerminalRef(f.kg)
	tripleID, err := store.AssertTriple(InstanceRef(f.car), f.weight, &object)
	require.NoError(t, err)

	err = store.DeleteTerminal(f.kg)
	require.Error(t, err)
	assert.True(t, IsReferenced(err))
	assert.Equal(t, "deleting terminal: terminal 1 is still referenced by triple 1", err.Error())

	err = store.DeleteInstance(f.car)
	assert.True(t, IsReferenced(err))

	err = store.DeleteProperty(f.weight)
	assert.True(t, IsReferenced(err))
	assert.Equal(t, "deleting property: property 1 is still referenced by triple 1", err.Error())

	// the class is referenced by the instance's type, not by a triple
	err = store.DeleteClass(f.vehicle)
	assert.True(t, IsReferenced(err))
	assert.Equal(t, "deleting class: class 1 is still referenced by instance 1", err.Error())

	// nothing was removed
	_, err = store.GetTerminal(f.kg)
	require.NoError(t, err)

	// remove the triple, then the rest in dependency order
	require.NoError(t, store.DeleteTriple(tripleID))
	require.NoError(t, store.DeleteTerminal(f.kg))
	require.NoError(t, store.DeleteProperty(f.weight))
	require.NoError(t, store.DeleteInstance(f.car))
	require.NoError(t, store.DeleteClass(f.vehicle))

	_, err = store.GetClass(f.vehicle)
	assert.True(t, IsNotFound(err))
	_, err = store.GetTriple(tripleID)
	assert.True(t, IsNotFound(err))
}

func TestDeleteOnlyMatchesSameKind(t *testing.T) {
	store := newTestStore(t)

	classID, err := store.CreateClass("Vehicle")
	require.NoError(t, err)
	instID, err := store.CreateInstance("car1", nil)
	require.NoError(t, err)
	require.Equal(t, classID, instID)
	prop, err := store.CreateProperty("label", PropertyInstance)
	require.NoError(t, err)

	_, err = store.AssertTriple(InstanceRef(instID), prop, nil)
	require.NoError(t, err)

	// a triple about INSTANCE:1 does not hold CLASS:1 in place
	require.NoError(t, store.DeleteClass(classID))
	assert.True(t, IsReferenced(store.DeleteInstance(instID)))
}

func TestDeleteMissing(t *testing.T) {
	store := newTestStore(t)

	assert.True(t, IsNotFound(store.DeleteClass(1)))
	assert.True(t, IsNotFound(store.DeleteProperty(1)))
	assert.True(t, IsNotFound(store.DeleteInstance(1)))
	assert.True(t, IsNotFound(store.DeleteTerminal(1)))
	assert.True(t, IsNotFound(store.DeleteTriple(1)))
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	store := newTestStore(t)

	first, err := store.CreateClass("Vehicle")
	require.NoError(t, err)
	require.NoError(t, store.DeleteClass(first))
	second, err := store.CreateClass("Vehicle")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
