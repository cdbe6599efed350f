package semgraph

import (
	"encoding/json"
	"testing"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRejectsInvalidUTF8(t *testing.T) {
	store := newTestStore(t)

	cases := []struct {
		name   string
		create func() error
		field  string
		count  func() (int, error)
	}{
		{
			name: "class name",
			create: func() error {
				_, err := store.CreateClass("caf\xe9")
				return err
			},
			field: "name",
			count: func() (int, error) {
				all, err := store.Classes()
				return len(all), err
			},
		},
		{
			name: "property name",
			create: func() error {
				_, err := store.CreateProperty("we\xffight", PropertyInstance)
				return err
			},
			field: "name",
			count: func() (int, error) {
				all, err := store.Properties()
				return len(all), err
			},
		},
		{
			name: "instance name",
			create: func() error {
				_, err := store.CreateInstance("car\x80", nil)
				return err
			},
			field: "name",
			count: func() (int, error) {
				all, err := store.Instances()
				return len(all), err
			},
		},
		{
			name: "terminal value",
			create: func() error {
				_, err := store.CreateTerminal("\xff\xfe", "kg")
				return err
			},
			field: "value",
			count: func() (int, error) {
				all, err := store.Terminals()
				return len(all), err
			},
		},
		{
			name: "terminal unit",
			create: func() error {
				_, err := store.CreateTerminal("1200", "k\xc3")
				return err
			},
			field: "unit",
			count: func() (int, error) {
				all, err := store.Terminals()
				return len(all), err
			},
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.create()
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err))
			invalid, ok := errors.Cause(err).(*InvalidArgumentError)
			require.True(t, ok)
			assert.Equal(t, testCase.field, invalid.Field)

			count, err := testCase.count()
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestNonASCIITextRoundTrips(t *testing.T) {
	store := newTestStore(t)

	classID, err := store.CreateClass("Café ☕")
	require.NoError(t, err)
	class, err := store.GetClass(classID)
	require.NoError(t, err)
	assert.Equal(t, "Café ☕", class.Name)

	terminalID, err := store.CreateTerminal("  12,5 ", "µm")
	require.NoError(t, err)
	terminal, err := store.GetTerminal(terminalID)
	require.NoError(t, err)
	assert.Equal(t, &Terminal{ID: terminalID, Value: "  12,5 ", Unit: "µm"}, terminal)
}

func TestDecodeKeepsCause(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreateClass("Vehicle")
	require.NoError(t, err)
	// corrupt the stored record behind the store's back
	require.NoError(t, store.boltDB.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(classes.bucket).Put(encodeID(id), []byte("{not json"))
	}))

	_, err = store.GetClass(id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class 1: decoding record")
	_, isSyntax := errors.Cause(err).(*json.SyntaxError)
	assert.True(t, isSyntax)
}
