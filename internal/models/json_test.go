package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	var fromString StringList
	require.NoError(t, fromString.Scan(`["c"]`))
	assert.Equal(t, StringList{"c"}, fromString)

	var fromNil StringList
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	var bad StringList
	assert.Error(t, bad.Scan(42))
}

func TestStringListValueNil(t *testing.T) {
	var l StringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestStringMapScan(t *testing.T) {
	var m StringMap
	require.NoError(t, m.Scan([]byte(`{"ram":"8GB"}`)))
	assert.Equal(t, StringMap{"ram": "8GB"}, m)
}

func TestStringMapValueNil(t *testing.T) {
	var m StringMap
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)
}
