package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	v := map[string]int{"count": 2}

	var buf bytes.Buffer
	done, err := Print(&buf, "json", v)
	require.NoError(t, err)
	assert.True(t, done)
	assert.JSONEq(t, `{"count": 2}`, buf.String())

	buf.Reset()
	done, err = Print(&buf, "yaml", v)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "count: 2\n", buf.String())

	buf.Reset()
	done, err = Print(&buf, "", v)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Empty(t, buf.String())

	_, err = Print(&buf, "xml", v)
	assert.Error(t, err)
}
