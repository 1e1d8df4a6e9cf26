package truthtable_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	table := generate(t, "A^B")

	var buf bytes.Buffer
	err := table.WriteCSV(&buf, "T", "F")
	require.NoError(t, err)

	assert.Equal(t, "A,B,Result\nF,F,F\nF,T,T\nT,F,T\nT,T,F\n", buf.String())
}

func TestWriteCSVFile(t *testing.T) {
	table := generate(t, "!x")
	path := filepath.Join(t.TempDir(), "table.csv")

	err := table.WriteCSVFile(path, "1", "0")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x,Result\n0,1\n1,0\n", string(content))
}
