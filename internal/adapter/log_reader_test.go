package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

// These tests read the sample corpus under examples/voldemort.

var (
	exampleLog   = filepath.Join("..", "..", "examples", "voldemort", "mixed_revisions.txt")
	exampleDelta = filepath.Join("..", "..", "examples", "voldemort", "delta.txt")
)

func writeFile(t *testing.T, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))

	return path
}

func TestLocalLogReader_ReadRecords_Example(t *testing.T) {
	reader := NewLocalLogReader()

	records, rejects, err := reader.ReadRecords(exampleLog)
	require.NoError(t, err)

	require.Len(t, records, 13)
	assert.Equal(t, 16, records[0].MixID)
	assert.Equal(t, "8378cec", records[0].ParentID)
	assert.Equal(t, "d3867bf", records[0].ChildID)
	assert.Equal(t, 51, records[12].MixID)

	require.Len(t, rejects, 1)
	assert.Equal(t, 15, rejects[0].Line)
	assert.Equal(t, exampleLog, rejects[0].File)
	assert.Contains(t, rejects[0].Reason, m.ErrMalformedRecord.Error())
}

func TestLocalLogReader_ReadDeltas_Example(t *testing.T) {
	reader := NewLocalLogReader()

	index, rejects, err := reader.ReadDeltas(exampleDelta)
	require.NoError(t, err)

	assert.Equal(t, 5, index.Len())
	require.Len(t, rejects, 1)
	assert.Equal(t, 7, rejects[0].Line)

	delta, ok := index.Lookup(m.PairKey{ParentID: "8378cec", ChildID: "d3867bf"})
	require.True(t, ok)
	assert.Len(t, delta.Total, 3, "test file dropped from delta")

	for _, f := range delta.Total {
		assert.False(t, m.IsTestFile(f.Path))
	}
}

func TestLocalLogReader_ReadRecords_SkipsHeaderAndBlankLines(t *testing.T) {
	path := writeFile(t, "log.txt",
		"1;a;b;~x.java;1;0;T;1;1;1",
		"",
		"2;a;b;~y.java;1;0;T;1;1;1\r",
		"   ",
	)

	records, rejects, err := NewLocalLogReader().ReadRecords(path)
	require.NoError(t, err)

	require.Len(t, records, 1, "first line is a header even when it parses")
	assert.Equal(t, 2, records[0].MixID)
	assert.Equal(t, "1", records[0].ParentResult)
	assert.Empty(t, rejects)
}

func TestLocalLogReader_ReadDeltas_DuplicateKey(t *testing.T) {
	path := writeFile(t, "delta.txt",
		"parentID;childID;changedFiles",
		"p;c;~a.java",
		"p;c;~b.java",
	)

	index, rejects, err := NewLocalLogReader().ReadDeltas(path)
	require.NoError(t, err)

	assert.Equal(t, 1, index.Len())
	require.Len(t, rejects, 1)
	assert.Contains(t, rejects[0].Reason, reasonDuplicateDelta)

	delta, ok := index.Lookup(m.PairKey{ParentID: "p", ChildID: "c"})
	require.True(t, ok)
	assert.Equal(t, "a.java", delta.Total[0].Path)
}

func TestLocalLogReader_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	records, rejects, err := NewLocalLogReader().ReadRecords(path)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, rejects)
}

func TestLocalLogReader_MissingFile(t *testing.T) {
	reader := NewLocalLogReader()

	_, _, err := reader.ReadRecords(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = reader.ReadDeltas(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
