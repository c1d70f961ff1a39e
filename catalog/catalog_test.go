package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite3", filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Init(context.Background()))
	return s
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("postgres", "")
	assert.Error(t, err)
}

func TestInitIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Init(context.Background()))
}

func TestInsertExistsList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	exists, err := s.Exists(ctx, "/data/a.dcm")
	require.NoError(t, err)
	assert.False(t, exists)

	imported := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Insert(ctx, Entry{
		Filename:         "/data/a.dcm",
		IsDICOM:          true,
		PatientName:      "O'Brien^Pat",
		PatientID:        "P1",
		InstitutionName:  "General Hospital",
		Modality:         "CT",
		StudyInstanceUID: "1.2.3",
		SOPInstanceUID:   "1.2.3.4",
		AcquisitionDate:  "15/03/2020",
		Status:           "accepted",
		RunID:            "run-1",
		Imported:         imported,
	}))
	require.NoError(t, s.Insert(ctx, Entry{Filename: "/data/notes.txt", RunID: "run-1"}))

	exists, err = s.Exists(ctx, "/data/a.dcm")
	require.NoError(t, err)
	assert.True(t, exists)

	entries, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "/data/notes.txt", entries[0].Filename)
	assert.False(t, entries[0].IsDICOM)
	assert.False(t, entries[0].Imported.IsZero())

	a := entries[1]
	assert.True(t, a.IsDICOM)
	assert.Equal(t, "O'Brien^Pat", a.PatientName)
	assert.Equal(t, "CT", a.Modality)
	assert.Equal(t, "accepted", a.Status)
	assert.True(t, imported.Equal(a.Imported))

	entries, err = s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = s.List(ctx, 0)
	assert.Error(t, err)
}

func TestSQLServerDialect(t *testing.T) {
	d := dialects["sqlserver"]
	assert.Equal(t, "@p3", d.placeholder(3))
	assert.Equal(t, "SELECT TOP (@p1) id FROM importfiles", d.limit("id", "FROM importfiles", 1))
}
