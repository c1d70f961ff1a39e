package webservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godicom/catalog"
	"godicom/scanner"
)

type fakeLister struct {
	entries []catalog.Entry
	err     error
	limit   int
}

func (f *fakeLister) List(_ context.Context, limit int) ([]catalog.Entry, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.entries) {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func serve(t *testing.T, s *Service, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHome(t *testing.T) {
	stats := &scanner.Stats{}
	stats.DICOM.Add(3)
	stats.Skipped.Add(2)
	s := New("/srv/incoming", stats, nil)

	rec := serve(t, s, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Processing folder: /srv/incoming")
	assert.Contains(t, body, "Filerunner running status: false")
	assert.Contains(t, body, "cFilesImportedDCMToDB: 3")
	assert.Contains(t, body, "cFilesSkippedAlreadyProcessed: 2")
}

func TestStatus(t *testing.T) {
	rec := serve(t, New("", nil, nil), "/status")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello Status", rec.Body.String())
}

func TestStats(t *testing.T) {
	stats := &scanner.Stats{}
	stats.NonDICOM.Add(5)
	rec := serve(t, New("", stats, nil), "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap scanner.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, int64(5), snap.NonDICOM)
}

func TestFiles(t *testing.T) {
	lister := &fakeLister{entries: []catalog.Entry{
		{ID: 2, Filename: "/b.dcm", IsDICOM: true},
		{ID: 1, Filename: "/a.txt"},
	}}
	s := New("", nil, lister)

	rec := serve(t, s, "/api/files?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "/b.dcm", entries[0].Filename)

	serve(t, s, "/api/files")
	assert.Equal(t, defaultListLimit, lister.limit)

	serve(t, s, "/api/files?limit=100000")
	assert.Equal(t, maxListLimit, lister.limit)

	assert.Equal(t, http.StatusBadRequest, serve(t, s, "/api/files?limit=abc").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, s, "/api/files?limit=0").Code)

	lister.err = errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, serve(t, s, "/api/files").Code)

	assert.Equal(t, http.StatusServiceUnavailable, serve(t, New("", nil, nil), "/api/files").Code)
}

func TestFormatDuration(t *testing.T) {
	d := 26*time.Hour + 3*time.Minute + 4*time.Second
	assert.Equal(t, "1 D, 2 H, 3 M, 4 S", formatDuration(d))
}

func TestListenAndServeShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New("", nil, nil).ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("webservice did not shut down")
	}
}
