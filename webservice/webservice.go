// Package webservice reports the state of the file runner over HTTP.
package webservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"godicom/catalog"
	"godicom/scanner"
)

const (
	defaultListLimit = 50
	maxListLimit     = 1000
)

// Lister is the read side of the catalog.
type Lister interface {
	List(ctx context.Context, limit int) ([]catalog.Entry, error)
}

type Service struct {
	Root  string
	Stats *scanner.Stats
	// Files may be nil, in which case /api/files answers 503.
	Files   Lister
	Started time.Time
	Log     logrus.FieldLogger
}

func New(root string, stats *scanner.Stats, files Lister) *Service {
	if stats == nil {
		stats = &scanner.Stats{}
	}
	return &Service{
		Root:    root,
		Stats:   stats,
		Files:   files,
		Started: time.Now(),
		Log:     logrus.StandardLogger(),
	}
}

func (s *Service) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/status", s.StatusHandler).Methods(http.MethodGet)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stats", s.StatsHandler).Methods(http.MethodGet)
	api.HandleFunc("/files", s.FilesHandler).Methods(http.MethodGet)
	return r
}

// formatDuration renders d as "1 D, 2 H, 3 M, 4 S".
func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%d D, %d H, %d M, %d S", days, hours, minutes, seconds)
}

func (s *Service) HomeHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.Stats.Snapshot()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "Main Page\n")
	fmt.Fprintf(w, "Server start time: %s\n", s.Started.Format(time.RFC3339))
	fmt.Fprintf(w, "Processing folder: %s\n", s.Root)
	fmt.Fprintf(w, "Programm running since (days, hours, minutes, seconds): %s\n", formatDuration(time.Since(s.Started)))
	fmt.Fprintf(w, "Filerunner running status: %t\n", snap.Running)
	if snap.RunID != "" {
		fmt.Fprintf(w, "Filerunner run: %s\n", snap.RunID)
	}
	if !snap.Running && !snap.Finished.IsZero() {
		fmt.Fprintf(w, "Filerunner finished at: %s\n", snap.Finished.Format(time.RFC3339))
		fmt.Fprintf(w, "Filerunner was running for (days, hours, minutes, seconds): %s\n", formatDuration(snap.Finished.Sub(snap.Started)))
	}
	fmt.Fprintf(w, "activeGoroutines: %d\n", snap.Active)
	fmt.Fprintf(w, "cFilesSkippedAlreadyProcessed: %d\n", snap.Skipped)
	fmt.Fprintf(w, "cFilesTarProcessed: %d\n", snap.Archives)
	fmt.Fprintf(w, "cFilesImportedDCMToDB: %d\n", snap.DICOM)
	fmt.Fprintf(w, "cFilesSkippedWrongInstitute: %d\n", snap.WrongInstitute)
	fmt.Fprintf(w, "cFilesImportedNoDCMToDB: %d\n", snap.NonDICOM)
	fmt.Fprintf(w, "cFilesFailed: %d\n", snap.Failed)
	fmt.Fprintf(w, "cFilesSentToDicomServer: %d\n", snap.Forwarded)
	fmt.Fprintf(w, "cFilesSendFailed: %d\n", snap.ForwardFailed)
}

func (s *Service) StatusHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Hello Status")
}

func (s *Service) StatsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Stats.Snapshot())
}

func (s *Service) FilesHandler(w http.ResponseWriter, r *http.Request) {
	if s.Files == nil {
		http.Error(w, "catalog not available", http.StatusServiceUnavailable)
		return
	}
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		limit = n
	}
	entries, err := s.Files.List(r.Context(), limit)
	if err != nil {
		s.Log.Errorf("'FilesHandler' %v", err)
		http.Error(w, "failed to list catalog", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Errorf("'writeJSON' %v", err)
	}
}

// ListenAndServe serves the router on addr until ctx is cancelled.
func (s *Service) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Handler:      s.Router(),
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.Log.Infof("'ListenAndServe' starting webservice at: %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrapf(err, "webservice on %s stopped", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "failed to shut down webservice")
		}
		return nil
	}
}
