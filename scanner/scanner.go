// Package scanner walks a directory tree and catalogues every file in it,
// parsing the DICOM ones.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"godicom/catalog"
	"godicom/parser"
)

const (
	StatusAccepted       = "accepted"
	StatusWrongInstitute = "Not valid Institute"

	defaultMonitorInterval = 2 * time.Second
)

// Store is the part of the catalog the runner writes to.
type Store interface {
	Exists(ctx context.Context, filename string) (bool, error)
	Insert(ctx context.Context, e catalog.Entry) error
}

// Forwarder sends an accepted DICOM file on to a remote node.
type Forwarder interface {
	Forward(ctx context.Context, path string) (string, error)
}

type Runner struct {
	Root       string
	MaxWorkers int
	// InstituteFilter is a "|" separated list; a DICOM file is accepted
	// when its institution name contains any of them. Empty accepts all.
	InstituteFilter string
	Store           Store
	// Forwarder is optional. Accepted files are sent through it and the
	// outcome is kept in the catalog entry.
	Forwarder Forwarder
	// OnFile is called from worker goroutines after each file.
	OnFile func(path string)
	// Stats is allocated by Run when nil.
	Stats           *Stats
	MonitorInterval time.Duration
	Log             logrus.FieldLogger

	mu   sync.Mutex
	errs *multierror.Error
}

// CountFiles returns the number of regular files below root.
func CountFiles(root string) (int, error) {
	n := 0
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			n++
		}
		return nil
	})
	return n, errors.Wrapf(err, "failed to walk %s", root)
}

// Run catalogues every file below Root. Errors on single files do not stop
// the run; they are returned together once it is over.
func (r *Runner) Run(ctx context.Context) (Snapshot, error) {
	if r.Store == nil {
		return Snapshot{}, errors.New("runner has no store")
	}
	if r.Stats == nil {
		r.Stats = &Stats{}
	}
	if r.Log == nil {
		r.Log = logrus.StandardLogger()
	}
	workers := r.MaxWorkers
	if workers < 1 {
		workers = 1
	}

	runID := uuid.NewString()
	log := r.Log.WithField("run", runID)
	r.errs = nil
	r.Stats.start(runID, time.Now())
	log.Infof("'Run' starting filerunner in %s with %d workers", r.Root, workers)

	stopMonitor := r.monitor(log)
	defer stopMonitor()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	walkErr := filepath.WalkDir(r.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		r.Stats.Active.Add(1)
		g.Go(func() error {
			defer r.Stats.Active.Add(-1)
			if isArchive(path) {
				r.processArchive(gctx, log, runID, path)
			} else {
				r.processFile(gctx, log, runID, path, path)
			}
			if r.OnFile != nil {
				r.OnFile(path)
			}
			return nil
		})
		return nil
	})
	_ = g.Wait()
	r.Stats.finish(time.Now())

	if walkErr != nil {
		r.addErr(errors.Wrapf(walkErr, "failed to walk %s", r.Root))
	}
	snap := r.Stats.Snapshot()
	log.Infof("'Run' processed: %d files skipped already present, %d non DICOM files imported, %d DICOM files imported, %d wrong institute",
		snap.Skipped, snap.NonDICOM, snap.DICOM, snap.WrongInstitute)
	return snap, r.errs.ErrorOrNil()
}

func (r *Runner) monitor(log logrus.FieldLogger) func() {
	interval := r.MonitorInterval
	if interval <= 0 {
		interval = defaultMonitorInterval
	}
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				log.Debugf("'monitor' currently running goroutines: %d", r.Stats.Active.Load())
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}

func (r *Runner) addErr(err error) {
	r.Stats.Failed.Add(1)
	r.mu.Lock()
	r.errs = multierror.Append(r.errs, err)
	r.mu.Unlock()
}

// accepts applies InstituteFilter to institution.
func (r *Runner) accepts(institution string) bool {
	filtered := false
	for _, filter := range strings.Split(r.InstituteFilter, "|") {
		filter = strings.TrimSpace(filter)
		if filter == "" {
			continue
		}
		filtered = true
		if strings.Contains(institution, filter) {
			return true
		}
	}
	return !filtered
}

// processFile catalogues path under name, the two differing for archive
// entries.
func (r *Runner) processFile(ctx context.Context, log logrus.FieldLogger, runID, path, name string) {
	exists, err := r.Store.Exists(ctx, name)
	if err != nil {
		r.addErr(err)
		return
	}
	if exists {
		r.Stats.Skipped.Add(1)
		return
	}

	entry := catalog.Entry{Filename: name, RunID: runID}
	p := parser.New(parser.WithLogger(log))
	if err := p.Open(path); err != nil {
		log.Debugf("'processFile' %s is no DICOM file: %v", name, err)
		entry.Status = errors.Cause(err).Error()
		if err := r.Store.Insert(ctx, entry); err != nil {
			r.addErr(err)
			return
		}
		r.Stats.NonDICOM.Add(1)
		return
	}
	defer p.Close()

	entry.IsDICOM = true
	entry.PatientName = p.PatientName()
	entry.PatientID = p.PatientID()
	entry.InstitutionName = p.InstitutionName()
	entry.Modality = p.AcquisitionModality()
	entry.StudyInstanceUID = p.StudyInstanceUID()
	entry.SOPInstanceUID = p.SOPInstanceUID()
	entry.AcquisitionDate = p.AcquisitionDate()

	accepted := r.accepts(entry.InstitutionName)
	if accepted {
		entry.Status = StatusAccepted
		if r.Forwarder != nil {
			r.forward(ctx, log, path, &entry)
		}
	} else {
		entry.Status = StatusWrongInstitute
	}
	if err := r.Store.Insert(ctx, entry); err != nil {
		r.addErr(err)
		return
	}
	if accepted {
		r.Stats.DICOM.Add(1)
	} else {
		r.Stats.WrongInstitute.Add(1)
	}
}

func (r *Runner) forward(ctx context.Context, log logrus.FieldLogger, path string, entry *catalog.Entry) {
	status, err := r.Forwarder.Forward(ctx, path)
	if err != nil {
		log.Warnf("'forward' %v", err)
		entry.Status = errors.Cause(err).Error()
		r.Stats.ForwardFailed.Add(1)
		return
	}
	entry.Sent = true
	entry.Status = status
	r.Stats.Forwarded.Add(1)
}

// processArchive extracts an archive into a temporary directory and
// catalogues its entries as "archive/entry".
func (r *Runner) processArchive(ctx context.Context, log logrus.FieldLogger, runID, path string) {
	dir, err := os.MkdirTemp("", "godicom-archive-")
	if err != nil {
		r.addErr(errors.Wrap(err, "failed to create extraction directory"))
		return
	}
	defer os.RemoveAll(dir)

	files, err := ExtractArchive(path, dir)
	if err != nil {
		r.addErr(err)
		return
	}
	log.Debugf("'processArchive' extracted %d files from %s", len(files), path)
	for _, f := range files {
		if ctx.Err() != nil {
			return
		}
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			r.addErr(err)
			continue
		}
		r.processFile(ctx, log, runID, f, filepath.Join(path, rel))
	}
	r.Stats.Archives.Add(1)
}
