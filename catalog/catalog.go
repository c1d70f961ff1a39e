// Package catalog records every file the scanner has seen in the
// importfiles table.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/denisenkom/go-mssqldb" // MSSQL driver
	_ "github.com/mattn/go-sqlite3"      // SQLite driver
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Entry is one row of importfiles.
type Entry struct {
	ID               int64     `json:"id"`
	Filename         string    `json:"filename"`
	IsDICOM          bool      `json:"isDicom"`
	PatientName      string    `json:"patientName"`
	PatientID        string    `json:"patientId"`
	InstitutionName  string    `json:"institutionName"`
	Modality         string    `json:"modality"`
	StudyInstanceUID string    `json:"studyInstanceUid"`
	SOPInstanceUID   string    `json:"sopInstanceUid"`
	AcquisitionDate  string    `json:"acquisitionDate"`
	Sent             bool      `json:"sent"`
	Status           string    `json:"status"`
	RunID            string    `json:"runId"`
	Imported         time.Time `json:"imported"`
}

type dialect struct {
	createTable string
	// placeholder returns the bind parameter for the n-th argument, from 1.
	placeholder func(n int) string
	// limit wraps a select of columns with a row limit bound to the n-th
	// argument.
	limit func(columns, rest string, n int) string
}

var dialects = map[string]dialect{
	"sqlserver": {
		createTable: `IF NOT EXISTS (
	SELECT * FROM sys.tables WHERE name = 'importfiles'
)
BEGIN
	CREATE TABLE importfiles (
		id INT IDENTITY(1,1) PRIMARY KEY,
		filename VARCHAR(1024) NOT NULL,
		isDICOM INT,
		PatientName NVARCHAR(255),
		PatientID NVARCHAR(255),
		InstitutionName NVARCHAR(255),
		Modality VARCHAR(16),
		StudyInstanceUID VARCHAR(64),
		SOPInstanceUID VARCHAR(64),
		AcquisitionDate VARCHAR(10),
		sent INT,
		status NVARCHAR(1024),
		runID VARCHAR(36),
		imported DATETIME
	);
END;`,
		placeholder: func(n int) string { return fmt.Sprintf("@p%d", n) },
		limit: func(cols, rest string, n int) string {
			return fmt.Sprintf("SELECT TOP (@p%d) %s %s", n, cols, rest)
		},
	},
	"sqlite3": {
		createTable: `CREATE TABLE IF NOT EXISTS importfiles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	filename TEXT NOT NULL,
	isDICOM INTEGER,
	PatientName TEXT,
	PatientID TEXT,
	InstitutionName TEXT,
	Modality TEXT,
	StudyInstanceUID TEXT,
	SOPInstanceUID TEXT,
	AcquisitionDate TEXT,
	sent INTEGER,
	status TEXT,
	runID TEXT,
	imported DATETIME
);`,
		placeholder: func(int) string { return "?" },
		limit: func(cols, rest string, _ int) string {
			return fmt.Sprintf("SELECT %s %s LIMIT ?", cols, rest)
		},
	},
}

const columns = `id, filename, isDICOM, PatientName, PatientID, InstitutionName, Modality,
	StudyInstanceUID, SOPInstanceUID, AcquisitionDate, sent, status, runID, imported`

// Store is safe for concurrent use.
type Store struct {
	db      *sql.DB
	dialect dialect
	log     logrus.FieldLogger
}

// Open connects with driver ("sqlserver" or "sqlite3") and dsn.
func Open(driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, errors.Errorf("unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s connection pool", driver)
	}
	if driver == "sqlite3" {
		db.SetMaxOpenConns(1)
	}
	return &Store{db: db, dialect: d, log: logrus.StandardLogger()}, nil
}

// Init creates the importfiles table when it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	s.log.Infof("'Init' initialising the database")
	if _, err := s.db.ExecContext(ctx, s.dialect.createTable); err != nil {
		return errors.Wrap(err, "failed to create table importfiles")
	}
	s.log.Infof("'Init' table 'importfiles' is ready")
	return nil
}

// Exists reports whether filename was catalogued before.
func (s *Store) Exists(ctx context.Context, filename string) (bool, error) {
	query := "SELECT COUNT(*) FROM importfiles WHERE filename = " + s.dialect.placeholder(1)
	var count int
	if err := s.db.QueryRowContext(ctx, query, filename).Scan(&count); err != nil {
		return false, errors.Wrapf(err, "failed to check %s", filename)
	}
	return count > 0, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Insert adds e. A zero Imported time is set to now.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	if e.Imported.IsZero() {
		e.Imported = time.Now().UTC()
	}
	names := []string{"filename", "isDICOM", "PatientName", "PatientID", "InstitutionName", "Modality",
		"StudyInstanceUID", "SOPInstanceUID", "AcquisitionDate", "sent", "status", "runID", "imported"}
	marks := make([]string, len(names))
	for i := range names {
		marks[i] = s.dialect.placeholder(i + 1)
	}
	query := fmt.Sprintf("INSERT INTO importfiles (%s) VALUES (%s)",
		strings.Join(names, ", "), strings.Join(marks, ", "))

	_, err := s.db.ExecContext(ctx, query,
		e.Filename, boolInt(e.IsDICOM), e.PatientName, e.PatientID, e.InstitutionName, e.Modality,
		e.StudyInstanceUID, e.SOPInstanceUID, e.AcquisitionDate, boolInt(e.Sent), e.Status, e.RunID, e.Imported)
	if err != nil {
		return errors.Wrapf(err, "failed to insert %s", e.Filename)
	}
	s.log.Debugf("'Insert' filename '%s' inserted", e.Filename)
	return nil
}

// List returns the most recently catalogued entries first, at most limit.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, errors.Errorf("limit must be positive, got %d", limit)
	}
	query := s.dialect.limit(columns, "FROM importfiles ORDER BY id DESC", 1)
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list importfiles")
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var isDICOM, sent int
		var text [9]sql.NullString
		if err := rows.Scan(&e.ID, &e.Filename, &isDICOM, &text[0], &text[1], &text[2], &text[3],
			&text[4], &text[5], &text[6], &sent, &text[7], &text[8], &e.Imported); err != nil {
			return nil, errors.Wrap(err, "failed to scan importfiles row")
		}
		e.IsDICOM = isDICOM != 0
		e.Sent = sent != 0
		for i, dst := range []*string{&e.PatientName, &e.PatientID, &e.InstitutionName, &e.Modality,
			&e.StudyInstanceUID, &e.SOPInstanceUID, &e.AcquisitionDate, &e.Status, &e.RunID} {
			*dst = text[i].String
		}
		entries = append(entries, e)
	}
	return entries, errors.Wrap(rows.Err(), "failed to iterate importfiles")
}

func (s *Store) Close() error {
	return s.db.Close()
}
