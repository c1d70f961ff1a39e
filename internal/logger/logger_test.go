package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	require.NoError(t, Configure(log, Options{DisableColor: true}))

	log.WithField("file", "a.dcm").Infof("'scan' parsed %d tags", 3)
	out := buf.String()
	assert.Contains(t, out, "[INFO] 'scan' parsed 3 tags file=a.dcm")

	buf.Reset()
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestVerbose(t *testing.T) {
	log := logrus.New()
	require.NoError(t, Configure(log, Options{Verbose: true}))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestFileHook(t *testing.T) {
	dir := t.TempDir()
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	require.NoError(t, Configure(log, Options{Dir: dir, DisableColor: true}))

	log.Info("written to disk")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to disk")
}
