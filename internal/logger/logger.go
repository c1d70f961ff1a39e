// Package logger configures the process wide logrus logger.
package logger

import (
	"bytes"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const (
	logFileName     = "godicom.log"
	timestampFormat = "2006-01-02 15:04:05"
)

type Options struct {
	// Verbose switches to debug level.
	Verbose      bool
	DisableColor bool
	// Dir receives a daily rotated log file when set.
	Dir string
}

func Init(opts Options) error {
	return Configure(logrus.StandardLogger(), opts)
}

// Configure applies opts to log.
func Configure(log *logrus.Logger, opts Options) error {
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	log.SetFormatter(&Formatter{DisableColor: opts.DisableColor})

	if opts.Dir == "" {
		return nil
	}
	hook, err := NewFileHook(opts.Dir)
	if err != nil {
		return errors.Wrap(err, "failed to init log file hook")
	}
	log.AddHook(hook)
	return nil
}

// NewFileHook writes every entry to dir/godicom.log, rotated daily.
func NewFileHook(dir string) (logrus.Hook, error) {
	path := filepath.Join(dir, logFileName)
	writer, err := rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}

	return lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.TextFormatter{
		DisableColors:   true,
		TimestampFormat: timestampFormat,
		CallerPrettyfier: func(frame *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		},
	}), nil
}

// Formatter prints "time [LEVEL] message key=value ...", colored by level.
type Formatter struct {
	DisableColor bool
}

func levelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return 37
	case logrus.WarnLevel:
		return 33
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return 31
	}
	return 36
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	line := fmt.Sprintf("[%s] %s", strings.ToUpper(entry.Level.String()), entry.Message)
	for _, key := range sortedKeys(entry.Data) {
		line += fmt.Sprintf(" %s=%v", key, entry.Data[key])
	}

	b.WriteString(entry.Time.Format(timestampFormat))
	b.WriteByte(' ')
	if f.DisableColor {
		b.WriteString(line)
	} else {
		fmt.Fprintf(b, "\033[%dm%s\033[0m", levelColor(entry.Level), line)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
