// Package parser reads DICOM attributes from a decoded dataset and
// normalizes them into typed Go values.
//
// A Parser holds one file at a time. Getters look the tag up on every call
// and fall back to a documented default when the tag is absent or its value
// cannot be parsed; Lookup exposes the raw value together with an error for
// callers that need to tell those cases apart.
package parser

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
	"golang.org/x/text/encoding"
)

var (
	ErrNotOpen          = errors.New("no dicom file is open")
	ErrTagNotFound      = errors.New("tag not found")
	ErrUnsupportedValue = errors.New("value cannot be rendered as text")
)

const (
	// DefaultWindowPreset selects which window center/width pair is
	// returned when a file carries several alternatives.
	DefaultWindowPreset = 0

	DefaultWindowLevel = 300.0
	DefaultWindowWidth = 2000.0
)

type Option func(*Parser)

// WithWindowPreset selects the window center/width pair index.
func WithWindowPreset(preset int) Option {
	return func(p *Parser) { p.preset = preset }
}

// WithPixelData makes Open decode pixel data as well as metadata.
func WithPixelData(read bool) Option {
	return func(p *Parser) { p.pixelData = read }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Parser) { p.log = log }
}

// Parser is not safe for concurrent use.
type Parser struct {
	filename  string
	ds        dicom.Dataset
	open      bool
	enc       encoding.Encoding
	preset    int
	pixelData bool
	log       logrus.FieldLogger
}

func New(opts ...Option) *Parser {
	p := &Parser{
		preset: DefaultWindowPreset,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromDataset wraps a dataset that was decoded elsewhere.
func NewFromDataset(ds dicom.Dataset, filename string, opts ...Option) *Parser {
	p := New(opts...)
	p.attach(ds, filename)
	return p
}

// SetFileName opens filename and reports whether it could be parsed.
func (p *Parser) SetFileName(filename string) bool {
	if err := p.Open(filename); err != nil {
		p.log.Debugf("'SetFileName' %v", err)
		return false
	}
	return true
}

// Open parses filename, replacing whatever dataset was held before.
func (p *Parser) Open(filename string) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", filename)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", abs)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("%s is not a regular file", abs)
	}

	var parseOpts []dicom.ParseOption
	if !p.pixelData {
		parseOpts = append(parseOpts, dicom.SkipPixelData())
	}
	ds, err := dicom.ParseFile(abs, nil, parseOpts...)
	if err != nil {
		return errors.Wrapf(err, "failed to parse dicom file %s", abs)
	}
	p.attach(ds, abs)
	return nil
}

func (p *Parser) attach(ds dicom.Dataset, filename string) {
	p.ds = ds
	p.filename = filename
	p.open = true

	enc, err := lookupEncoding(p.Encoding())
	if err != nil {
		p.log.Debugf("'attach' %s: %v, falling back to %s", filename, err, DefaultEncoding)
		enc, _ = lookupEncoding(DefaultEncoding)
	}
	p.enc = enc
}

// Close drops the dataset.
func (p *Parser) Close() {
	p.ds = dicom.Dataset{}
	p.filename = ""
	p.open = false
	p.enc = nil
}

func (p *Parser) FileName() string {
	return p.filename
}

func (p *Parser) Dataset() dicom.Dataset {
	return p.ds
}

// Lookup returns the value of t rendered as text, with multiple values
// joined by a backslash.
func (p *Parser) Lookup(t tag.Tag) (string, error) {
	if !p.open {
		return "", ErrNotOpen
	}
	elem, err := p.ds.FindElementByTag(t)
	if err != nil || elem == nil || elem.Value == nil {
		return "", errors.Wrapf(ErrTagNotFound, "%s", t)
	}

	switch elem.Value.ValueType() {
	case dicom.Strings:
		raw, _ := elem.Value.GetValue().([]string)
		values := make([]string, len(raw))
		for i, v := range raw {
			values[i] = strings.Trim(v, " \x00")
		}
		return strings.Join(values, ValueDelimiter), nil
	case dicom.Ints:
		ints, _ := elem.Value.GetValue().([]int)
		values := make([]string, len(ints))
		for i, v := range ints {
			values[i] = strconv.Itoa(v)
		}
		return strings.Join(values, ValueDelimiter), nil
	case dicom.Floats:
		floats, _ := elem.Value.GetValue().([]float64)
		values := make([]string, len(floats))
		for i, v := range floats {
			values[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return strings.Join(values, ValueDelimiter), nil
	}
	return "", errors.Wrapf(ErrUnsupportedValue, "%s", t)
}

// str returns the raw value of t, or "" when it is absent or empty.
func (p *Parser) str(t tag.Tag) string {
	v, err := p.Lookup(t)
	if err != nil {
		return ""
	}
	return v
}

func (p *Parser) decoded(t tag.Tag) string {
	return decodeString(p.enc, p.str(t))
}

func (p *Parser) integer(t tag.Tag) (int, bool) {
	raw := p.str(t)
	if raw == "" {
		return 0, false
	}
	n, err := parseInt(SplitValues(raw)[0])
	if err != nil {
		p.log.Debugf("'integer' %s in %s: %v", t, p.filename, err)
		return 0, false
	}
	return n, true
}

func (p *Parser) float(t tag.Tag) (float64, bool) {
	raw := p.str(t)
	if raw == "" {
		return 0, false
	}
	f, err := parseFloat(SplitValues(raw)[0])
	if err != nil {
		p.log.Debugf("'float' %s in %s: %v", t, p.filename, err)
		return 0, false
	}
	return f, true
}

func (p *Parser) floats(t tag.Tag) ([]float64, bool) {
	raw := p.str(t)
	if raw == "" {
		return nil, false
	}
	values, err := ParseFloats(raw)
	if err != nil {
		p.log.Debugf("'floats' %s in %s: %v", t, p.filename, err)
		return nil, false
	}
	return values, true
}

// Encoding returns the Specific Character Set (0008,0005) defined term in
// use, the first non-empty one when the tag is multi-valued. Files mangled
// by some anonymizers carry a "Loaded:..." value instead, which is treated
// like an absent tag.
func (p *Parser) Encoding() string {
	v := firstTerm(p.str(tagSpecificCharacterSet))
	if v == "" || v == "None" || strings.HasPrefix(v, "Loaded:") {
		return DefaultEncoding
	}
	return v
}
