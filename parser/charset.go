package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// DefaultEncoding is assumed when a file carries no Specific Character Set.
const DefaultEncoding = "ISO_IR 100"

// labelByTerm maps Specific Character Set defined terms to charset labels.
// See http://dicom.nema.org/medical/dicom/current/output/chtml/part02/sect_D.6.2.html
var labelByTerm = map[string]string{
	"ISO_IR 6":   "us-ascii",
	"ISO_IR 100": "iso-ir-100",
	"ISO_IR 101": "iso-ir-101",
	"ISO_IR 109": "iso-ir-109",
	"ISO_IR 110": "iso-ir-110",
	"ISO_IR 144": "iso-ir-144",
	"ISO_IR 127": "iso-ir-127",
	"ISO_IR 126": "iso-ir-126",
	"ISO_IR 138": "iso-ir-138",
	"ISO_IR 148": "iso-ir-148",
	"ISO_IR 13":  "shift-jis",
	"ISO_IR 166": "tis-620",
	"ISO_IR 192": "utf-8",
	"GB18030":    "gb18030",
	"GBK":        "gbk",

	"ISO 2022 IR 6":   "us-ascii",
	"ISO 2022 IR 100": "iso-ir-100",
	"ISO 2022 IR 101": "iso-ir-101",
	"ISO 2022 IR 109": "iso-ir-109",
	"ISO 2022 IR 110": "iso-ir-110",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO 2022 IR 13":  "shift-jis",
	"ISO 2022 IR 166": "tis-620",
	"ISO 2022 IR 87":  "iso-2022-jp",
	"ISO 2022 IR 159": "iso-2022-jp",
	"ISO 2022 IR 149": "iso-ir-149",
}

// firstTerm returns the first non-empty defined term of a possibly
// multi-valued Specific Character Set. Code extension files leave the
// first value empty, as in `\ISO 2022 IR 87`.
func firstTerm(v string) string {
	for _, term := range SplitValues(v) {
		if term = strings.TrimSpace(term); term != "" {
			return term
		}
	}
	return ""
}

// lookupEncoding resolves a defined term to a decoder. Only the first
// non-empty value of a multi-valued character set is honoured.
func lookupEncoding(term string) (encoding.Encoding, error) {
	term = firstTerm(term)
	if term == "" {
		term = DefaultEncoding
	}
	label, ok := labelByTerm[term]
	if !ok {
		return nil, errors.Errorf("specific character set defined term not found: %v", term)
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return nil, errors.Errorf("missing encoding for label %q", label)
	}
	return enc, nil
}

// decodeString converts s from enc to UTF-8. Strings that are already
// valid UTF-8 were decoded by the codec and are returned unchanged.
func decodeString(enc encoding.Encoding, s string) string {
	if enc == nil || utf8.ValidString(s) {
		return s
	}
	out, err := enc.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}
