package writer

import (
	"github.com/pkg/errors"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Anonymizer overwrites, empties and removes attributes of a dataset in
// place.
type Anonymizer struct {
	ds *dicom.Dataset
}

func NewAnonymizer(ds *dicom.Dataset) *Anonymizer {
	return &Anonymizer{ds: ds}
}

// Replace sets the string values of t. An attribute that is not present is
// inserted keeping the dataset in tag order.
func (a *Anonymizer) Replace(t tag.Tag, values ...string) error {
	if a.ds == nil {
		return errors.New("anonymizer has no dataset")
	}
	if values == nil {
		values = []string{}
	}
	if i := a.index(t); i >= 0 {
		v, err := dicom.NewValue(values)
		if err != nil {
			return errors.Wrapf(err, "failed to build value for %s", t)
		}
		a.ds.Elements[i].Value = v
		return nil
	}

	elem, err := dicom.NewElement(t, values)
	if err != nil {
		return errors.Wrapf(err, "failed to build element %s", t)
	}
	a.insert(elem)
	return nil
}

// Empty keeps t but clears its value.
func (a *Anonymizer) Empty(t tag.Tag) error {
	return a.Replace(t)
}

// Remove drops t and reports whether it was present.
func (a *Anonymizer) Remove(t tag.Tag) bool {
	if a.ds == nil {
		return false
	}
	i := a.index(t)
	if i < 0 {
		return false
	}
	a.ds.Elements = append(a.ds.Elements[:i], a.ds.Elements[i+1:]...)
	return true
}

func (a *Anonymizer) index(t tag.Tag) int {
	for i, elem := range a.ds.Elements {
		if elem.Tag == t {
			return i
		}
	}
	return -1
}

func (a *Anonymizer) insert(elem *dicom.Element) {
	key := tagOrder(elem.Tag)
	at := len(a.ds.Elements)
	for i, e := range a.ds.Elements {
		if tagOrder(e.Tag) > key {
			at = i
			break
		}
	}
	a.ds.Elements = append(a.ds.Elements, nil)
	copy(a.ds.Elements[at+1:], a.ds.Elements[at:])
	a.ds.Elements[at] = elem
}

func tagOrder(t tag.Tag) uint32 {
	return uint32(t.Group)<<16 | uint32(t.Element)
}
