// Package forward sends accepted DICOM files to a remote storage SCP with
// C-STORE.
package forward

import (
	"context"
	"fmt"

	"github.com/one-byte-data/obd-dicom/network"
	"github.com/one-byte-data/obd-dicom/services"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout is the association timeout in seconds.
const DefaultTimeout = 30

type Destination struct {
	Host      string
	Port      int
	CalledAE  string
	CallingAE string
	Timeout   int
}

func (d Destination) String() string {
	return fmt.Sprintf("%s@%s:%d", d.CalledAE, d.Host, d.Port)
}

// storer is the C-STORE part of services.SCU.
type storer interface {
	StoreSCU(fileName string, timeout int) error
}

// SCU forwards files to one destination.
type SCU struct {
	dest Destination
	scu  storer
	log  logrus.FieldLogger
}

func New(dest Destination) (*SCU, error) {
	if dest.Host == "" || dest.Port <= 0 {
		return nil, errors.Errorf("invalid destination %s", dest)
	}
	if dest.CalledAE == "" || dest.CallingAE == "" {
		return nil, errors.New("called and calling AE titles are required")
	}
	if dest.Timeout <= 0 {
		dest.Timeout = DefaultTimeout
	}
	scu := services.NewSCU(&network.Destination{
		Name:      dest.CalledAE,
		CalledAE:  dest.CalledAE,
		CallingAE: dest.CallingAE,
		HostName:  dest.Host,
		Port:      dest.Port,
		IsCStore:  true,
	})
	return &SCU{dest: dest, scu: scu, log: logrus.StandardLogger()}, nil
}

// Forward stores path on the destination and returns a status line for the
// catalog. ctx is only checked before the association is opened; a store in
// progress runs until it completes or Timeout expires.
func (s *SCU) Forward(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.scu.StoreSCU(path, s.dest.Timeout); err != nil {
		return "", errors.Wrapf(err, "failed to send %s to %s", path, s.dest)
	}
	s.log.Debugf("'Forward' %s sent to %s", path, s.dest)
	return "sent to " + s.dest.String(), nil
}
