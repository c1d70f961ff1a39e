package forward

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorer struct {
	files   []string
	timeout int
	err     error
}

func (f *fakeStorer) StoreSCU(fileName string, timeout int) error {
	f.files = append(f.files, fileName)
	f.timeout = timeout
	return f.err
}

func TestNewValidates(t *testing.T) {
	_, err := New(Destination{Port: 104, CalledAE: "PACS", CallingAE: "GODICOM"})
	assert.Error(t, err)
	_, err = New(Destination{Host: "pacs", CalledAE: "PACS", CallingAE: "GODICOM"})
	assert.Error(t, err)
	_, err = New(Destination{Host: "pacs", Port: 104})
	assert.Error(t, err)

	scu, err := New(Destination{Host: "pacs", Port: 104, CalledAE: "PACS", CallingAE: "GODICOM"})
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, scu.dest.Timeout)
}

func TestForward(t *testing.T) {
	fake := &fakeStorer{}
	scu := &SCU{
		dest: Destination{Host: "pacs", Port: 104, CalledAE: "PACS", CallingAE: "GODICOM", Timeout: 5},
		scu:  fake,
		log:  logrus.New(),
	}

	status, err := scu.Forward(context.Background(), "/data/a.dcm")
	require.NoError(t, err)
	assert.Equal(t, "sent to PACS@pacs:104", status)
	assert.Equal(t, []string{"/data/a.dcm"}, fake.files)
	assert.Equal(t, 5, fake.timeout)

	fake.err = errors.New("association rejected")
	_, err = scu.Forward(context.Background(), "/data/b.dcm")
	assert.ErrorContains(t, err, "association rejected")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = scu.Forward(ctx, "/data/c.dcm")
	assert.Error(t, err)
	assert.Len(t, fake.files, 2)
}
