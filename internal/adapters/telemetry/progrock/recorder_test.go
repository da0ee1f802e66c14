package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/babblewitz/internal/adapters/telemetry/progrock"
)

type captureWriter struct {
	mu      sync.Mutex
	updates []*vprogrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(u *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, u)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) vertexNames() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var names []string
	for _, u := range w.updates {
		for _, v := range u.Vertexes {
			names = append(names, v.Name)
		}
	}
	return names
}

func TestRecorder_RecordsVertices(t *testing.T) {
	w := &captureWriter{}
	rec := progrock.NewRecorder(w)

	_, vertex := rec.Record(context.Background(), "build jomini-tape")
	_, err := vertex.Stdout().Write([]byte("Compiling jomini\n"))
	require.NoError(t, err)
	vertex.Complete(errors.New("exit status 101"))

	_, cached := rec.Record(context.Background(), "build jomini-reader")
	cached.Cached()
	cached.Complete(nil)

	require.NoError(t, rec.Close())

	names := w.vertexNames()
	assert.Contains(t, names, "build jomini-tape")
	assert.Contains(t, names, "build jomini-reader")
	assert.True(t, w.closed)
}

func TestNew(t *testing.T) {
	rec := progrock.New()
	_, vertex := rec.Record(context.Background(), "step")
	vertex.Complete(nil)
	assert.NoError(t, rec.Close())
}
