package progrock_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/toysetup/internal/adapters/telemetry/progrock"
	"go.trai.ch/toysetup/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New(new(bytes.Buffer))
	assert.NotNil(t, recorder)
}

func TestRecorder_RecordStoresVertexInContext(t *testing.T) {
	tape := vprogrock.NewTape()
	recorder := progrock.NewRecorder(tape)

	ctx, vertex := recorder.Record(context.Background(), "apt-get update")
	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, got)

	// Steps with the same name get distinct vertices.
	_, again := recorder.Record(context.Background(), "apt-get update")
	assert.NotSame(t, vertex, again)

	vertex.Complete(nil)
	again.Cached()
	again.Complete(nil)

	vertices := tape.Vertices()
	require.Len(t, vertices, 2)
	assert.Equal(t, "apt-get update", vertices[0].GetName())
	assert.Equal(t, "apt-get update", vertices[1].GetName())
	assert.NotEqual(t, vertices[0].GetId(), vertices[1].GetId())
	assert.False(t, vertices[0].GetCached())
	assert.True(t, vertices[1].GetCached())
	assert.NotNil(t, vertices[0].GetCompleted())
}
