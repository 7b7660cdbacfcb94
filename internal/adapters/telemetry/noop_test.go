package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phaer/pip/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, vertex := tel.Record(context.Background(), "simplewheel 2.0")
	require.NotNil(t, ctx)
	require.NotNil(t, vertex)

	n, err := vertex.Write([]byte("progress"))
	require.NoError(t, err)
	assert.Equal(t, len("progress"), n)

	vertex.Cached()
	vertex.Complete(errors.New("ignored"))

	require.NoError(t, tel.Close())
}
