// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/bauer/batch"
	"github.com/katalvlaran/bauer/completion"
	"github.com/katalvlaran/bauer/lpoly"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func inputs(n int) []lpoly.Poly {
	out := make([]lpoly.Poly, n)
	for i := range out {
		c := 0.05 * float64(i%10)
		out[i] = lpoly.New([]float64{0.3, c, -0.1}, 0)
	}

	return out
}

func TestComplete_PreservesOrder(t *testing.T) {
	in := inputs(40)
	got, err := batch.Complete(context.Background(), in, batch.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, got, len(in))

	for i, p := range in {
		want, err := completion.FromBauer(p)
		require.NoError(t, err)
		assert.Equal(t, want.B.Coefs(), got[i].B.Coefs(), "input %d", i)
		assert.Equal(t, p.Coefs(), got[i].A.Coefs(), "input %d", i)
	}
}

func TestComplete_ForwardsCompletionOptions(t *testing.T) {
	in := inputs(3)
	got, err := batch.Complete(context.Background(), in,
		batch.WithCompletionOptions(completion.WithWindow(64)))
	require.NoError(t, err)
	for i := range got {
		assert.True(t, got[i].IsUnimodular(1e-12), "input %d defect %g", i, got[i].Defect())
	}
}

func TestComplete_FirstError(t *testing.T) {
	in := inputs(8)
	in[5] = lpoly.New([]float64{0.1, 0.1}, -1)

	_, err := batch.Complete(context.Background(), in, batch.WithWorkers(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, completion.ErrNotCausal)

	var ie *batch.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 5, ie.Index)
}

func TestComplete_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := batch.Complete(ctx, inputs(16))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)

	got, err = batch.Complete(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got, "errors never come with a result slice")
}

func TestComplete_Empty(t *testing.T) {
	got, err := batch.Complete(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComplete_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := batch.Complete(context.Background(), inputs(3), batch.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("completed").Len())
	summary := logs.FilterMessage("batch complete").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(3), summary[0].ContextMap()["inputs"])
}

func TestWithWorkers_Panics(t *testing.T) {
	assert.Panics(t, func() { batch.WithWorkers(0) })
	assert.GreaterOrEqual(t, batch.DefaultOptions().Workers(), 1)
}
