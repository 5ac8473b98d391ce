package main

import (
	"context"
	"testing"

	"github.com/g-m-twostay/bstree/Trees"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func testCfg() verifyConfig {
	return verifyConfig{queries: 3000, checkEvery: 1, jobs: 1, seed: 2018}
}

func TestVerify(t *testing.T) {
	for _, maxV := range []int{1, 2, 5, 13, 42, 1024, 1_000_000_000} {
		st, err := verify(context.Background(), Trees.New[int, uint32](0), maxV, testCfg())
		require.NoError(t, err, "max value %d", maxV)
		require.Equal(t, testCfg().queries, st.adds+st.finds+st.erases)
		require.NotZero(t, st.adds)
	}
}

func TestVerifyBadMaxValue(t *testing.T) {
	_, err := verify(context.Background(), Trees.New[int, uint32](0), 0, testCfg())
	require.Error(t, err)
}

func TestVerifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := verify(ctx, Trees.New[int, uint32](0), 42, testCfg())
	require.ErrorIs(t, err, context.Canceled)
}

// lossy drops every third Add.
type lossy struct {
	*Trees.OrderedTree[int, uint32]
	adds int
}

func (u *lossy) Add(v int) {
	if u.adds++; u.adds%3 != 0 {
		u.OrderedTree.Add(v)
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	_, err := verify(context.Background(), &lossy{OrderedTree: Trees.New[int, uint32](0)}, 42, testCfg())
	require.ErrorIs(t, err, ErrMismatch)
}

func TestRunVerify(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := testCfg()
	cfg.jobs, cfg.checkEvery, cfg.maxValues = 3, 16, []int{1, 5, 42, 1024, 1 << 30}
	require.NoError(t, runVerify(context.Background(), zaptest.NewLogger(t), cfg))
}

func TestRunVerifyStopsOnError(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := testCfg()
	cfg.jobs, cfg.maxValues = 2, []int{13, -1, 42}
	require.Error(t, runVerify(context.Background(), zaptest.NewLogger(t), cfg))
}

func TestRunBenchRejectsSteps(t *testing.T) {
	require.Error(t, runBench(zaptest.NewLogger(t), benchConfig{n: 10, steps: 1}))
	require.Error(t, runBench(zaptest.NewLogger(t), benchConfig{n: 1, steps: 5}))
}
