package main

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/bstree/Trees"
	"go.uber.org/zap"
)

type benchConfig struct {
	n, steps uint32
}

var benchCfg benchConfig

var _R rand.Rand = *rand.New(rand.NewSource(0))

func create(b *testing.B, n uint32, all []int) (*Trees.OrderedTree[int, uint32], []int) {
	b.Helper()
	tree := Trees.New[int, uint32](n)
	for range n {
		a := _R.Int()
		tree.Add(a)
		all = append(all, a)
	}
	return tree, all
}

var __r1 bool

// delQry erases rmvN of the n added values, then queries rmvN added and rmvN random values.
func delQry(n, rmvN uint32) func(*testing.B) {
	return func(b *testing.B) {
		all := make([]int, 0, n)
		b.ResetTimer()
		for range b.N {
			b.StopTimer()
			var tree *Trees.OrderedTree[int, uint32]
			tree, all = create(b, n, all[:0])
			m := slices.Max(all)
			b.StartTimer()
			for _, v := range all[n-rmvN:] {
				tree.Erase(v)
			}
			for _, v := range all[:rmvN] {
				__r1 = tree.Contains(v)
			}
			for range rmvN {
				__r1 = tree.Contains(_R.Intn(m))
			}
		}
	}
}

// runBench times delQry at cfg.steps churn levels and logs the mean and deviation per operation.
func runBench(logger *zap.Logger, cfg benchConfig) error {
	if cfg.steps < 2 || cfg.n < cfg.steps {
		return fmt.Errorf("need 2 <= steps <= n, got steps=%d n=%d", cfg.steps, cfg.n)
	}
	testing.Init()
	var cs []float64
	var N int
	for i := uint32(1); i < cfg.steps; i++ {
		br := testing.Benchmark(delQry(cfg.n, cfg.n/cfg.steps*i))
		cs = append(cs, float64(br.T.Milliseconds()))
		N += br.N
		logger.Debug("step", zap.Uint32("step", i), zap.Int("runs", br.N), zap.Duration("elapsed", br.T))
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(N)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	logger.Info("bench done",
		zap.Uint32("n", cfg.n),
		zap.Float64("average_ms_per_op", avg),
		zap.Float64("stddev_ms_per_op", math.Sqrt(sum/float64(N))))
	return nil
}
