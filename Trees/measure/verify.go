package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/g-m-twostay/bstree/Trees"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrMismatch is returned when the tree disagrees with the reference multiset.
var ErrMismatch = errors.New("measure: tree disagrees with reference")

type verifyConfig struct {
	queries, checkEvery, jobs int
	seed                      int64
	maxValues                 []int
}

var verifyCfg verifyConfig

// percentages of queries that use a fresh random value instead of one already in the tree.
const (
	freshAdd      = 75
	freshContains = 40
	freshErase    = 25
)

// multiset is the reference: value -> multiplicity, plus the live values in no particular order.
type multiset struct {
	m    *treemap.Map
	n    int
	live []int
}

func newMultiset() *multiset {
	return &multiset{m: treemap.NewWithIntComparator()}
}

func (u *multiset) count(v int) int {
	if c, ok := u.m.Get(v); ok {
		return c.(int)
	}
	return 0
}

func (u *multiset) add(v int) {
	u.m.Put(v, u.count(v)+1)
	u.live = append(u.live, v)
	u.n++
}

func (u *multiset) erase(v int) bool {
	switch c := u.count(v); c {
	case 0:
		return false
	case 1:
		u.m.Remove(v)
	default:
		u.m.Put(v, c-1)
	}
	i := slices.Index(u.live, v)
	u.live[i] = u.live[len(u.live)-1]
	u.live = u.live[:len(u.live)-1]
	u.n--
	return true
}

func (u *multiset) sorted() []int {
	s := make([]int, 0, u.n)
	u.m.Each(func(k, c interface{}) {
		for range c.(int) {
			s = append(s, k.(int))
		}
	})
	return s
}

// pick a value in [-maxV/2, maxV-maxV/2), or with 100-fresh percent chance one that is in the multiset.
func (u *multiset) pick(rng *rand.Rand, maxV, fresh int) int {
	if len(u.live) == 0 || rng.Intn(100) < fresh {
		return rng.Intn(maxV) - maxV/2
	}
	return u.live[rng.Intn(len(u.live))]
}

type stats struct {
	adds, finds, erases int
	size                uint32
	elapsed             time.Duration
}

// verify runs cfg.queries random queries with values bounded by maxV on tree, which must be empty.
func verify(ctx context.Context, tree Trees.Tree[int, uint32], maxV int, cfg verifyConfig) (st stats, err error) {
	if maxV <= 0 {
		return st, fmt.Errorf("max value %d must be positive", maxV)
	}
	rng := rand.New(rand.NewSource(cfg.seed))
	ref := newMultiset()
	start := time.Now()
	for i := range cfg.queries {
		if i&0xff == 0 {
			if err = ctx.Err(); err != nil {
				return
			}
		}
		switch rng.Intn(3) {
		case 0:
			v := ref.pick(rng, maxV, freshAdd)
			tree.Add(v)
			ref.add(v)
			st.adds++
		case 1:
			v := ref.pick(rng, maxV, freshContains)
			if got, want := tree.Contains(v), ref.count(v) > 0; got != want {
				return st, fmt.Errorf("%w: query %d: contains(%d) = %v, want %v", ErrMismatch, i, v, got, want)
			}
			st.finds++
		case 2:
			v := ref.pick(rng, maxV, freshErase)
			if got, want := tree.Erase(v), ref.erase(v); got != want {
				return st, fmt.Errorf("%w: query %d: erase(%d) = %v, want %v", ErrMismatch, i, v, got, want)
			}
			st.erases++
		}
		if int(tree.Size()) != ref.n {
			return st, fmt.Errorf("%w: query %d: size %d, want %d", ErrMismatch, i, tree.Size(), ref.n)
		}
		if cfg.checkEvery > 0 && (i+1)%cfg.checkEvery == 0 {
			if !slices.Equal(tree.ToSortedArray(), ref.sorted()) {
				return st, fmt.Errorf("%w: query %d: sorted contents differ", ErrMismatch, i)
			}
		}
	}
	if !slices.Equal(tree.ToSortedArray(), ref.sorted()) {
		return st, fmt.Errorf("%w: sorted contents differ at the end", ErrMismatch)
	}
	if tree.Corrupt() {
		return st, fmt.Errorf("%w: tree is corrupt", ErrMismatch)
	}
	st.size, st.elapsed = tree.Size(), time.Since(start)
	return
}

// runVerify runs one workload per max value, cfg.jobs of them at a time, each on its own tree.
func runVerify(ctx context.Context, logger *zap.Logger, cfg verifyConfig) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.jobs, 1))
	for _, maxV := range cfg.maxValues {
		g.Go(func() error {
			logger.Debug("workload started", zap.Int("max_element_value", maxV), zap.Int("queries", cfg.queries))
			st, err := verify(ctx, Trees.New[int, uint32](0), maxV, cfg)
			if err != nil {
				return fmt.Errorf("max value %d: %w", maxV, err)
			}
			logger.Info("passed",
				zap.Int("max_element_value", maxV),
				zap.Int("adds", st.adds),
				zap.Int("finds", st.finds),
				zap.Int("erases", st.erases),
				zap.Uint32("size", st.size),
				zap.Duration("elapsed", st.elapsed))
			return nil
		})
	}
	return g.Wait()
}
