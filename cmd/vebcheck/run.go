package main

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog"

	"github.com/aglyzov/go-veb/internal/config"
	"github.com/aglyzov/go-veb/internal/oracle"
	"github.com/aglyzov/go-veb/veb"
)

func run(cfg config.Config, lg zerolog.Logger) error {
	if cfg.Demo {
		if err := runDemo(cfg.LeafSize, lg); err != nil {
			return fmt.Errorf("worked example: %w", err)
		}
	}

	if cfg.Ops == 0 {
		return nil
	}

	return runWorkload(cfg, lg)
}

type workloadStats struct {
	inserts, deletes, finds, aboves, belows int
}

func (s workloadStats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("inserts", s.inserts).
		Int("deletes", s.deletes).
		Int("finds", s.finds).
		Int("close_above", s.aboves).
		Int("close_below", s.belows)
}

// runWorkload mirrors a seeded random mix of operations on a tree and the
// oracle, failing on the first disagreement.
func runWorkload(cfg config.Config, lg zerolog.Logger) error {
	tr, err := veb.New(cfg.Universe, veb.WithLeafSize(cfg.LeafSize))
	if err != nil {
		return err
	}

	var (
		fake  = gofakeit.New(cfg.Seed)
		ref   = oracle.New()
		mask  = cfg.Universe - 1
		pool  []uint64
		stats workloadStats
		start = time.Now()
	)

	lg.Info().
		Uint64("universe", cfg.Universe).
		Uint64("leaf_size", cfg.LeafSize).
		Int("ops", cfg.Ops).
		Int64("seed", cfg.Seed).
		Msg("starting random workload")

	for i := 0; i < cfg.Ops; i++ {
		val := fake.Uint64() & mask
		if len(pool) > 0 && fake.Bool() {
			val = pool[fake.Number(0, len(pool)-1)]
		}

		var got, want interface{}

		switch op := fake.Number(0, 9); {
		case op < 4:
			stats.inserts++
			added, err := tr.Insert(val)
			if err != nil {
				return fmt.Errorf("op %d: Insert(%d): %w", i, val, err)
			}
			if added {
				pool = append(pool, val)
			}
			got, want = added, ref.Insert(val)
		case op < 7:
			stats.deletes++
			got, want = tr.Delete(val), ref.Delete(val)
		case op < 8:
			stats.finds++
			got, want = tr.Find(val), ref.Find(val)
		case op < 9:
			stats.aboves++
			got, want = pair(tr.CloseAbove(val)), pair(ref.CloseAbove(val))
		default:
			stats.belows++
			got, want = pair(tr.CloseBelow(val)), pair(ref.CloseBelow(val))
		}

		if got != want {
			return fmt.Errorf("op %d on %d: got %v, want %v", i, val, got, want)
		}

		if cfg.VerifyEvery > 0 && (i+1)%cfg.VerifyEvery == 0 {
			if err := tr.Verify(); err != nil {
				return fmt.Errorf("op %d: %w", i, err)
			}
			lg.Debug().Int("op", i+1).Uint64("len", tr.Len()).Msg("invariants hold")
		}
	}

	if tr.Len() != ref.Len() {
		return fmt.Errorf("tree holds %d values, want %d", tr.Len(), ref.Len())
	}

	keys, expKeys := tr.Keys(), ref.Keys()
	for i := range expKeys {
		if keys[i] != expKeys[i] {
			return fmt.Errorf("key %d: got %d, want %d", i, keys[i], expKeys[i])
		}
	}

	lg.Info().
		Object("stats", stats).
		Uint64("len", tr.Len()).
		Stringer("tree", tr).
		Dur("elapsed", time.Since(start)).
		Msg("random workload matches the reference set")

	return nil
}

type result struct {
	val uint64
	ok  bool
}

func (r result) String() string {
	if !r.ok {
		return "none"
	}
	return fmt.Sprint(r.val)
}

func pair(val uint64, ok bool) result {
	if !ok {
		return result{}
	}
	return result{val: val, ok: true}
}
