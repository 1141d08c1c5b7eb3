package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aglyzov/go-veb/veb"
)

const demoUniverse = 1 << 16 // 2^(2^4)

var demoValues = []uint64{3, 13, 67, 157, 675, 1337, 3422, 10589, 24373, 37899, 47257, 55812, 65529}

type demoCheck struct {
	op   string
	val  uint64
	want result
}

var (
	demoBefore = []demoCheck{
		{"find", 3, result{ok: true}},
		{"find", 65529, result{ok: true}},
		{"find", 24373, result{ok: true}},
		{"find", 43, result{}},
		{"above", 11, result{13, true}},
		{"above", 45, result{67, true}},
		{"above", 255, result{675, true}},
		{"above", 818, result{1337, true}},
		{"above", 55777, result{55812, true}},
		{"below", 14, result{13, true}},
		{"below", 72, result{67, true}},
		{"below", 680, result{675, true}},
		{"below", 1390, result{1337, true}},
		{"below", 60000, result{55812, true}},
	}
	demoDeleted = []uint64{675, 47257}
	demoAfter   = []demoCheck{
		{"find", 3, result{ok: true}},
		{"find", 65529, result{ok: true}},
		{"find", 675, result{}},
		{"find", 47257, result{}},
		{"above", 255, result{1337, true}},
		{"above", 38000, result{55812, true}},
		{"below", 1300, result{157, true}},
		{"below", 55000, result{37899, true}},
	}
)

// runDemo replays the worked example on a 2^16 universe.
func runDemo(leafSize uint64, lg zerolog.Logger) error {
	tr, err := veb.New(demoUniverse, veb.WithLeafSize(leafSize))
	if err != nil {
		return err
	}

	lg.Info().Uint64("universe", tr.Universe()).Msg("Testing with vEB-Tree")

	for _, val := range demoValues {
		if _, err := tr.Insert(val); err != nil {
			return err
		}
	}

	if err := checkAll(tr, demoBefore); err != nil {
		return err
	}

	for _, val := range demoDeleted {
		if !tr.Delete(val) {
			return fmt.Errorf("delete(%d): value was not found", val)
		}
	}

	if err := checkAll(tr, demoAfter); err != nil {
		return fmt.Errorf("after delete: %w", err)
	}

	if err := tr.Verify(); err != nil {
		return err
	}

	lg.Info().Stringer("tree", tr).Msg("worked example passed")

	return nil
}

func checkAll(tr *veb.Tree, checks []demoCheck) error {
	for _, c := range checks {
		var got result

		switch c.op {
		case "find":
			got = result{ok: tr.Find(c.val)}
		case "above":
			got = pair(tr.CloseAbove(c.val))
		case "below":
			got = pair(tr.CloseBelow(c.val))
		default:
			return fmt.Errorf("unknown check %q", c.op)
		}

		if got != c.want {
			return fmt.Errorf("%s(%d): got %v, want %v", c.op, c.val, got, c.want)
		}
	}

	return nil
}
