package pulse

import (
	"strconv"
	"sync/atomic"
)

// unitCounter and stepCounter back NextUnitID and NextStepID: two
// independent, monotonically increasing, process-wide generators. A plain
// atomic counter plus base36 rendering is the entire concern — a UUID
// generator would produce random, unordered ids and break the heap
// comparator's smaller-id-precedes-larger-id guarantee for barrier
// layers.
var (
	unitCounter uint64
	stepCounter uint64
)

// NextUnitID returns a fresh, short, base36 id from the unit generator.
// Used by graph construction to name units.
func NextUnitID() string {
	return strconv.FormatUint(atomic.AddUint64(&unitCounter, 1), 36)
}

// NextStepID returns a fresh, short, base36 id from the step generator.
// Used by graph construction to name steps, and by graph builders to
// derive the numeric id a BarrierStep keys its coalescing on.
func NextStepID() string {
	return strconv.FormatUint(atomic.AddUint64(&stepCounter, 1), 36)
}
