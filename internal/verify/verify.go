// Package verify runs the reference allocator scenarios against a
// check.Checker.
package verify

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/pavanmanishd/alloc"
	"github.com/pavanmanishd/alloc/internal/check"
)

// Config sizes the fixtures the scenarios run against.
type Config struct {
	RegionSize int // bytes backing each region fixture
	Threshold  int // segregator threshold
}

// DefaultConfig matches the reference fixture: a 100-byte region.
func DefaultConfig() Config {
	return Config{RegionSize: 100, Threshold: 32}
}

// ErrBadConfig indicates fixture sizes the scenarios cannot run with.
var ErrBadConfig = errors.New("verify: invalid config")

// Validate checks that the scenarios can run with cfg.
func (cfg Config) Validate() error {
	if cfg.RegionSize < 21 {
		return fmt.Errorf("%w: region size %d, need at least 21", ErrBadConfig, cfg.RegionSize)
	}
	if cfg.Threshold < 1 || cfg.Threshold >= cfg.RegionSize {
		return fmt.Errorf("%w: threshold %d must be in [1, %d)", ErrBadConfig, cfg.Threshold, cfg.RegionSize)
	}
	return nil
}

// Scenario is one named group of checks.
type Scenario struct {
	Name string
	Run  func(c *check.Checker, cfg Config)
}

// Scenarios lists every scenario in run order.
func Scenarios() []Scenario {
	return []Scenario{
		{"null", nullScenario},
		{"region", regionScenario},
		{"heap", heapScenario},
		{"fallback", fallbackScenario},
		{"reallocate", reallocateScenario},
		{"move", moveScenario},
		{"segregator", segregatorScenario},
		{"capabilities", capabilityScenario},
	}
}

// Run validates cfg and runs every scenario.
func Run(c *check.Checker, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, s := range Scenarios() {
		s.Run(c, cfg)
	}
	return nil
}

func nullScenario(c *check.Checker, _ Config) {
	var n alloc.Null
	for _, size := range []int{0, 1, 10, 1 << 20} {
		c.Check(n.Allocate(size) == nil, "null.Allocate(size) == nil",
			fmt.Sprintf("null allocator returns nil for %d bytes", size))
	}
}

func regionScenario(c *check.Checker, cfg Config) {
	buf := make([]byte, cfg.RegionSize)
	r := alloc.NewRegion(buf)

	p := r.Allocate(1)
	c.Check(p != nil, "region.Allocate(1) != nil", "region allocates within capacity")
	c.Check(p == unsafe.Pointer(&buf[0]), "p == &buf[0]", "first block starts at the region start")

	c.Check(r.Allocate(cfg.RegionSize+4) == nil, "region.Allocate(size+4) == nil",
		"region refuses a request larger than what remains")
	c.Check(r.SizeInUse() == 1, "region.SizeInUse() == 1", "failed allocation leaves the cursor alone")

	r.Release(nil)
	c.Check(r.SizeInUse() == 1, "region.SizeInUse() == 1", "releasing nil changes nothing")
}

func heapScenario(c *check.Checker, _ Config) {
	h := alloc.NewHeap()
	defer h.Close()

	p := h.Allocate(1)
	c.Check(p != nil, "heap.Allocate(1) != nil", "heap allocator allocates")
	h.Release(p)
	h.Release(nil)
}

func fallbackScenario(c *check.Checker, cfg Config) {
	region := alloc.NewRegion(make([]byte, cfg.RegionSize))
	heap := alloc.NewHeap()
	defer heap.Close()
	f := alloc.NewFallback(region, heap)

	small := f.Allocate(20)
	c.Check(small != nil, "fallback.Allocate(20) != nil", "fallback allocates inside the region")
	c.Check(region.Owns(small), "region.Owns(small)", "small block comes from the primary")

	big := f.Allocate(cfg.RegionSize + 20)
	c.Check(big != nil, "fallback.Allocate(size+20) != nil", "fallback allocates from the secondary")
	c.Check(!region.Owns(big), "!region.Owns(big)", "large block does not come from the primary")

	alloc.Release(f, big)
	alloc.Release(f, nil)
}

func reallocateScenario(c *check.Checker, cfg Config) {
	region := alloc.NewRegion(make([]byte, cfg.RegionSize))
	heap := alloc.NewHeap()
	defer heap.Close()
	f := alloc.NewFallback(region, heap).(alloc.Reallocator)

	p := region.Allocate(10)
	q, ok := f.Reallocate(p, 10, 0)
	c.Check(ok && q == nil, "Reallocate(p, 10, 0) == (nil, true)", "reallocating to 0 bytes releases")
	c.Check(region.SizeInUse() == 0, "region.SizeInUse() == 0", "released block returns to the region")

	q, ok = f.Reallocate(nil, 0, 50)
	c.Check(ok && q != nil, "Reallocate(nil, 0, 50) succeeds", "reallocating nil allocates")
	c.Check(region.Owns(q), "region.Owns(q)", "fresh block comes from the primary")
}

func moveScenario(c *check.Checker, cfg Config) {
	region := alloc.NewRegion(make([]byte, cfg.RegionSize))
	heap := alloc.NewHeap()
	defer heap.Close()
	f := alloc.NewFallback(region, heap).(alloc.Reallocator)

	p := region.Allocate(16)
	copy(alloc.Bytes(p, 16), "composable-alloc")
	region.Allocate(1) // pin p so the region cannot grow it in place

	q, ok := f.Reallocate(p, 16, cfg.RegionSize*2)
	c.Check(ok && q != nil, "Reallocate(p, 16, 2*size) succeeds", "block moves to the secondary")
	c.Check(!region.Owns(q), "!region.Owns(q)", "moved block lives in the secondary")
	c.Check(string(alloc.Bytes(q, 16)) == "composable-alloc", "contents preserved",
		"move copies the common prefix")
	heap.Release(q)
}

func segregatorScenario(c *check.Checker, cfg Config) {
	small := alloc.NewRegion(make([]byte, cfg.RegionSize))
	large := alloc.NewRegion(make([]byte, cfg.RegionSize))
	s := alloc.NewSegregator(cfg.Threshold, small, large)

	p := s.Allocate(cfg.Threshold)
	c.Check(small.Owns(p), "small.Owns(p)", "requests at the threshold go to the small child")
	q := s.Allocate(cfg.Threshold + 1)
	c.Check(large.Owns(q), "large.Owns(q)", "requests above the threshold go to the large child")

	g := s.(alloc.Grower)
	c.Check(!g.Grow(p, cfg.Threshold, cfg.Threshold+1), "!Grow across threshold",
		"growth across the threshold fails")
}

func capabilityScenario(c *check.Checker, cfg Config) {
	heap := alloc.NewHeap()
	defer heap.Close()
	f := alloc.NewFallback(alloc.NewRegion(make([]byte, cfg.RegionSize)), heap)

	_, owns := f.(alloc.Owner)
	c.Check(!owns, "fallback is not an Owner", "ownership needs both children to own")
	c.Check(errors.Is(alloc.Require(f, alloc.CapOwns), alloc.ErrUnsupported),
		"Require(f, CapOwns) fails", "missing capability is rejected at assembly")
	c.Check(alloc.Require(f, alloc.CapRelease, alloc.CapReallocate) == nil,
		"Require(f, CapRelease, CapReallocate) == nil", "routed operations are offered")
}
