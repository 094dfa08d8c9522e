package alloc

import "unsafe"

// composite is implemented by the fallback and segregator engines. Every
// method exists on the engine; the view built by expose decides which of
// them callers can reach.
type composite interface {
	Allocator
	Owner
	Releaser
	Grower
	Reallocator
}

type baseView struct{ c composite }

func (v baseView) Allocate(n int) unsafe.Pointer { return v.c.Allocate(n) }
func (v baseView) Alignment() int { return v.c.Alignment() }

type ownsView struct{ c composite }

func (v ownsView) Owns(p unsafe.Pointer) bool { return v.c.Owns(p) }

type releaseView struct{ c composite }

func (v releaseView) Release(p unsafe.Pointer) { v.c.Release(p) }

type growView struct{ c composite }

func (v growView) Grow(p unsafe.Pointer, oldSize, newSize int) bool {
	return v.c.Grow(p, oldSize, newSize)
}

type reallocView struct{ c composite }

func (v reallocView) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	return v.c.Reallocate(p, oldSize, newSize)
}

// One type per capability subset. Suffix letters: O owns, R release,
// G grow, A reallocate.
type (
	view struct {
		baseView
	}
	viewO struct {
		baseView
		ownsView
	}
	viewR struct {
		baseView
		releaseView
	}
	viewOR struct {
		baseView
		ownsView
		releaseView
	}
	viewG struct {
		baseView
		growView
	}
	viewOG struct {
		baseView
		ownsView
		growView
	}
	viewRG struct {
		baseView
		releaseView
		growView
	}
	viewORG struct {
		baseView
		ownsView
		releaseView
		growView
	}
	viewA struct {
		baseView
		reallocView
	}
	viewOA struct {
		baseView
		ownsView
		reallocView
	}
	viewRA struct {
		baseView
		releaseView
		reallocView
	}
	viewORA struct {
		baseView
		ownsView
		releaseView
		reallocView
	}
	viewGA struct {
		baseView
		growView
		reallocView
	}
	viewOGA struct {
		baseView
		ownsView
		growView
		reallocView
	}
	viewRGA struct {
		baseView
		releaseView
		growView
		reallocView
	}
	viewORGA struct {
		baseView
		ownsView
		releaseView
		growView
		reallocView
	}
)

// expose wraps c in the view whose method set is exactly caps.
func expose(c composite, caps CapSet) Allocator {
	b, o, r, g, a := baseView{c}, ownsView{c}, releaseView{c}, growView{c}, reallocView{c}
	switch caps & (CapSet(CapOwns) | CapSet(CapRelease) | CapSet(CapGrow) | CapSet(CapReallocate)) {
	case 0:
		return view{b}
	case CapSet(CapOwns):
		return viewO{b, o}
	case CapSet(CapRelease):
		return viewR{b, r}
	case CapSet(CapOwns | CapRelease):
		return viewOR{b, o, r}
	case CapSet(CapGrow):
		return viewG{b, g}
	case CapSet(CapOwns | CapGrow):
		return viewOG{b, o, g}
	case CapSet(CapRelease | CapGrow):
		return viewRG{b, r, g}
	case CapSet(CapOwns | CapRelease | CapGrow):
		return viewORG{b, o, r, g}
	case CapSet(CapReallocate):
		return viewA{b, a}
	case CapSet(CapOwns | CapReallocate):
		return viewOA{b, o, a}
	case CapSet(CapRelease | CapReallocate):
		return viewRA{b, r, a}
	case CapSet(CapOwns | CapRelease | CapReallocate):
		return viewORA{b, o, r, a}
	case CapSet(CapGrow | CapReallocate):
		return viewGA{b, g, a}
	case CapSet(CapOwns | CapGrow | CapReallocate):
		return viewOGA{b, o, g, a}
	case CapSet(CapRelease | CapGrow | CapReallocate):
		return viewRGA{b, r, g, a}
	default:
		return viewORGA{b, o, r, g, a}
	}
}
