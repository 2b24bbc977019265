package navigation

// Layout is the rendered shape of the navigation bar
type Layout int

const (
	LayoutDesktop Layout = iota
	LayoutMobileClosed
	LayoutMobileOpen
)

func (l Layout) String() string {
	switch l {
	case LayoutDesktop:
		return "desktop"
	case LayoutMobileClosed:
		return "mobile-closed"
	case LayoutMobileOpen:
		return "mobile-open"
	default:
		return "unknown"
	}
}

// Menu holds the viewport classification and dropdown state of one navigation bar.
// The zero value is detached and uses DefaultBreakpoint.
type Menu struct {
	breakpoint int
	attached   bool
	isMobile   bool
	menuOpen   bool
}

// NewMenu creates a detached menu. Non-positive breakpoints fall back to DefaultBreakpoint.
func NewMenu(breakpoint int) Menu {
	return Menu{breakpoint: breakpoint}
}

func (m *Menu) threshold() int {
	if m.breakpoint <= 0 {
		return DefaultBreakpoint
	}
	return m.breakpoint
}

// Attach starts observing the viewport and classifies the current width straight away
func (m *Menu) Attach(width int) {
	m.attached = true
	m.menuOpen = false
	m.classify(width)
}

// Resize reclassifies after a viewport change. It is ignored once detached.
func (m *Menu) Resize(width int) {
	if !m.attached {
		return
	}
	m.classify(width)
}

func (m *Menu) classify(width int) {
	m.isMobile = IsMobile(width, m.threshold())
	if !m.isMobile {
		m.menuOpen = false
	}
}

// Toggle flips the dropdown. Does nothing outside the mobile layout.
func (m *Menu) Toggle() {
	if !m.isMobile {
		return
	}
	m.menuOpen = !m.menuOpen
}

// Detach stops observing the viewport and discards state. Safe to call repeatedly.
func (m *Menu) Detach() {
	if !m.attached {
		return
	}
	m.attached = false
	m.isMobile = false
	m.menuOpen = false
}

// Attached reports whether the viewport is being observed
func (m Menu) Attached() bool { return m.attached }

// IsMobile reports the current classification
func (m Menu) IsMobile() bool { return m.isMobile }

// Open reports whether the dropdown is shown
func (m Menu) Open() bool { return m.isMobile && m.menuOpen }

// Layout returns which of the three shapes should be rendered
func (m Menu) Layout() Layout {
	switch {
	case !m.isMobile:
		return LayoutDesktop
	case m.menuOpen:
		return LayoutMobileOpen
	default:
		return LayoutMobileClosed
	}
}
