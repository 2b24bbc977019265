package navigation

// Item is a link as rendered, with its active marker resolved
type Item struct {
	Link
	Active bool
}

// View describes the visual tree of the navigation bar for one state
type View struct {
	Layout       Layout
	ShowList     bool
	ShowBurger   bool
	ShowDropdown bool
	Items        []Item
}

// Render maps the current page and menu state to a view. It has no side effects.
func Render(current Page, m Menu) View {
	v := View{Layout: m.Layout()}
	switch v.Layout {
	case LayoutDesktop:
		v.ShowList = true
	case LayoutMobileClosed:
		v.ShowBurger = true
	case LayoutMobileOpen:
		v.ShowBurger = true
		v.ShowDropdown = true
	}
	if v.ShowList || v.ShowDropdown {
		v.Items = items(current)
	}
	return v
}

func items(current Page) []Item {
	out := make([]Item, 0, len(links))
	for _, link := range links {
		out = append(out, Item{Link: link, Active: link.Page == current})
	}
	return out
}

// ActiveCount returns how many items carry the active style
func (v View) ActiveCount() int {
	n := 0
	for _, item := range v.Items {
		if item.Active {
			n++
		}
	}
	return n
}
