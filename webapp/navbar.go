package webapp

import (
	"github.com/drummonds/coursematch/navigation"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// LogoURL is where the server publishes the navigation logo
const LogoURL = "/images/logo.png"

// NavBar is the navigation bar component. CurrentPage marks the active link.
type NavBar struct {
	app.Compo
	CurrentPage navigation.Page

	menu navigation.Menu
}

// OnMount classifies the viewport before the first paint
func (n *NavBar) OnMount(ctx app.Context) {
	n.menu = navigation.NewMenu(Breakpoint())
	width, _ := app.Window().Size()
	n.menu.Attach(width)
}

// OnResize is only delivered while the component is mounted
func (n *NavBar) OnResize(ctx app.Context) {
	width, _ := app.Window().Size()
	n.menu.Resize(width)
}

// OnDismount releases the viewport observer
func (n *NavBar) OnDismount() {
	n.menu.Detach()
}

func (n *NavBar) onBurgerClick(ctx app.Context, e app.Event) {
	n.toggleMenu()
}

// toggleMenu opens or closes the dropdown; ignored on desktop
func (n *NavBar) toggleMenu() {
	n.menu.Toggle()
}

// Render renders the navigation bar. Prerendered pages are never mounted
// and keep the desktop layout.
func (n *NavBar) Render() app.UI {
	view := navigation.Render(n.CurrentPage, n.menu)

	body := []app.UI{
		app.Div().Class("navbar-logo").Body(
			app.Img().
				Src(LogoURL).
				Alt("Logo").
				Width(85).
				Height(60),
		),
	}

	if view.ShowBurger {
		body = append(body, app.Div().
			Class("navbar-burger").
			OnClick(n.onBurgerClick).
			Body(
				app.Div().Class("burger-line"),
				app.Div().Class("burger-line"),
				app.Div().Class("burger-line"),
			))
	}
	if view.ShowList {
		body = append(body, renderLinks("navbar-list", "navbar-item", view.Items))
	}
	if view.ShowDropdown {
		body = append(body, app.Div().
			Class("navbar-dropdown").
			Body(renderLinks("navbar-dropdown-list", "navbar-dropdown-item", view.Items)))
	}

	return app.Nav().
		Class("navbar").
		Body(body...)
}

// renderLinks renders one list of navigation links
func renderLinks(listClass, itemClass string, items []navigation.Item) app.UI {
	return app.Ul().
		Class(listClass).
		Body(
			app.Range(items).Slice(func(i int) app.UI {
				item := items[i]
				return app.Li().
					Class(itemClass).
					Body(
						app.A().
							Href(item.Href).
							Class(linkClass(item.Active)).
							Text(item.Label),
					)
			}),
		)
}

func linkClass(active bool) string {
	if active {
		return "navbar-link navbar-link-active"
	}
	return "navbar-link"
}
