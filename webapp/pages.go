package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HomePage is the landing page
type HomePage struct {
	app.Compo
}

func (h *HomePage) Render() app.UI {
	return app.Div().
		Class("home-page").
		Body(
			app.H2().Text("Welcome"),
			app.P().Text("Find courses and get matched with study partners."),
		)
}

// CoursesPage lists the course catalogue
type CoursesPage struct {
	app.Compo
}

func (c *CoursesPage) Render() app.UI {
	return app.Div().
		Class("courses-page").
		Body(
			app.H2().Text("Courses"),
			app.P().Text("Browse the courses on offer this term."),
		)
}

// MatchingPage pairs students by course
type MatchingPage struct {
	app.Compo
}

func (m *MatchingPage) Render() app.UI {
	return app.Div().
		Class("matching-page").
		Body(
			app.H2().Text("Matching"),
			app.P().Text("See who else is taking your courses."),
		)
}
