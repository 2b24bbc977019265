package webapp

import (
	"github.com/drummonds/coursematch/navigation"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// App is the root component of the application
type App struct {
	app.Compo
	Page navigation.Page
}

// Render renders the app
func (a *App) Render() app.UI {
	return app.Div().
		Class("app-container").
		Body(
			app.Header().Body(
				&NavBar{CurrentPage: a.Page},
			),
			app.Main().Body(
				app.Div().Class("content").Body(
					a.renderPage(),
				),
			),
		)
}

// renderPage renders the page body for the current destination
func (a *App) renderPage() app.UI {
	switch a.Page {
	case navigation.PageCourses:
		return &CoursesPage{}
	case navigation.PageMatching:
		return &MatchingPage{}
	default:
		return &HomePage{}
	}
}
