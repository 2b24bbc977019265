package webapp

import (
	"net/http"
	"strconv"

	"github.com/drummonds/coursematch/navigation"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// breakpointEnv carries the configured breakpoint from the server to the wasm client
const breakpointEnv = "MOBILE_BREAKPOINT"

// Routes registers one client route per navigation destination
func Routes() {
	for _, link := range navigation.Links() {
		page := link.Page
		app.Route(link.Href, func() app.Composer { return &App{Page: page} })
	}
}

// Breakpoint returns the mobile breakpoint handed over by the server
func Breakpoint() int {
	v, err := strconv.Atoi(app.Getenv(breakpointEnv))
	if err != nil || v <= 0 {
		return navigation.DefaultBreakpoint
	}
	return v
}

// Handler returns an HTTP handler for the web app
func Handler(name string, breakpoint int) http.Handler {
	Routes()
	app.RunWhenOnBrowser()

	// wasm_exec.js is served at /wasm_exec.js by Echo
	// app.wasm is served from /web/app.wasm by Echo
	return &app.Handler{
		Name:        name,
		Title:       name,
		Description: "Course catalogue and study partner matching",
		Styles: []string{
			"/webapp/webapp.css",
		},
		Env: map[string]string{
			breakpointEnv: strconv.Itoa(breakpoint),
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
	}
}
