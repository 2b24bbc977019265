package navigation

// Page identifies which destination the hosting page represents
type Page string

const (
	PageHome     Page = "home"
	PageCourses  Page = "courses"
	PageMatching Page = "matching"
)

// DefaultBreakpoint is the widest viewport, in logical pixels, still treated as mobile
const DefaultBreakpoint = 768

// Link is a single navigation destination
type Link struct {
	Page  Page   `json:"page"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

var links = []Link{
	{Page: PageHome, Label: "Home", Href: "/"},
	{Page: PageCourses, Label: "Courses", Href: "/courses"},
	{Page: PageMatching, Label: "Matching", Href: "/matching"},
}

// Links returns the navigation destinations in display order.
// The desktop list and the mobile dropdown both render from this slice.
func Links() []Link {
	out := make([]Link, len(links))
	copy(out, links)
	return out
}

// PageForPath maps a request path onto the page it belongs to
func PageForPath(path string) (Page, bool) {
	if path == "" {
		path = "/"
	}
	for _, link := range links {
		if link.Href == path || link.Href+"/" == path {
			return link.Page, true
		}
	}
	return "", false
}

// IsMobile classifies a viewport width against the breakpoint
func IsMobile(width, breakpoint int) bool {
	return width <= breakpoint
}
