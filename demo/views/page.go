package views

// PageProps configures the demo page.
type PageProps struct {
	PathPrefix string
	DarkMode   bool
	// Actions are the names of the controls; each gets a form posting to its action URL.
	Actions  []string
	Counter  CounterProps
	Products ProductsProps
}

// ActionFormID returns the id of the form a control submits.
func ActionFormID(action string) string {
	return "action-" + action
}

// ActionURL returns the URL a control posts to.
func ActionURL(pathPrefix, action string, darkMode bool) string {
	u := pathPrefix + "/actions/" + action
	if darkMode {
		u += "?dark=1"
	}
	return u
}

// EventsURL returns the URL of the server-sent event stream.
func EventsURL(pathPrefix string, darkMode bool) string {
	u := pathPrefix + "/events"
	if darkMode {
		u += "?dark=1"
	}
	return u
}
