// Package entity holds the view-model structs passed to templates.
package entity

// Alert carries the flash-style message rendered on top of a page. Route
// is where the confirm button (or timer) sends the user next.
type Alert struct {
	Title       string
	Message     string
	Icon        string
	ShowConfirm bool
	Timer       int
	Route       string
}

// SuccessAlert builds an auto-dismissing success alert.
func SuccessAlert(title, message, route string, timer int) *Alert {
	return &Alert{
		Title:   title,
		Message: message,
		Icon:    "success",
		Timer:   timer,
		Route:   route,
	}
}

// ErrorAlert builds an alert the user has to confirm.
func ErrorAlert(title, message, route string) *Alert {
	return &Alert{
		Title:       title,
		Message:     message,
		Icon:        "error",
		ShowConfirm: true,
		Route:       route,
	}
}
