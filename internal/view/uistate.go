package view

import "net/url"

// LabelMode selects the wording of the sign-in call to action.
type LabelMode string

const (
	ModeSignUp LabelMode = "signup"
	ModeLogin  LabelMode = "login"
)

// UiState is the page-local state: navigation menu open/closed and the
// sign-up/login label. The zero value is the initial state of every page load;
// an unset Mode means sign-up, so toggling back always yields the zero value.
type UiState struct {
	MenuOpen bool
	Mode     LabelMode
}

// ToggleMenu returns the state with the menu flag flipped.
func (s UiState) ToggleMenu() UiState {
	s.MenuOpen = !s.MenuOpen
	return s
}

// ToggleMode returns the state with the label mode flipped.
func (s UiState) ToggleMode() UiState {
	if s.LabelMode() == ModeLogin {
		s.Mode = ""
	} else {
		s.Mode = ModeLogin
	}
	return s
}

// LabelMode returns the effective mode; an unset mode reads as sign-up.
func (s UiState) LabelMode() LabelMode {
	if s.Mode == ModeLogin {
		return ModeLogin
	}
	return ModeSignUp
}

// CallToAction is the text of the Google sign-in button for the current mode.
func (s UiState) CallToAction() string {
	if s.LabelMode() == ModeLogin {
		return "Log in with Google"
	}
	return "Sign up with Google"
}

// ModeLabel is the text of the control that switches mode.
func (s UiState) ModeLabel() string {
	if s.LabelMode() == ModeLogin {
		return "Sign Up"
	}
	return "Login"
}

// Query encodes the state for an htmx fragment request.
func (s UiState) Query() url.Values {
	q := url.Values{}
	if s.MenuOpen {
		q.Set("menu", "open")
	} else {
		q.Set("menu", "closed")
	}
	q.Set("mode", string(s.LabelMode()))
	return q
}

// ParseUiState reads a state from query values. Unknown values fall back to
// the initial state.
func ParseUiState(q url.Values) UiState {
	s := UiState{MenuOpen: q.Get("menu") == "open"}
	if LabelMode(q.Get("mode")) == ModeLogin {
		s.Mode = ModeLogin
	}
	return s
}
