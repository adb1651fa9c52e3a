package session

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	authSessionName = "auth-session"
	keyLoginState   = "login_state"
)

// SetLoginState remembers the OAuth state issued to this browser.
func SetLoginState(c echo.Context, state string) error {
	sess, err := session.Get(authSessionName, c)
	if err != nil {
		return err
	}
	sess.Values[keyLoginState] = state
	return sess.Save(c.Request(), c.Response())
}

// PopLoginState returns the remembered state and clears it, so a state can be
// matched at most once. It returns "" when none is stored.
func PopLoginState(c echo.Context) string {
	sess, err := session.Get(authSessionName, c)
	if err != nil {
		return ""
	}
	state, _ := sess.Values[keyLoginState].(string)
	if state == "" {
		return ""
	}
	delete(sess.Values, keyLoginState)
	// Expire the cookie; it only ever carries the state.
	sess.Options.MaxAge = -1
	_ = sess.Save(c.Request(), c.Response())
	return state
}
