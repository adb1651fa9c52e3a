package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/voxnote/internal/auth"
	"github.com/nfrund/voxnote/internal/domain"
	"github.com/nfrund/voxnote/internal/logging"
	"github.com/nfrund/voxnote/internal/session"
)

// AuthHandler drives the "Sign in with Google" redirects. It never shows the
// visitor an error: every path ends on the landing page.
type AuthHandler struct {
	flow     auth.LoginFlow
	finisher auth.Finisher
	handoff  *auth.Handoff
}

// NewAuthHandler creates an AuthHandler. finisher may be nil for flows that
// complete inline; the callback route then only logs.
func NewAuthHandler(flow auth.LoginFlow, finisher auth.Finisher, handoff *auth.Handoff) *AuthHandler {
	return &AuthHandler{flow: flow, finisher: finisher, handoff: handoff}
}

// GoogleLogin starts the provider-hosted flow (GET /auth/google).
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()
	logger := logging.FromContext(ctx)

	start, err := h.flow.StartLogin(ctx, h.handoff.Complete)
	if err != nil {
		logger.Error("Failed to start Google login", "error", err)
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if start.State != "" {
		if err := session.SetLoginState(c, start.State); err != nil {
			logger.Error("Failed to save login state", "error", err)
			return c.Redirect(http.StatusSeeOther, "/")
		}
	}

	if start.RedirectURL == "" {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Redirect(http.StatusSeeOther, start.RedirectURL)
}

// GoogleCallback receives the provider redirect (GET /auth/google/callback).
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()
	logger := logging.FromContext(ctx)

	// The state cookie is single use whatever happens next.
	expected := session.PopLoginState(c)

	var req CallbackRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login callback", "error", err)
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if req.Error != "" {
		logger.Error("Google login was not completed", "error", req.Error, "description", req.ErrorDescription)
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := c.Validate(&req); err != nil {
		logger.Error("Invalid login callback", "error", err)
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if expected == "" || req.State != expected {
		logger.Error("Login callback rejected", "error", domain.ErrStateMismatch)
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if h.finisher == nil {
		logger.Warn("Login callback received but the login flow completes inline")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.finisher.Finish(ctx, req.State, req.Code); err != nil {
		logger.Error("Login callback rejected", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
