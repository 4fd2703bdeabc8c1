// Authentication HTTP handlers.
//
// This file exposes the account endpoints:
//   - POST /register
//   - POST /login    (sets the session cookie)
//   - POST /logout   (clears it)
//   - GET  /user/me
//
// Login and logout manage the "session" cookie; API clients that cannot use
// cookies may instead send the returned token in X-Session-Token.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-assistant/internal/http/middleware"
	"github.com/voyago/travel-assistant/internal/services"
)

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery"`
}

// LoginRequest is the JSON payload for opening a session.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Email string `json:"email" example:"ada@example.com"`
}

// LoginResponse returns the account plus the session token for non-cookie
// clients.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token" example:"4f2cde2b-8a4e-4e29-b86a-3e1a7f9d2c11"`
}

// Register godoc
// @ID          register
// @Summary     Create an account
// @Description Registers a new user. Registration may be restricted to an allow-list of email addresses.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object}  handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid email, weak password, or email not allowed"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already registered"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password are required")
		return
	}

	u, err := h.accountSvc.Register(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		ok(c, http.StatusCreated, UserResponse{ID: u.ID, Email: u.Email})
	case errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrEmailNotAllowed):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "registration failed")
	}
}

// Login godoc
// @ID          login
// @Summary     Open a session
// @Description Verifies credentials, sets the session cookie, and returns the token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.LoginResponse
// @Header      200  {string}  Set-Cookie  "session cookie"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password are required")
		return
	}

	u, sess, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "login failed")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, sess.Token, h.sessionMaxAge, "/", "", h.cookieSecure, true)
	ok(c, http.StatusOK, LoginResponse{
		User:  UserResponse{ID: u.ID, Email: u.Email},
		Token: sess.Token,
	})
}

// Logout godoc
// @ID          logout
// @Summary     Close the session
// @Description Invalidates the current session and clears the cookie. Succeeds even without a session.
// @Tags        Auth
// @Produce     json
//
// @Success     204  {string}  string  "No Content"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	token := middleware.SessionToken(c)
	if err := h.accountSvc.Logout(c.Request.Context(), token); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "logout failed")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	noContent(c)
}

// Me godoc
// @ID          me
// @Summary     Current account
// @Description Returns the account bound to the session.
// @Tags        Auth
// @Produce     json
//
// @Success     200  {object}  handlers.UserResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /user/me [get]
func (h *Handlers) Me(c *gin.Context) {
	uid := userID(c)
	email, _ := c.Get("userEmail")
	ok(c, http.StatusOK, UserResponse{ID: uid, Email: asContextString(email)})
}

// asContextString converts a Gin context value to string.
func asContextString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
