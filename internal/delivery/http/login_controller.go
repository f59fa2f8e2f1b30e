package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hackverse/internal/domain"
)

// LoginCompleter stores a freshly issued token and returns where to go next.
type LoginCompleter interface {
	CompleteLogin(ctx context.Context, token string) (string, error)
}

// LoginCallbackRequest is the query of GET /login-success.
type LoginCallbackRequest struct {
	Token string
}

// Bind implements QueryBinder.
func (l *LoginCallbackRequest) Bind(r *http.Request) {
	l.Token = strings.TrimSpace(r.URL.Query().Get("token"))
}

// Validate implements Validator.
func (l *LoginCallbackRequest) Validate() []string {
	if l.Token == "" {
		return []string{"token is required"}
	}
	return nil
}

// LoginResult is the response body of a completed login.
type LoginResult struct {
	Redirect string `json:"redirect"`
	Message  string `json:"message"`
}

// LoginController receives the browser redirect that ends a sign-in.
type LoginController struct {
	Service LoginCompleter
	done    chan string
}

// NewLoginController returns a controller whose Done channel yields the
// redirect hint of the first completed login.
func NewLoginController(svc LoginCompleter) *LoginController {
	return &LoginController{Service: svc, done: make(chan string, 1)}
}

// Done yields the redirect hint once a login has been stored.
func (c *LoginController) Done() <-chan string {
	return c.done
}

// LoginSuccess handles GET /login-success?token=.
func (c *LoginController) LoginSuccess(w http.ResponseWriter, r *http.Request) {
	var req LoginCallbackRequest
	if !BindAndValidate(w, r, &req) {
		return
	}
	redirect, err := c.Service.CompleteLogin(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}

	select {
	case c.done <- redirect:
	default:
	}
	WriteJSONSuccess(w, http.StatusOK, LoginResult{
		Redirect: redirect,
		Message:  "Login successful. You can close this tab and return to the terminal.",
	})
}
