package http

import (
	"log/slog"
	"net/http"

	"hackverse/internal/delivery/http/middleware"
)

// NewRouter wires the login callback routes behind request logging.
func NewRouter(loginController *LoginController, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /login-success", loginController.LoginSuccess)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return middleware.LoggingMiddleware(logger, mux)
}
