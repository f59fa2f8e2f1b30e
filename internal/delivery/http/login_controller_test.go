package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackverse/internal/domain"
)

type fakeCompleter struct {
	redirect string
	err      error
	tokens   []string
}

func (f *fakeCompleter) CompleteLogin(_ context.Context, token string) (string, error) {
	f.tokens = append(f.tokens, token)
	return f.redirect, f.err
}

func TestLoginController_LoginSuccess(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svc        *fakeCompleter
		wantStatus int
		wantCode   string
		wantDone   bool
	}{
		{
			name:       "stores token",
			target:     "/login-success?token=abc.def.ghi",
			svc:        &fakeCompleter{redirect: "register 7"},
			wantStatus: http.StatusOK,
			wantDone:   true,
		},
		{
			name:       "missing token",
			target:     "/login-success",
			svc:        &fakeCompleter{},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeBadRequest,
		},
		{
			name:       "blank token",
			target:     "/login-success?token=%20%20",
			svc:        &fakeCompleter{},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeBadRequest,
		},
		{
			name:       "rejected token",
			target:     "/login-success?token=x",
			svc:        &fakeCompleter{err: fmt.Errorf("no token: %w", domain.ErrUnauthorized)},
			wantStatus: http.StatusUnauthorized,
			wantCode:   ErrCodeUnauthorized,
		},
		{
			name:       "store failure",
			target:     "/login-success?token=x",
			svc:        &fakeCompleter{err: errors.New("disk full")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewLoginController(tt.svc)
			router := NewRouter(ctrl, slog.New(slog.DiscardHandler))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var resp struct {
				Data  *LoginResult `json:"data"`
				Error *APIError    `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.wantCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
				assert.Nil(t, resp.Data)
			} else {
				require.NotNil(t, resp.Data)
				assert.Equal(t, tt.svc.redirect, resp.Data.Redirect)
				assert.Nil(t, resp.Error)
			}

			select {
			case got := <-ctrl.Done():
				assert.True(t, tt.wantDone)
				assert.Equal(t, tt.svc.redirect, got)
			default:
				assert.False(t, tt.wantDone)
			}
		})
	}
}

func TestLoginController_SignalsOnce(t *testing.T) {
	svc := &fakeCompleter{redirect: "/"}
	ctrl := NewLoginController(svc)
	router := NewRouter(ctrl, slog.New(slog.DiscardHandler))

	for range 2 {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login-success?token=t", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
	assert.Equal(t, []string{"t", "t"}, svc.tokens)
	assert.Equal(t, "/", <-ctrl.Done())
	select {
	case <-ctrl.Done():
		t.Fatal("second login must not signal again")
	default:
	}
}

func TestRouter_MethodAndHealth(t *testing.T) {
	router := NewRouter(NewLoginController(&fakeCompleter{}), slog.New(slog.DiscardHandler))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/login-success?token=t", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"},"error":null}`, rr.Body.String())
}
