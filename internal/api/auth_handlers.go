package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/limbo/rehabit/pkg/httputil"
)

const oauthStateCookie = "rehabit_oauth_state"

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

type AuthResponse struct {
	UserID string       `json:"uid"`
	Token  string       `json:"token"`
	User   *entity.User `json:"user"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		writeServiceError(w, logger, "register", err)
		return
	}
	s.writeAuth(w, logger, http.StatusCreated, user)
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid email or password", nil)
		case errors.Is(err, errorvalues.ErrFederatedAccount):
			logger.Error("login error: password login for federated account")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "account uses Google sign-in", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	s.writeAuth(w, logger, http.StatusOK, user)
	logger.Info("successful login", slog.String("uid", user.ID.String()))
}

func (s *Server) writeAuth(w http.ResponseWriter, logger *slog.Logger, code int, user *entity.User) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, code, AuthResponse{
		UserID: user.ID.String(),
		Token:  token,
		User:   user,
	})
}

func (s *Server) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if s.oauth == nil || !s.oauth.Enabled() {
		logger.Error("google login error: provider isn't configured")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "google sign-in isn't available", nil)
		return
	}
	state := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, s.oauth.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if s.oauth == nil || !s.oauth.Enabled() {
		logger.Error("google callback error: provider isn't configured")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "google sign-in isn't available", nil)
		return
	}
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		logger.Error("google callback error: state mismatch")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid oauth state", nil)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Path: "/auth/google", MaxAge: -1})
	code := r.URL.Query().Get("code")
	if code == "" {
		logger.Error("google callback error: no code")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "missing authorization code", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	identity, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		logger.Error("google callback error: exchange failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "google sign-in failed", nil)
		return
	}
	user, err := s.userService.SignInFederated(ctx, identity)
	if err != nil {
		writeServiceError(w, logger, "sign in with google", err)
		return
	}
	s.writeAuth(w, logger, http.StatusOK, user)
	logger.Info("successful google sign-in", slog.String("uid", user.ID.String()))
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Profile(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("profile update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateProfileRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("profile update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		writeServiceError(w, logger, "update profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile updated")
}
