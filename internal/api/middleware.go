package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses a well-formed X-Request-ID from the client and echoes it back.
func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, reqID)
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		if reqID, ok := r.Context().Value(requestIDKContextKey).(string); ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(
			slog.String("from", r.RemoteAddr),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggerExtensionMiddleware adds uid of authenticated user to request logger.
func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := GetUIDFromContext(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context()).With(slog.String("uid", uid.String()))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type authError struct {
	code    int
	message string
	logMsg  string
	err     error
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, aErr := s.authenticate(r)
		if aErr != nil {
			if aErr.err != nil {
				logger.Error("auth failed: "+aErr.logMsg, slog.String("error", aErr.err.Error()))
			} else {
				logger.Error("auth failed: " + aErr.logMsg)
			}
			httputil.WriteErrorResponse(w, aErr.code, aErr.message, nil)
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate resolves the bearer token of r to the uid of an existing user.
func (s *Server) authenticate(r *http.Request) (uuid.UUID, *authError) {
	tokenString, err := GetTokenFromRequest(r)
	if err != nil {
		return uuid.Nil, &authError{code: http.StatusUnauthorized, message: "authorization failed: invalid token", logMsg: "no token"}
	}
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			return uuid.Nil, &authError{code: http.StatusUnauthorized, message: "authorization failed: invalid token", logMsg: "error parsing token"}
		}
		return uuid.Nil, &authError{code: http.StatusInternalServerError, message: "error parsing token", logMsg: "internal error while parsing token", err: err}
	}
	now := time.Now()
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) ||
		(claims.NotBefore != nil && claims.NotBefore.Time.After(now)) {
		return uuid.Nil, &authError{code: http.StatusUnauthorized, message: "token expired or not ready", logMsg: "expired or not ready token"}
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, &authError{code: http.StatusUnauthorized, message: "invalid token payload", logMsg: "invalid uid in token claims"}
	}
	// User may have been removed after the token was issued
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if _, err = s.userService.GetByID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return uuid.Nil, &authError{code: http.StatusNotFound, message: "auth failed: user not found", logMsg: "user doesn't exist"}
		}
		return uuid.Nil, &authError{code: http.StatusInternalServerError, message: "internal error while searching for user", logMsg: "error while searching for user", err: err}
	}
	return uid, nil
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

// GetTokenFromRequest reads bearer token from Authorization header.
// Browsers can't set headers on websocket handshakes, so "token" query parameter is accepted as well.
func GetTokenFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		if q := r.URL.Query().Get("token"); q != "" {
			return q, nil
		}
		return "", errorvalues.ErrInvalidToken
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" || strings.Contains(token, " ") {
		return "", errorvalues.ErrInvalidToken
	}
	return token, nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
