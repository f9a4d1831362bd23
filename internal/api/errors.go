package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/httputil"
)

var errorStatuses = []struct {
	err     error
	code    int
	message string
}{
	{errorvalues.ErrUserExists, http.StatusConflict, "user with such email already exists"},
	{errorvalues.ErrUserNotFound, http.StatusNotFound, "user doesn't exist"},
	{errorvalues.ErrWrongCredentials, http.StatusForbidden, "invalid email or password"},
	{errorvalues.ErrFederatedAccount, http.StatusForbidden, "account uses Google sign-in"},
	{errorvalues.ErrHabitNotFound, http.StatusNotFound, "habit doesn't exist"},
	// Foreign habits are reported as missing
	{errorvalues.ErrWrongOwner, http.StatusNotFound, "habit doesn't exist"},
	{errorvalues.ErrCheckDateNotAllowed, http.StatusBadRequest, "can't complete a habit for a future day"},
	{errorvalues.ErrStatsNotFound, http.StatusNotFound, "statistics don't exist"},
	{errorvalues.ErrChallengeNotFound, http.StatusNotFound, "challenge doesn't exist"},
	{errorvalues.ErrNoChallengesAvailable, http.StatusConflict, "no more challenges available"},
	{errorvalues.ErrGroupNotFound, http.StatusNotFound, "group doesn't exist"},
	{errorvalues.ErrNotGroupMember, http.StatusForbidden, "you aren't a member of this group"},
	{errorvalues.ErrNotGroupCreator, http.StatusForbidden, "only the group creator can delete it"},
	{errorvalues.ErrAlreadyMember, http.StatusConflict, "already a member"},
	{errorvalues.ErrEmptyMessage, http.StatusBadRequest, "message is empty"},
	{errorvalues.ErrCommunityChallengeNotFound, http.StatusNotFound, "community challenge doesn't exist"},
}

// writeServiceError answers with the status of a known sentinel or 500.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		logger.Error(op+" error: invalid data", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid data", err)
		return
	}
	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			logger.Error(op+" error: "+s.err.Error())
			httputil.WriteErrorResponse(w, s.code, s.message, nil)
			return
		}
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while trying to "+op, nil)
}
