package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/pkg/httpx"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
)

// writeError maps a service error onto its HTTP status. Anything that is not
// a *service.Error is logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteJSON(w, http.StatusInternalServerError, taskifysdk.ErrorResponse{
			Error:            taskifysdk.ErrorCodeServerError,
			ErrorDescription: "internal server error",
		})
		return
	}

	status, code := http.StatusInternalServerError, taskifysdk.ErrorCodeServerError
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		status, code = http.StatusUnauthorized, taskifysdk.ErrorCodeUnauthenticated
	case errors.Is(err, service.ErrForbidden):
		status, code = http.StatusForbidden, taskifysdk.ErrorCodeForbidden
	case errors.Is(err, service.ErrNotFound):
		status, code = http.StatusNotFound, taskifysdk.ErrorCodeNotFound
	case errors.Is(err, service.ErrInvalidState):
		status, code = http.StatusBadRequest, taskifysdk.ErrorCodeInvalidState
	case errors.Is(err, service.ErrInvalidRequest):
		status, code = http.StatusBadRequest, taskifysdk.ErrorCodeInvalidRequest
	case errors.Is(err, service.ErrConflict):
		status, code = http.StatusConflict, taskifysdk.ErrorCodeConflict
	}

	httpx.WriteJSON(w, status, taskifysdk.ErrorResponse{
		Error:            code,
		ErrorDescription: svcErr.Reason,
	})
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, taskifysdk.ErrorResponse{
		Error:            taskifysdk.ErrorCodeInvalidRequest,
		ErrorDescription: desc,
	})
}

type validatable interface {
	Validate() map[string]string
}

// decode reads and validates the request body. It writes the 400 itself and
// returns false when the body is unusable.
func decode(w http.ResponseWriter, r *http.Request, dst validatable) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		writeBadRequest(w, err.Error())
		return false
	}
	if details := dst.Validate(); details != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, taskifysdk.ValidationErrorResponse{
			Code:    taskifysdk.ErrorCodeValidation,
			Message: "invalid request",
			Details: details,
		})
		return false
	}
	return true
}

// caller is the identity AuthnMiddleware put on the request. Public routes
// get the zero Caller.
func caller(r *http.Request) domain.Caller {
	id, _ := httpx.UserIDFromContext(r.Context())
	return domain.Caller{UserID: id}
}
