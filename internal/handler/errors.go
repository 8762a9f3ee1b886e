package handler

import (
	"errors"
	"net/http"

	"github.com/naka-gawa/pr-insights/internal/domain"
)

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

func toErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: HTTPError{Code: code, Message: message}}
}

// errorStatus maps an error to the HTTP status and error code of the response.
// Upstream statuses are propagated; anything unclassified is a 500.
func errorStatus(err error) (int, string) {
	var upstreamErr *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrAuthenticationMissing):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrAuthenticationInvalid):
		return http.StatusUnauthorized, "INVALID_TOKEN"
	case errors.Is(err, domain.ErrInvalidPRNumber), errors.Is(err, domain.ErrInvalidRepository):
		return http.StatusBadRequest, "INVALID_REQUEST"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.As(err, &upstreamErr) && upstreamErr.StatusCode >= 400:
		return upstreamErr.StatusCode, "UPSTREAM_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
