package model_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
)

func TestSanitizeUpstream(t *testing.T) {
	leaked := `{"message":"Bad credentials for token ghp_secret123","documentation_url":"https://api.github.com/org/private-repo"}`

	testCases := []struct {
		name       string
		upstream   int
		wantStatus int
		wantMsg    string
	}{
		{name: "401 maps to 403", upstream: http.StatusUnauthorized, wantStatus: http.StatusForbidden, wantMsg: "insufficient permission"},
		{name: "403 maps to 403", upstream: http.StatusForbidden, wantStatus: http.StatusForbidden, wantMsg: "insufficient permission"},
		{name: "404 maps to 404", upstream: http.StatusNotFound, wantStatus: http.StatusNotFound, wantMsg: "not found"},
		{name: "422 maps to 400", upstream: http.StatusUnprocessableEntity, wantStatus: http.StatusBadRequest, wantMsg: "invalid request"},
		{name: "500 maps to 502", upstream: http.StatusInternalServerError, wantStatus: http.StatusBadGateway, wantMsg: "upstream error"},
		{name: "unmapped 418 maps to 502", upstream: http.StatusTeapot, wantStatus: http.StatusBadGateway, wantMsg: "upstream error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sanitized := model.SanitizeUpstream(tc.upstream, leaked)
			gt.V(t, sanitized.StatusCode).Equal(tc.wantStatus)
			gt.V(t, sanitized.Message).Equal(tc.wantMsg)

			// The upstream body must never reach the caller
			gt.False(t, strings.Contains(sanitized.Error(), "ghp_secret123"))
			gt.False(t, strings.Contains(sanitized.Error(), "private-repo"))
		})
	}
}

func TestSanitizeGeneral(t *testing.T) {
	sanitized := model.SanitizeGeneral(errors.New("dial tcp 10.0.0.1:443: connection refused"))
	gt.V(t, sanitized.StatusCode).Equal(http.StatusInternalServerError)
	gt.V(t, sanitized.Message).Equal("internal server error")
	gt.False(t, strings.Contains(sanitized.Error(), "10.0.0.1"))
}
