package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/utils/errutil"
	"github.com/m-mizutani/pagegate/pkg/utils/logging"
	"github.com/m-mizutani/pagegate/pkg/utils/ratelimit"
)

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps the error taxonomy to exactly one status and JSON body
// per outcome class. Anything unrecognized is reported and collapsed to a
// generic 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrUnauthenticated):
		respondJSON(w, http.StatusUnauthorized, &errorResponse{Error: "unauthenticated"})
		return

	case errors.Is(err, types.ErrNoProfile):
		respondJSON(w, http.StatusForbidden, &errorResponse{Error: "no linked account"})
		return

	case errors.Is(err, types.ErrForbidden):
		respondJSON(w, http.StatusForbidden, &errorResponse{Error: "forbidden"})
		return
	}

	var validation *model.ValidationError
	if errors.As(err, &validation) {
		respondJSON(w, http.StatusBadRequest, &errorResponse{
			Error:  "invalid request",
			Fields: validation.Fields,
		})
		return
	}

	var upstream *model.UpstreamError
	if !errors.As(err, &upstream) {
		// Local failure, not an upstream one: report it before collapsing
		errutil.HandleError(r.Context(), "unexpected handler error", err)
	}

	sanitized := model.SanitizeError(err)
	respondJSON(w, sanitized.StatusCode, &errorResponse{Error: sanitized.Message})
}

func setRateLimitHeaders(w http.ResponseWriter, d ratelimit.Decision) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
}
