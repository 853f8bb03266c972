package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
)

func bearerToken(r *http.Request) types.SessionToken {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return types.SessionToken(header[len(prefix):])
	}
	return ""
}

// authenticate resolves the caller to an identity and the upstream account
// it is authorized to act as. Any session failure is an authentication
// failure; a missing profile linkage is an authorization failure.
func authenticate(r *http.Request, cfg *config) (types.Identity, types.AccountName, error) {
	ctx := r.Context()

	if cfg.session == nil {
		return "", "", goerr.Wrap(types.ErrUnauthenticated, "session service is not configured")
	}

	identity, err := cfg.session.CurrentIdentity(ctx, bearerToken(r))
	if err != nil {
		return "", "", goerr.Wrap(types.ErrUnauthenticated, "failed to resolve session",
			goerr.V("cause", err.Error()),
		)
	}

	if cfg.profiles == nil {
		return "", "", goerr.Wrap(types.ErrNoProfile, "profile store is not configured")
	}

	profile, err := cfg.profiles.Get(ctx, identity)
	if err != nil {
		return "", "", goerr.Wrap(types.ErrNoProfile, "failed to resolve profile",
			goerr.V("identity", identity),
		)
	}

	return identity, profile.AccountName, nil
}

func decodeInput(r *http.Request, input interface{ Validate() error }) error {
	if err := json.NewDecoder(r.Body).Decode(input); err != nil {
		return &model.ValidationError{Fields: map[string]string{"body": "invalid JSON"}}
	}
	return input.Validate()
}

// checkOwnership rejects cross-account operations before any upstream call.
func checkOwnership(owner types.AccountName, account types.AccountName) error {
	if owner != account {
		return goerr.Wrap(types.ErrForbidden, "owner does not match the linked account",
			goerr.V("owner", owner),
			goerr.V("account", account),
		)
	}
	return nil
}

type listPagesSitesResponse struct {
	Sites []*model.EnabledSiteSummary `json:"sites"`
}

func handleListPagesSites(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.ListPagesSitesInput
		if err := decodeInput(r, &input); err != nil {
			respondError(w, r, err)
			return
		}

		identity, account, err := authenticate(r, cfg)
		if err != nil {
			respondError(w, r, err)
			return
		}

		decision := cfg.limiter.Check(identity)
		setRateLimitHeaders(w, decision)
		if !decision.Allowed {
			respondJSON(w, http.StatusTooManyRequests, &errorResponse{Error: "rate limit exceeded"})
			return
		}

		sites, err := uc.ListPagesSites(r.Context(), identity, account, &input)
		if err != nil {
			respondError(w, r, err)
			return
		}
		if sites == nil {
			sites = []*model.EnabledSiteSummary{}
		}

		respondJSON(w, http.StatusOK, &listPagesSitesResponse{Sites: sites})
	}
}

func handleGetPagesInfo(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.GetPagesInfoInput
		if err := decodeInput(r, &input); err != nil {
			respondError(w, r, err)
			return
		}

		identity, account, err := authenticate(r, cfg)
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := checkOwnership(input.Owner, account); err != nil {
			respondError(w, r, err)
			return
		}

		decision := cfg.limiter.Check(identity)
		setRateLimitHeaders(w, decision)
		if !decision.Allowed {
			respondJSON(w, http.StatusTooManyRequests, &errorResponse{Error: "rate limit exceeded"})
			return
		}

		status, err := uc.GetPagesInfo(r.Context(), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, status)
	}
}

type enablePagesResponse struct {
	Success bool              `json:"success"`
	URL     string            `json:"url"`
	Status  types.BuildStatus `json:"status"`
	Message string            `json:"message"`
}

func handleEnablePages(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.EnablePagesInput
		if err := decodeInput(r, &input); err != nil {
			respondError(w, r, err)
			return
		}

		identity, account, err := authenticate(r, cfg)
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := checkOwnership(input.Owner, account); err != nil {
			respondError(w, r, err)
			return
		}

		decision := cfg.limiter.Check(identity)
		setRateLimitHeaders(w, decision)
		if !decision.Allowed {
			respondJSON(w, http.StatusTooManyRequests, &errorResponse{Error: "rate limit exceeded"})
			return
		}

		result, err := uc.EnablePages(r.Context(), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, &enablePagesResponse{
			Success: true,
			URL:     result.URL,
			Status:  result.Status,
			Message: result.Message,
		})
	}
}
