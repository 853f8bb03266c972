package ghsession_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/infra/ghsession"
)

func TestCurrentIdentity(t *testing.T) {
	t.Run("valid token resolves to stable identity", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/user")
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer session-token")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":1234,"login":"alice"}`))
		}))
		t.Cleanup(srv.Close)

		client := gt.R1(ghsession.New(ghsession.WithBaseURL(srv.URL + "/"))).NoError(t)
		identity := gt.R1(client.CurrentIdentity(context.Background(), "session-token")).NoError(t)
		gt.V(t, identity).Equal(types.Identity("github:1234"))
	})

	t.Run("rejected token is unauthenticated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
		}))
		t.Cleanup(srv.Close)

		client := gt.R1(ghsession.New(ghsession.WithBaseURL(srv.URL + "/"))).NoError(t)
		_, err := client.CurrentIdentity(context.Background(), "bad-token")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})

	t.Run("empty token is unauthenticated without an upstream call", func(t *testing.T) {
		client := gt.R1(ghsession.New()).NoError(t)
		_, err := client.CurrentIdentity(context.Background(), "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})
}
