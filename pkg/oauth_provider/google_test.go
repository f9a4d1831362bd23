package oauthprovider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	oauthprovider "github.com/limbo/rehabit/pkg/oauth_provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func fakeGoogle(t *testing.T, verified bool) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"access","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		if verified {
			w.Write([]byte(`{"email":"alice@example.com","email_verified":true,"name":"Alice","picture":"https://img/a.png"}`))
			return
		}
		w.Write([]byte(`{"email":"alice@example.com","email_verified":false}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newProvider(srv *httptest.Server) *oauthprovider.GoogleProvider {
	return oauthprovider.NewGoogle(oauthprovider.Options{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/auth/google/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  srv.URL + "/auth",
			TokenURL: srv.URL + "/token",
		},
		UserInfoURL: srv.URL + "/userinfo",
	})
}

func TestExchange(t *testing.T) {
	t.Run("verified identity", func(t *testing.T) {
		p := newProvider(fakeGoogle(t, true))
		identity, err := p.Exchange(context.Background(), "the-code")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", identity.Email)
		assert.Equal(t, "Alice", identity.DisplayName)
		assert.Equal(t, "https://img/a.png", identity.PhotoURL)
	})
	t.Run("unverified email", func(t *testing.T) {
		p := newProvider(fakeGoogle(t, false))
		_, err := p.Exchange(context.Background(), "the-code")
		assert.ErrorIs(t, err, oauthprovider.ErrEmailNotVerified)
	})
}

func TestAuthCodeURL(t *testing.T) {
	p := newProvider(fakeGoogle(t, true))
	assert.True(t, p.Enabled())
	u, err := url.Parse(p.AuthCodeURL("state-123"))
	require.NoError(t, err)
	assert.Equal(t, "state-123", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))

	assert.False(t, oauthprovider.NewGoogle(oauthprovider.Options{}).Enabled())
}
