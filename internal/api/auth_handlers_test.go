package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/rehabit/internal/api"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Email:       testUser.Email,
		Password:    "test_password",
		DisplayName: testUser.DisplayName,
	})
	require.NoError(t, err)
	testCases := []struct {
		Desc         string
		Body         []byte
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "registered",
			Body:         body,
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				env.users.EXPECT().Register(gomock.Any(), &service.RegisterRequest{
					Email:       testUser.Email,
					Password:    "test_password",
					DisplayName: testUser.DisplayName,
				}).Return(testUser, nil)
			},
		},
		{
			Desc:         "email taken",
			Body:         body,
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				env.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
		},
		{
			Desc:         "invalid data",
			Body:         body,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				env.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, service.NewValidationError("password is too short"))
			},
		},
		{
			Desc:         "service error",
			Body:         body,
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				env.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("mocked error"))
			},
		},
		{
			Desc:         "invalid body",
			Body:         []byte("{"),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := env.do(httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.ExpectedCode != http.StatusCreated {
				return
			}
			var resp api.AuthResponse
			decodeBody(t, rr, &resp)
			assert.Equal(t, testUser.ID.String(), resp.UserID)
			claims, err := env.jwt.ParseToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, testUser.ID.String(), claims.UserID)
		})
	}

	t.Run("validation details are returned", func(t *testing.T) {
		env.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, service.NewValidationError("password is too short"))
		rr := env.do(httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body)))
		var resp httputil.ErrorResponse
		decodeBody(t, rr, &resp)
		assert.Contains(t, resp.Details, "password is too short")
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Email:    testUser.Email,
		Password: "test_password",
	})
	require.NoError(t, err)
	testCases := []struct {
		Desc         string
		Body         []byte
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "logged in",
			Body:         body,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				env.users.EXPECT().Login(gomock.Any(), testUser.Email, "test_password").Return(testUser, nil)
			},
		},
		{
			Desc:         "wrong credentials",
			Body:         body,
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				env.users.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrWrongCredentials)
			},
		},
		{
			Desc:         "federated account",
			Body:         body,
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				env.users.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrFederatedAccount)
			},
		},
		{
			Desc:         "service error",
			Body:         body,
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				env.users.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("mocked error"))
			},
		},
		{
			Desc:         "invalid body",
			Body:         nil,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := env.do(httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	env := newTestEnv(t)
	testCases := []struct {
		Desc         string
		PrepRequest  func(r *http.Request)
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "successful auth",
			PrepRequest:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+env.token(t)) },
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(testUser, nil)
				env.users.EXPECT().Profile(gomock.Any(), testUser.ID).Return(testUser, nil)
			},
		},
		{
			Desc: "token in query",
			PrepRequest: func(r *http.Request) {
				r.URL.RawQuery = url.Values{"token": {env.token(t)}}.Encode()
			},
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(testUser, nil)
				env.users.EXPECT().Profile(gomock.Any(), testUser.ID).Return(testUser, nil)
			},
		},
		{
			Desc:         "no token",
			PrepRequest:  func(r *http.Request) {},
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "not a bearer token",
			PrepRequest:  func(r *http.Request) { r.Header.Set("Authorization", "Basic "+env.token(t)) },
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "forged token",
			PrepRequest:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+env.token(t)+"x") },
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "user deleted",
			PrepRequest:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+env.token(t)) },
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:         "user lookup failed",
			PrepRequest:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+env.token(t)) },
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				env.users.EXPECT().GetByID(gomock.Any(), testUser.ID).Return(nil, errors.New("mocked error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			tc.PrepRequest(r)
			rr := env.do(r)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	env := newTestEnv(t)
	t.Run("generated", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
		_, err := uuid.Parse(rr.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})
	t.Run("propagated", func(t *testing.T) {
		id := uuid.NewString()
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.Header.Set("X-Request-ID", id)
		rr := env.do(r)
		assert.Equal(t, id, rr.Header().Get("X-Request-ID"))
	})
	t.Run("garbage replaced", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.Header.Set("X-Request-ID", "<script>")
		rr := env.do(r)
		assert.NotEqual(t, "<script>", rr.Header().Get("X-Request-ID"))
	})
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	body := `{"display_name":"Alice B","photo_url":"https://example.com/a.png"}`
	env.users.EXPECT().UpdateProfile(gomock.Any(), testUser.ID, &service.UpdateProfileRequest{
		DisplayName: "Alice B",
		PhotoURL:    "https://example.com/a.png",
	}).Return(testUser, nil)
	rr := env.do(env.authRequest(t, http.MethodPatch, "/api/me", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rr.Code)
}

type fakeOAuth struct {
	enabled  bool
	identity *service.FederatedIdentity
	err      error
}

func (f *fakeOAuth) Enabled() bool { return f.enabled }

func (f *fakeOAuth) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeOAuth) Exchange(ctx context.Context, code string) (*service.FederatedIdentity, error) {
	return f.identity, f.err
}

func TestGoogleSignIn(t *testing.T) {
	identity := &service.FederatedIdentity{Email: testUser.Email, DisplayName: testUser.DisplayName}
	provider := &fakeOAuth{enabled: true, identity: identity}
	env := newTestEnv(t, func(l *api.ServicesList) { l.OAuth = provider })

	t.Run("disabled provider", func(t *testing.T) {
		disabled := newTestEnv(t)
		rr := disabled.do(httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	rr := env.do(httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))
	require.Equal(t, http.StatusFound, rr.Code)
	var state *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == "rehabit_oauth_state" {
			state = c
		}
	}
	require.NotNil(t, state)
	assert.Contains(t, rr.Header().Get("Location"), "state="+state.Value)

	t.Run("state mismatch", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=abc&state=other", nil)
		r.AddCookie(state)
		rr := env.do(r)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("signed in", func(t *testing.T) {
		env.users.EXPECT().SignInFederated(gomock.Any(), identity).Return(testUser, nil)
		r := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=abc&state="+state.Value, nil)
		r.AddCookie(state)
		rr := env.do(r)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.AuthResponse
		decodeBody(t, rr, &resp)
		assert.NotEmpty(t, resp.Token)
	})
	t.Run("exchange failed", func(t *testing.T) {
		provider.err = errors.New("bad code")
		defer func() { provider.err = nil }()
		r := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=abc&state="+state.Value, nil)
		r.AddCookie(state)
		rr := env.do(r)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestHealth(t *testing.T) {
	var healthErr error
	env := newTestEnv(t, func(l *api.ServicesList) {
		l.HealthCheck = func(ctx context.Context) error { return healthErr }
	})
	rr := env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	healthErr = errors.New("postgres is down")
	rr = env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
