package oauthprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/limbo/rehabit/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

var ErrEmailNotVerified = errors.New("identity provider didn't verify the email")

type Options struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// Zero values mean Google's production endpoints
	Endpoint    oauth2.Endpoint
	UserInfoURL string
}

type GoogleProvider struct {
	cfg         *oauth2.Config
	userInfoURL string
}

func NewGoogle(opts Options) *GoogleProvider {
	endpoint := opts.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = endpoints.Google
	}
	userInfoURL := opts.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = googleUserInfoURL
	}
	return &GoogleProvider{
		cfg: &oauth2.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			RedirectURL:  opts.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: userInfoURL,
	}
}

// Enabled reports whether client credentials are configured.
func (p *GoogleProvider) Enabled() bool {
	return p.cfg.ClientID != "" && p.cfg.ClientSecret != ""
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type userInfo struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Exchange trades the callback code for a token and reads the signed-in identity.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*service.FederatedIdentity, error) {
	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, errors.New("exchanging code error: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errors.New("building userinfo request error: " + err.Error())
	}
	resp, err := p.cfg.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.New("userinfo request error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request error: status %d", resp.StatusCode)
	}
	var info userInfo
	if err = sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.New("decoding userinfo error: " + err.Error())
	}
	if !info.EmailVerified {
		return nil, ErrEmailNotVerified
	}
	return &service.FederatedIdentity{
		Email:       info.Email,
		DisplayName: info.Name,
		PhotoURL:    info.Picture,
	}, nil
}
