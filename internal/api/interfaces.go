package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// OAuthProviderI is an external identity provider used for federated sign-in.
type OAuthProviderI interface {
	Enabled() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*service.FederatedIdentity, error)
}
