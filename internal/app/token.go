package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/auth"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/config"
)

// IssueToken mints a bearer token for ownerID signed with the configured
// secret. A zero ttl uses auth.access_token_ttl. It is meant for local use
// and scripted tests; production identities come from the identity provider.
func IssueToken(cfg *config.Config, ownerID uuid.UUID, ttl time.Duration) (auth.AccessToken, error) {
	if ttl <= 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}
	m := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	return m.GenerateAccessTokenTTL(ownerID, ttl)
}
