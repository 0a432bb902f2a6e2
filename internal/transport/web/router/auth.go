package router

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/ppx123-web/wechat-article/internal/domain"
)

const (
	bearerPrefix      = "Bearer "
	auth0BearerPrefix = bearerPrefix + "auth0|"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware attaches the caller's identity to the request context
// using the first validator that applies. Requests no validator applies to
// pass through unchanged; requireAuthMiddleware rejects them.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					writeUnauthorized(w, err.Error())
					return
				}

				logger := domain.LoggerFromContext(r.Context()).With(
					"userID", result.UserID,
					"authMethod", result.Method,
				)
				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithLogger(ctx, logger)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens, sent as
// "Authorization: Bearer auth0|<jwt>".
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0BearerPrefix) {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len(auth0BearerPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodAuth0,
		}, nil
	}, nil
}

// NewTokenValidator accepts any of the given shared bearer tokens. Only
// their SHA-256 digests are kept, and the user ID is a short prefix of the
// digest so logs can tell tokens apart without revealing them.
func NewTokenValidator(tokens []string) AuthValidator {
	digests := make([][sha256.Size]byte, 0, len(tokens))
	for _, token := range tokens {
		digests = append(digests, sha256.Sum256([]byte(token)))
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) || strings.HasPrefix(authHeader, auth0BearerPrefix) {
			return nil, nil
		}

		got := sha256.Sum256([]byte(authHeader[len(bearerPrefix):]))
		for _, want := range digests {
			if subtle.ConstantTimeCompare(got[:], want[:]) == 1 {
				return &AuthResult{
					UserID: "token-" + hex.EncodeToString(want[:4]),
					Method: domain.AuthMethodToken,
				}, nil
			}
		}

		return nil, fmt.Errorf("invalid API token")
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = fmt.Fprintf(w, `{"message":%q}`, message)
}
