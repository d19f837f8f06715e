package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

const SubjectKey = "subject"

// Authenticator rejects requests without a valid HS256 bearer token signed
// with secret and issued by issuer.
func Authenticator(secret []byte, issuer string) gin.HandlerFunc {
	log := zap.S().Named("auth")
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			unauthorized(c, srvErrors.NewUnauthorizedError("missing bearer token"))
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil {
			log.Debugw("token rejected", "error", err, RequestIDKey, c.GetString(RequestIDKey))
			unauthorized(c, srvErrors.NewUnauthorizedError("invalid token"))
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

// NewToken signs a HS256 token for subject valid for ttl.
func NewToken(secret []byte, issuer, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func unauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
