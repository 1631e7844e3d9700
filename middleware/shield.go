package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/shieldkit/claims"
	apperrors "github.com/kbukum/shieldkit/errors"
	"github.com/kbukum/shieldkit/shield"
)

// PathFunc derives the rule tree path for a request.
type PathFunc func(c *gin.Context) []string

// PathFromURL is the default PathFunc: the non-empty segments of the URL
// path, so "/users/profile/get" becomes ["users", "profile", "get"].
func PathFromURL(c *gin.Context) []string {
	raw := strings.Split(c.Request.URL.Path, "/")
	path := make([]string, 0, len(raw))
	for _, segment := range raw {
		if segment != "" {
			path = append(path, segment)
		}
	}
	return path
}

// Shield returns a gin middleware that consults s before every request.
// A nil pathFn uses PathFromURL. On denial the request is aborted with the
// AppError's HTTP status and its JSON error body; allowed requests continue
// down the handler chain.
func Shield(s *shield.Shield, pathFn PathFunc) gin.HandlerFunc {
	if pathFn == nil {
		pathFn = PathFromURL
	}
	return func(c *gin.Context) {
		_, err := s.Handle(c.Request.Context(), pathFn(c), nil, func(ctx context.Context) (any, error) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return nil, nil
		})
		if err == nil {
			return
		}
		appErr, ok := apperrors.AsAppError(err)
		if !ok {
			appErr = apperrors.Internal(err)
		}
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
	}
}

// BearerClaims returns a gin middleware that parses an Authorization bearer
// token into the request context. Requests without a token (or with an
// invalid one) continue unauthenticated; claim-based rules deny them if the
// permission tree requires authentication.
func BearerClaims(parser *claims.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		parsed, err := parser.ParseBearer(c.GetHeader("Authorization"))
		if err == nil {
			ctx := claims.NewContext(c.Request.Context(), parsed)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
