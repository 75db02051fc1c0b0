package endpoints

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"

	"github.com/bobinette/photopilot/errors"
	"github.com/bobinette/photopilot/jwt"
)

// Variables and functions for specific errors
var (
	errInvalidRequest = errors.New("invalid request", errors.BadRequest())
)

// statusCoded wraps a response to make EncodeJSONResponse write a status
// that is not 200 but is not an error either.
type statusCoded struct {
	value interface{}
	code  int
}

func (r statusCoded) StatusCode() int { return r.code }

func (r statusCoded) MarshalJSON() ([]byte, error) { return json.Marshal(r.value) }

func created(v interface{}) statusCoded {
	return statusCoded{value: v, code: http.StatusCreated}
}

// extractUserID returns the user id present in the context, or an error if
// there is no user id or the claims are not correct.
func extractUserID(ctx context.Context) (int, error) {
	claims := ctx.Value(kitjwt.JWTClaimsContextKey)
	if claims == nil {
		return 0, errors.New("no user", errors.Unauthorized())
	}

	ppClaims, ok := claims.(*jwt.Claims)
	if !ok {
		return 0, errors.New("invalid claims", errors.Forbidden())
	}

	return ppClaims.UserID, nil
}
