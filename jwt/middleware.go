package jwt

import (
	"context"

	"github.com/dgrijalva/jwt-go"
	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"

	"github.com/bobinette/photopilot/errors"
)

// Middleware parses the bearer token extracted by kitjwt.HTTPToContext and
// makes the claims available to the endpoints. Any parsing failure results
// in a 401.
func Middleware(key []byte) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			bearer, ok := ctx.Value(kitjwt.JWTTokenContextKey).(string)
			if !ok {
				return nil, errors.New("no token", errors.Unauthorized())
			}

			claims := Claims{}
			token, err := jwt.ParseWithClaims(bearer, &claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return key, nil
			})
			if err != nil {
				return nil, errors.New("invalid token", errors.Unauthorized(), errors.WithCause(err))
			}
			if !token.Valid {
				return nil, errors.New("invalid token", errors.Unauthorized())
			}

			ctx = context.WithValue(ctx, kitjwt.JWTClaimsContextKey, &claims)
			return next(ctx, request)
		}
	}
}

// StaticMiddleware injects a fixed identity instead of parsing the
// Authorization header. It backs the development bypass switch and must
// never be wired in a production configuration.
func StaticMiddleware(userID int) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			ctx = context.WithValue(ctx, kitjwt.JWTClaimsContextKey, &Claims{UserID: userID})
			return next(ctx, request)
		}
	}
}
