package http

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/bobinette/photopilot/auth/endpoints"
	"github.com/bobinette/photopilot/auth/services"
	"github.com/bobinette/photopilot/errors"
)

func RegisterUserEndpoints(srv Server, service *services.UserService, authMW endpoint.Middleware) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	// Create endpoint
	ep := endpoints.NewUserEndpoint(service)

	registerHandler := kithttp.NewServer(
		ep.Register,
		decodeRegisterRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	loginHandler := kithttp.NewServer(
		ep.Login,
		decodeLoginRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	profileHandler := kithttp.NewServer(
		authMW(ep.Me),
		decodeProfileRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Routes
	srv.RegisterHandler("/auth/register", "POST", registerHandler)
	srv.RegisterHandler("/auth/login", "POST", loginHandler)
	srv.RegisterHandler("/auth/profile", "GET", profileHandler)
}

func decodeRegisterRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return req, nil
}

func decodeLoginRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return req, nil
}

func decodeProfileRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body
	return nil, nil
}
