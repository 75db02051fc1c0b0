package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/bobinette/photopilot/errors"
	"github.com/bobinette/photopilot/project"
	"github.com/bobinette/photopilot/project/endpoints"
	"github.com/bobinette/photopilot/project/services"
)

func RegisterProjectEndpoints(srv Server, service *services.ProjectService, authMW endpoint.Middleware) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	// Create endpoint
	ep := endpoints.NewProjectEndpoint(service)

	createHandler := kithttp.NewServer(
		authMW(ep.Create),
		decodeCreateRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listHandler := kithttp.NewServer(
		authMW(ep.List),
		decodeListRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	getHandler := kithttp.NewServer(
		authMW(ep.Get),
		decodeGetRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateHandler := kithttp.NewServer(
		authMW(ep.Update),
		decodeUpdateRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteHandler := kithttp.NewServer(
		authMW(ep.Delete),
		decodeDeleteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	addCollaboratorHandler := kithttp.NewServer(
		authMW(ep.AddCollaborator),
		decodeAddCollaboratorRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Routes
	srv.RegisterHandler("/projects", "POST", createHandler)
	srv.RegisterHandler("/projects", "GET", listHandler)
	srv.RegisterHandler("/projects/:id", "GET", getHandler)
	srv.RegisterHandler("/projects/:id", "PUT", updateHandler)
	srv.RegisterHandler("/projects/:id", "DELETE", deleteHandler)
	srv.RegisterHandler("/projects/:id/collaborators", "POST", addCollaboratorHandler)
}

func decodeCreateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return req, nil
}

func decodeListRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body
	return nil, nil
}

func decodeGetRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	projectID, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid project id", errors.BadRequest(), errors.WithCause(err))
	}

	return projectID, nil
}

func decodeUpdateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	projectID, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid project id", errors.BadRequest(), errors.WithCause(err))
	}

	var body struct {
		Name          string                 `json:"name"`
		CloudPath     string                 `json:"cloudPath"`
		Collaborators []project.Collaborator `json:"collaborators"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	req := endpoints.UpdateRequest{
		ProjectID:     projectID,
		Name:          body.Name,
		CloudPath:     body.CloudPath,
		Collaborators: body.Collaborators,
	}
	return req, nil
}

func decodeDeleteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	projectID, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid project id", errors.BadRequest(), errors.WithCause(err))
	}

	return projectID, nil
}

func decodeAddCollaboratorRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	projectID, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid project id", errors.BadRequest(), errors.WithCause(err))
	}

	var body struct {
		UserID int          `json:"userId"`
		Role   project.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	req := endpoints.AddCollaboratorRequest{
		ProjectID: projectID,
		UserID:    body.UserID,
		Role:      body.Role,
	}
	return req, nil
}
