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

func RegisterMediaEndpoints(srv Server, service *services.MediaService, authMW endpoint.Middleware) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	// Create endpoint
	ep := endpoints.NewMediaEndpoint(service)

	listHandler := kithttp.NewServer(
		authMW(ep.ListForProject),
		decodeListMediaRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	createHandler := kithttp.NewServer(
		authMW(ep.Create),
		decodeCreateMediaRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateHandler := kithttp.NewServer(
		authMW(ep.Update),
		decodeUpdateMediaRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteHandler := kithttp.NewServer(
		authMW(ep.Delete),
		decodeDeleteMediaRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateStatusHandler := kithttp.NewServer(
		authMW(ep.UpdateStatus),
		decodeUpdateStatusRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Routes
	srv.RegisterHandler("/media/project/:projectId", "GET", listHandler)
	srv.RegisterHandler("/media", "POST", createHandler)
	srv.RegisterHandler("/media/:id", "PUT", updateHandler)
	srv.RegisterHandler("/media/:id", "DELETE", deleteHandler)
	srv.RegisterHandler("/media/:id/status", "PUT", updateStatusHandler)
}

func decodeListMediaRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	projectID, err := strconv.Atoi(params["projectId"])
	if err != nil {
		return nil, errors.New("invalid project id", errors.BadRequest(), errors.WithCause(err))
	}

	return projectID, nil
}

func decodeCreateMediaRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.CreateMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return req, nil
}

func decodeUpdateMediaRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	assetID, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid media id", errors.BadRequest(), errors.WithCause(err))
	}

	var body struct {
		Status     project.Status    `json:"status"`
		Metadata   *project.Metadata `json:"metadata"`
		OrderIndex *int              `json:"orderIndex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	req := endpoints.UpdateMediaRequest{
		AssetID:    assetID,
		Status:     body.Status,
		Metadata:   body.Metadata,
		OrderIndex: body.OrderIndex,
	}
	return req, nil
}

func decodeDeleteMediaRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	assetID, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid media id", errors.BadRequest(), errors.WithCause(err))
	}

	return assetID, nil
}

func decodeUpdateStatusRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	assetID, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid media id", errors.BadRequest(), errors.WithCause(err))
	}

	var body struct {
		Status project.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	req := endpoints.UpdateStatusRequest{
		AssetID: assetID,
		Status:  body.Status,
	}
	return req, nil
}
