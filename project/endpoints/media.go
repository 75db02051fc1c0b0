package endpoints

import (
	"context"

	"github.com/bobinette/photopilot/project"
	"github.com/bobinette/photopilot/project/services"
)

type MediaEndpoint struct {
	service *services.MediaService
}

func NewMediaEndpoint(s *services.MediaService) MediaEndpoint {
	return MediaEndpoint{
		service: s,
	}
}

func (ep MediaEndpoint) ListForProject(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	projectID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.GetForProject(callerID, projectID)
}

type CreateMediaRequest struct {
	ProjectID  int            `json:"projectId"`
	Filename   string         `json:"filename"`
	CloudPath  string         `json:"cloudPath"`
	Status     project.Status `json:"status"`
	OrderIndex int            `json:"orderIndex"`
}

func (ep MediaEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(CreateMediaRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	asset, err := ep.service.Create(callerID, services.CreateMediaRequest{
		ProjectID:  req.ProjectID,
		Filename:   req.Filename,
		CloudPath:  req.CloudPath,
		Status:     req.Status,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		return nil, err
	}

	return created(asset), nil
}

type UpdateMediaRequest struct {
	AssetID    int
	Status     project.Status
	Metadata   *project.Metadata
	OrderIndex *int
}

func (ep MediaEndpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(UpdateMediaRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Update(callerID, req.AssetID, services.UpdateMediaRequest{
		Status:     req.Status,
		Metadata:   req.Metadata,
		OrderIndex: req.OrderIndex,
	})
}

func (ep MediaEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	assetID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Delete(callerID, assetID); err != nil {
		return nil, err
	}

	return map[string]string{"message": "Media asset removed"}, nil
}

type UpdateStatusRequest struct {
	AssetID int
	Status  project.Status
}

func (ep MediaEndpoint) UpdateStatus(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(UpdateStatusRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.UpdateStatus(callerID, req.AssetID, req.Status)
}
