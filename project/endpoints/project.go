package endpoints

import (
	"context"

	"github.com/bobinette/photopilot/project"
	"github.com/bobinette/photopilot/project/services"
)

type ProjectEndpoint struct {
	service *services.ProjectService
}

func NewProjectEndpoint(s *services.ProjectService) ProjectEndpoint {
	return ProjectEndpoint{
		service: s,
	}
}

type CreateRequest struct {
	Name          string           `json:"name"`
	CloudPath     string           `json:"cloudPath"`
	CloudProvider project.Provider `json:"cloudProvider"`
}

func (ep ProjectEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(CreateRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	p, err := ep.service.Create(callerID, req.Name, req.CloudPath, req.CloudProvider)
	if err != nil {
		return nil, err
	}

	return created(p), nil
}

func (ep ProjectEndpoint) List(ctx context.Context, _ interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.GetForUser(callerID)
}

func (ep ProjectEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	projectID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Get(callerID, projectID)
}

type UpdateRequest struct {
	ProjectID     int
	Name          string
	CloudPath     string
	Collaborators []project.Collaborator
}

func (ep ProjectEndpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(UpdateRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Update(callerID, req.ProjectID, services.UpdateRequest{
		Name:          req.Name,
		CloudPath:     req.CloudPath,
		Collaborators: req.Collaborators,
	})
}

func (ep ProjectEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	projectID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Delete(callerID, projectID); err != nil {
		return nil, err
	}

	return map[string]string{"message": "Project removed"}, nil
}

type AddCollaboratorRequest struct {
	ProjectID int
	UserID    int
	Role      project.Role
}

func (ep ProjectEndpoint) AddCollaborator(ctx context.Context, r interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(AddCollaboratorRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.AddCollaborator(callerID, req.ProjectID, req.UserID, req.Role)
}
