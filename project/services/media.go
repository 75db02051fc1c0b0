package services

import (
	"fmt"
	"time"

	"github.com/bobinette/photopilot/errors"
	"github.com/bobinette/photopilot/project"
)

type MediaService struct {
	repository        project.MediaRepository
	projectRepository project.ProjectRepository
}

func NewMediaService(repo project.MediaRepository, projectRepo project.ProjectRepository) *MediaService {
	return &MediaService{
		repository:        repo,
		projectRepository: projectRepo,
	}
}

func (s *MediaService) GetForProject(callerID, projectID int) ([]project.MediaAsset, error) {
	p, err := s.projectRepository.Get(projectID)
	if err != nil {
		return nil, err
	} else if p.ID == 0 {
		return nil, errProjectNotFound(projectID)
	}

	if !project.CapabilityOf(callerID, p).CanRead() {
		return nil, errNoAccess(projectID)
	}

	return s.repository.GetForProject(projectID)
}

type CreateMediaRequest struct {
	ProjectID  int
	Filename   string
	CloudPath  string
	Status     project.Status
	OrderIndex int
}

func (s *MediaService) Create(callerID int, req CreateMediaRequest) (project.MediaAsset, error) {
	p, err := s.projectRepository.Get(req.ProjectID)
	if err != nil {
		return project.MediaAsset{}, err
	} else if p.ID == 0 {
		return project.MediaAsset{}, errProjectNotFound(req.ProjectID)
	}

	if !project.CapabilityOf(callerID, p).CanEditMedia() {
		return project.MediaAsset{}, errCannotEditMedia(req.ProjectID)
	}

	status := req.Status
	if status == "" {
		status = project.StatusGood
	}
	if !status.Valid() {
		return project.MediaAsset{}, errors.New(fmt.Sprintf("unknown status %q", status), errors.BadRequest())
	}

	now := time.Now()
	asset := project.MediaAsset{
		ProjectID:  req.ProjectID,
		Filename:   req.Filename,
		CloudPath:  req.CloudPath,
		Status:     status,
		OrderIndex: req.OrderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repository.Upsert(&asset); err != nil {
		return project.MediaAsset{}, err
	}

	return asset, nil
}

// UpdateMediaRequest carries the mutable asset fields. Zero values keep the
// current ones.
type UpdateMediaRequest struct {
	Status     project.Status
	Metadata   *project.Metadata
	OrderIndex *int
}

func (s *MediaService) Update(callerID, assetID int, req UpdateMediaRequest) (project.MediaAsset, error) {
	asset, err := s.authorizeEdit(callerID, assetID)
	if err != nil {
		return project.MediaAsset{}, err
	}

	if req.Status != "" {
		if !req.Status.Valid() {
			return project.MediaAsset{}, errors.New(fmt.Sprintf("unknown status %q", req.Status), errors.BadRequest())
		}
		asset.Status = req.Status
	}
	if req.Metadata != nil {
		asset.Metadata = *req.Metadata
	}
	if req.OrderIndex != nil {
		asset.OrderIndex = *req.OrderIndex
	}
	asset.UpdatedAt = time.Now()

	if err := s.repository.Upsert(&asset); err != nil {
		return project.MediaAsset{}, err
	}

	return asset, nil
}

func (s *MediaService) UpdateStatus(callerID, assetID int, status project.Status) (project.MediaAsset, error) {
	asset, err := s.authorizeEdit(callerID, assetID)
	if err != nil {
		return project.MediaAsset{}, err
	}

	if !status.Valid() {
		return project.MediaAsset{}, errors.New(fmt.Sprintf("unknown status %q", status), errors.BadRequest())
	}

	asset.Status = status
	asset.UpdatedAt = time.Now()

	if err := s.repository.Upsert(&asset); err != nil {
		return project.MediaAsset{}, err
	}

	return asset, nil
}

func (s *MediaService) Delete(callerID, assetID int) error {
	asset, err := s.authorizeEdit(callerID, assetID)
	if err != nil {
		return err
	}

	return s.repository.Delete(asset.ID)
}

// authorizeEdit loads the asset and its parent project, and verifies the
// caller may mutate media. It runs before any mutation so a refusal never
// leaves a partial effect.
func (s *MediaService) authorizeEdit(callerID, assetID int) (project.MediaAsset, error) {
	asset, err := s.repository.Get(assetID)
	if err != nil {
		return project.MediaAsset{}, err
	} else if asset.ID == 0 {
		return project.MediaAsset{}, errMediaNotFound(assetID)
	}

	p, err := s.projectRepository.Get(asset.ProjectID)
	if err != nil {
		return project.MediaAsset{}, err
	} else if p.ID == 0 {
		return project.MediaAsset{}, errProjectNotFound(asset.ProjectID)
	}

	if !project.CapabilityOf(callerID, p).CanEditMedia() {
		return project.MediaAsset{}, errCannotEditMedia(p.ID)
	}

	return asset, nil
}
