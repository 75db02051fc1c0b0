package services

import (
	"fmt"
	"time"

	"github.com/bobinette/photopilot/auth"
	"github.com/bobinette/photopilot/errors"
	"github.com/bobinette/photopilot/project"
)

type ProjectService struct {
	repository      project.ProjectRepository
	mediaRepository project.MediaRepository
	userRepository  auth.UserRepository
}

func NewProjectService(
	repo project.ProjectRepository,
	mediaRepo project.MediaRepository,
	userRepo auth.UserRepository,
) *ProjectService {
	return &ProjectService{
		repository:      repo,
		mediaRepository: mediaRepo,
		userRepository:  userRepo,
	}
}

// UserSummary is the reduced user view joined into project responses.
type UserSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CollaboratorDetails struct {
	User UserSummary  `json:"user"`
	Role project.Role `json:"role"`
}

// ProjectDetails is a project with its user references expanded. The join is
// done here, explicitly, instead of leaning on the store.
type ProjectDetails struct {
	ID            int                   `json:"id"`
	Name          string                `json:"name"`
	CloudPath     string                `json:"cloudPath"`
	CloudProvider project.Provider      `json:"cloudProvider"`
	Owner         UserSummary           `json:"owner"`
	Collaborators []CollaboratorDetails `json:"collaborators"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *ProjectService) Create(callerID int, name, cloudPath string, provider project.Provider) (project.Project, error) {
	if !provider.Valid() {
		return project.Project{}, errors.New(fmt.Sprintf("unknown cloud provider %q", provider), errors.BadRequest())
	}

	now := time.Now()
	p := project.Project{
		Name:          name,
		CloudPath:     cloudPath,
		CloudProvider: provider,
		OwnerID:       callerID,
		Collaborators: []project.Collaborator{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repository.Upsert(&p); err != nil {
		return project.Project{}, err
	}

	return p, nil
}

func (s *ProjectService) Get(callerID, projectID int) (ProjectDetails, error) {
	p, err := s.repository.Get(projectID)
	if err != nil {
		return ProjectDetails{}, err
	} else if p.ID == 0 {
		return ProjectDetails{}, errProjectNotFound(projectID)
	}

	if !project.CapabilityOf(callerID, p).CanRead() {
		return ProjectDetails{}, errNoAccess(projectID)
	}

	return s.details(p)
}

func (s *ProjectService) GetForUser(callerID int) ([]ProjectDetails, error) {
	ps, err := s.repository.GetForUser(callerID)
	if err != nil {
		return nil, err
	}

	details := make([]ProjectDetails, len(ps))
	for i, p := range ps {
		details[i], err = s.details(p)
		if err != nil {
			return nil, err
		}
	}
	return details, nil
}

// UpdateRequest carries the mutable project fields. An empty string keeps
// the current value; a nil collaborator list keeps the current list. Owner
// and provider are immutable.
type UpdateRequest struct {
	Name          string
	CloudPath     string
	Collaborators []project.Collaborator
}

func (s *ProjectService) Update(callerID, projectID int, req UpdateRequest) (ProjectDetails, error) {
	p, err := s.repository.Get(projectID)
	if err != nil {
		return ProjectDetails{}, err
	} else if p.ID == 0 {
		return ProjectDetails{}, errProjectNotFound(projectID)
	}

	if !project.CapabilityOf(callerID, p).IsOwner() {
		return ProjectDetails{}, errNotOwner(projectID)
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.CloudPath != "" {
		p.CloudPath = req.CloudPath
	}
	if req.Collaborators != nil {
		collaborators, err := s.cleanCollaborators(p, req.Collaborators)
		if err != nil {
			return ProjectDetails{}, err
		}
		p.Collaborators = collaborators
	}
	p.UpdatedAt = time.Now()

	if err := s.repository.Upsert(&p); err != nil {
		return ProjectDetails{}, err
	}

	return s.details(p)
}

// Delete removes the project and all its media assets. The cascade is two
// sequential store operations, media first: a crash in between leaves
// orphaned assets but never a project referencing deleted media.
func (s *ProjectService) Delete(callerID, projectID int) error {
	p, err := s.repository.Get(projectID)
	if err != nil {
		return err
	} else if p.ID == 0 {
		return errProjectNotFound(projectID)
	}

	if !project.CapabilityOf(callerID, p).IsOwner() {
		return errNotOwner(projectID)
	}

	if err := s.mediaRepository.DeleteForProject(projectID); err != nil {
		return err
	}

	return s.repository.Delete(projectID)
}

func (s *ProjectService) AddCollaborator(callerID, projectID, userID int, role project.Role) (ProjectDetails, error) {
	p, err := s.repository.Get(projectID)
	if err != nil {
		return ProjectDetails{}, err
	} else if p.ID == 0 {
		return ProjectDetails{}, errProjectNotFound(projectID)
	}

	if !project.CapabilityOf(callerID, p).IsOwner() {
		return ProjectDetails{}, errNotOwner(projectID)
	}

	if role == "" {
		role = project.RoleViewer
	}
	if !role.Valid() {
		return ProjectDetails{}, errors.New(fmt.Sprintf("unknown role %q", role), errors.BadRequest())
	}

	user, err := s.userRepository.Get(userID)
	if err != nil {
		return ProjectDetails{}, err
	} else if user.ID == 0 {
		return ProjectDetails{}, errUserNotFound(userID)
	}

	if userID == p.OwnerID {
		return ProjectDetails{}, errors.New("the owner cannot be a collaborator", errors.BadRequest())
	}
	for _, c := range p.Collaborators {
		if c.UserID == userID {
			return ProjectDetails{}, errors.New("user is already a collaborator", errors.BadRequest())
		}
	}

	p.Collaborators = append(p.Collaborators, project.Collaborator{UserID: userID, Role: role})
	p.UpdatedAt = time.Now()

	if err := s.repository.Upsert(&p); err != nil {
		return ProjectDetails{}, err
	}

	return s.details(p)
}

// cleanCollaborators validates a full collaborator list sent on update:
// known roles (empty defaults to viewer), no duplicate user, never the
// owner.
func (s *ProjectService) cleanCollaborators(p project.Project, collaborators []project.Collaborator) ([]project.Collaborator, error) {
	seen := make(map[int]struct{}, len(collaborators))
	cleaned := make([]project.Collaborator, 0, len(collaborators))
	for _, c := range collaborators {
		if c.Role == "" {
			c.Role = project.RoleViewer
		}
		if !c.Role.Valid() {
			return nil, errors.New(fmt.Sprintf("unknown role %q", c.Role), errors.BadRequest())
		}
		if c.UserID == p.OwnerID {
			return nil, errors.New("the owner cannot be a collaborator", errors.BadRequest())
		}
		if _, ok := seen[c.UserID]; ok {
			return nil, errors.New(fmt.Sprintf("user %d appears twice in collaborators", c.UserID), errors.BadRequest())
		}
		seen[c.UserID] = struct{}{}
		cleaned = append(cleaned, c)
	}
	return cleaned, nil
}

func (s *ProjectService) details(p project.Project) (ProjectDetails, error) {
	details := ProjectDetails{
		ID:            p.ID,
		Name:          p.Name,
		CloudPath:     p.CloudPath,
		CloudProvider: p.CloudProvider,
		Collaborators: make([]CollaboratorDetails, len(p.Collaborators)),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	owner, err := s.userRepository.Get(p.OwnerID)
	if err != nil {
		return ProjectDetails{}, err
	}
	details.Owner = summary(p.OwnerID, owner)

	for i, c := range p.Collaborators {
		user, err := s.userRepository.Get(c.UserID)
		if err != nil {
			return ProjectDetails{}, err
		}
		details.Collaborators[i] = CollaboratorDetails{
			User: summary(c.UserID, user),
			Role: c.Role,
		}
	}

	return details, nil
}

func summary(id int, user auth.User) UserSummary {
	if user.ID == 0 {
		// Dangling reference, keep the id and mark the user unknown.
		return UserSummary{ID: id, Name: "Unknown User"}
	}
	return UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}
