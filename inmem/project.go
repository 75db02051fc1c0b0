package inmem

import (
	"sync"

	"github.com/bobinette/photopilot/project"
)

// ProjectRepository is a mutex-guarded in-memory project.ProjectRepository.
type ProjectRepository struct {
	mu       sync.Mutex
	projects []project.Project
	maxID    int
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		projects: make([]project.Project, 0),
	}
}

func (r *ProjectRepository) Get(id int) (project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, nil
}

func (r *ProjectRepository) GetForUser(userID int) ([]project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := make([]project.Project, 0)
	for _, p := range r.projects {
		if project.CapabilityOf(userID, p).CanRead() {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *ProjectRepository) Upsert(p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		r.maxID++
		p.ID = r.maxID
	} else if p.ID > r.maxID {
		r.maxID = p.ID
	}

	for i, existing := range r.projects {
		if existing.ID == p.ID {
			r.projects[i] = *p
			return nil
		}
	}

	r.projects = append(r.projects, *p)
	return nil
}

func (r *ProjectRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return nil
}
