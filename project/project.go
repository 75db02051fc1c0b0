package project

import "time"

type Provider string

const (
	ProviderDropbox  Provider = "dropbox"
	ProviderGoogle   Provider = "google"
	ProviderOneDrive Provider = "onedrive"
)

func (p Provider) Valid() bool {
	switch p {
	case ProviderDropbox, ProviderGoogle, ProviderOneDrive:
		return true
	}
	return false
}

type Role string

const (
	RoleEditor    Role = "editor"
	RoleViewer    Role = "viewer"
	RoleCommenter Role = "commenter"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEditor, RoleViewer, RoleCommenter:
		return true
	}
	return false
}

// Collaborator grants a non-owner user a role on a project. A user appears
// at most once in a project's collaborator list, and the owner never does.
type Collaborator struct {
	UserID int  `json:"userId"`
	Role   Role `json:"role"`
}

// Project is a set of media assets synced from a cloud folder. The owner and
// the provider are fixed at creation.
type Project struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	CloudPath     string         `json:"cloudPath"`
	CloudProvider Provider       `json:"cloudProvider"`
	OwnerID       int            `json:"owner"`
	Collaborators []Collaborator `json:"collaborators"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectRepository gives access to the stored projects. Get returns the
// zero value (ID == 0) when no project matches.
type ProjectRepository interface {
	Get(int) (Project, error)
	// GetForUser returns the projects the user owns or collaborates on.
	GetForUser(int) ([]Project, error)

	Upsert(*Project) error
	Delete(int) error
}
