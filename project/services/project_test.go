package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/photopilot/auth"
	"github.com/bobinette/photopilot/errors"
	"github.com/bobinette/photopilot/inmem"
	"github.com/bobinette/photopilot/project"
)

type fixture struct {
	users    *inmem.UserRepository
	projects *inmem.ProjectRepository
	media    *inmem.MediaRepository

	projectService *ProjectService
	mediaService   *MediaService

	owner, editor, viewer, stranger auth.User
}

func createFixture(t *testing.T) *fixture {
	f := &fixture{
		users:    inmem.NewUserRepository(),
		projects: inmem.NewProjectRepository(),
		media:    inmem.NewMediaRepository(),
	}
	f.projectService = NewProjectService(f.projects, f.media, f.users)
	f.mediaService = NewMediaService(f.media, f.projects)

	f.owner = auth.User{Name: "Owner", Email: "owner@example.com"}
	f.editor = auth.User{Name: "Editor", Email: "editor@example.com"}
	f.viewer = auth.User{Name: "Viewer", Email: "viewer@example.com"}
	f.stranger = auth.User{Name: "Stranger", Email: "stranger@example.com"}
	for _, user := range []*auth.User{&f.owner, &f.editor, &f.viewer, &f.stranger} {
		require.NoError(t, f.users.Upsert(user))
	}

	return f
}

// sharedProject creates a project owned by f.owner with f.editor and
// f.viewer as collaborators.
func (f *fixture) sharedProject(t *testing.T) project.Project {
	p, err := f.projectService.Create(f.owner.ID, "Wedding", "/wedding", project.ProviderDropbox)
	require.NoError(t, err, "create should not fail")

	_, err = f.projectService.AddCollaborator(f.owner.ID, p.ID, f.editor.ID, project.RoleEditor)
	require.NoError(t, err, "adding the editor should not fail")
	_, err = f.projectService.AddCollaborator(f.owner.ID, p.ID, f.viewer.ID, project.RoleViewer)
	require.NoError(t, err, "adding the viewer should not fail")

	return p
}

func TestProjectService_Create(t *testing.T) {
	f := createFixture(t)

	p, err := f.projectService.Create(f.owner.ID, "Wedding", "/wedding", project.ProviderDropbox)
	require.NoError(t, err, "create should not fail")
	assert.NotEqual(t, 0, p.ID, "project should get an id")
	assert.Equal(t, f.owner.ID, p.OwnerID, "caller should become the owner")
	assert.Empty(t, p.Collaborators, "a new project has no collaborator")

	_, err = f.projectService.Create(f.owner.ID, "Wedding", "/wedding", "ftp")
	require.Error(t, err, "unknown provider should fail")
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestProjectService_Get(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	for _, userID := range []int{f.owner.ID, f.editor.ID, f.viewer.ID} {
		details, err := f.projectService.Get(userID, p.ID)
		if assert.NoError(t, err, "user %d should read the project", userID) {
			assert.Equal(t, p.ID, details.ID)
			assert.Equal(t, f.owner.Email, details.Owner.Email, "owner should be joined in")
			assert.Len(t, details.Collaborators, 2, "collaborators should be joined in")
		}
	}

	_, err := f.projectService.Get(f.stranger.ID, p.ID)
	require.Error(t, err, "a stranger should not read the project")
	errors.AssertCode(t, err, http.StatusForbidden)

	_, err = f.projectService.Get(f.owner.ID, 100)
	require.Error(t, err, "missing project should fail")
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestProjectService_GetForUser(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	other, err := f.projectService.Create(f.stranger.ID, "Nature", "/nature", project.ProviderGoogle)
	require.NoError(t, err, "create should not fail")

	details, err := f.projectService.GetForUser(f.viewer.ID)
	require.NoError(t, err, "get for user should not fail")
	if assert.Len(t, details, 1, "the viewer only sees the shared project") {
		assert.Equal(t, p.ID, details[0].ID)
	}

	details, err = f.projectService.GetForUser(f.stranger.ID)
	require.NoError(t, err, "get for user should not fail")
	if assert.Len(t, details, 1, "the stranger only sees its own project") {
		assert.Equal(t, other.ID, details[0].ID)
	}
}

func TestProjectService_Update(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	details, err := f.projectService.Update(f.owner.ID, p.ID, UpdateRequest{Name: "Wedding 2023"})
	require.NoError(t, err, "update by owner should not fail")
	assert.Equal(t, "Wedding 2023", details.Name)
	assert.Equal(t, "/wedding", details.CloudPath, "empty fields keep their value")

	// Editors and viewers cannot update the project itself
	for _, userID := range []int{f.editor.ID, f.viewer.ID, f.stranger.ID} {
		_, err := f.projectService.Update(userID, p.ID, UpdateRequest{Name: "Hijacked"})
		require.Error(t, err, "update by user %d should fail", userID)
		errors.AssertCode(t, err, http.StatusForbidden)
	}

	stored, err := f.projects.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wedding 2023", stored.Name, "refused updates should leave no trace")

	// The owner cannot be snuck into the collaborator list
	_, err = f.projectService.Update(f.owner.ID, p.ID, UpdateRequest{
		Collaborators: []project.Collaborator{{UserID: f.owner.ID, Role: project.RoleEditor}},
	})
	require.Error(t, err, "owner as collaborator should fail")
	errors.AssertCode(t, err, http.StatusBadRequest)

	// Nor the same user twice
	_, err = f.projectService.Update(f.owner.ID, p.ID, UpdateRequest{
		Collaborators: []project.Collaborator{
			{UserID: f.viewer.ID, Role: project.RoleViewer},
			{UserID: f.viewer.ID, Role: project.RoleEditor},
		},
	})
	require.Error(t, err, "duplicate collaborator should fail")
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestProjectService_Delete(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	for i := 0; i < 3; i++ {
		_, err := f.mediaService.Create(f.owner.ID, CreateMediaRequest{
			ProjectID: p.ID,
			Filename:  "img.jpg",
			CloudPath: "/wedding/img.jpg",
		})
		require.NoError(t, err, "create media should not fail")
	}

	// Only the owner can delete
	err := f.projectService.Delete(f.editor.ID, p.ID)
	require.Error(t, err, "delete by editor should fail")
	errors.AssertCode(t, err, http.StatusForbidden)

	err = f.projectService.Delete(f.owner.ID, p.ID)
	require.NoError(t, err, "delete by owner should not fail")

	// The cascade leaves no media behind
	assets, err := f.media.GetForProject(p.ID)
	require.NoError(t, err)
	assert.Len(t, assets, 0, "cascade should delete all the project's media")

	err = f.projectService.Delete(f.owner.ID, p.ID)
	require.Error(t, err, "deleting twice should fail")
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestProjectService_AddCollaborator(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	// Already a collaborator -> 400, list unchanged
	_, err := f.projectService.AddCollaborator(f.owner.ID, p.ID, f.viewer.ID, project.RoleEditor)
	require.Error(t, err, "adding an existing collaborator should fail")
	errors.AssertCode(t, err, http.StatusBadRequest)

	stored, err := f.projects.Get(p.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Collaborators, 2, "refused add should leave the list unchanged")

	// The owner is not a collaborator
	_, err = f.projectService.AddCollaborator(f.owner.ID, p.ID, f.owner.ID, project.RoleEditor)
	require.Error(t, err, "adding the owner should fail")
	errors.AssertCode(t, err, http.StatusBadRequest)

	// Unknown users cannot be added
	_, err = f.projectService.AddCollaborator(f.owner.ID, p.ID, 100, project.RoleViewer)
	require.Error(t, err, "adding an unknown user should fail")
	errors.AssertCode(t, err, http.StatusNotFound)

	// Only the owner manages collaborators
	_, err = f.projectService.AddCollaborator(f.editor.ID, p.ID, f.stranger.ID, project.RoleViewer)
	require.Error(t, err, "add by editor should fail")
	errors.AssertCode(t, err, http.StatusForbidden)

	// Empty role defaults to viewer
	details, err := f.projectService.AddCollaborator(f.owner.ID, p.ID, f.stranger.ID, "")
	require.NoError(t, err, "add with empty role should not fail")
	require.Len(t, details.Collaborators, 3)
	assert.Equal(t, project.RoleViewer, details.Collaborators[2].Role, "role should default to viewer")
}
