package testutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/photopilot/project"
)

// TestProjectRepository verifies the ProjectRepository contract. It is meant
// to be called by every implementation's test file.
func TestProjectRepository(t *testing.T, repo project.ProjectRepository) {
	projects := []*project.Project{
		{
			Name:          "Wedding Shoot",
			CloudPath:     "/wedding_shoot",
			CloudProvider: project.ProviderDropbox,
			OwnerID:       1,
			Collaborators: []project.Collaborator{
				{UserID: 2, Role: project.RoleEditor},
			},
		},
		{
			Name:          "Nature",
			CloudPath:     "/nature",
			CloudProvider: project.ProviderGoogle,
			OwnerID:       2,
			Collaborators: []project.Collaborator{},
		},
	}

	// Insert all the projects, ids should be assigned and distinct
	ids := make([]int, len(projects))
	for i, p := range projects {
		err := repo.Upsert(p)
		require.NoError(t, err, "insert %s should not fail", p.Name)
		require.NotEqual(t, 0, p.ID, "id should be set by insert")
		ids[i] = p.ID
	}
	sort.Ints(ids)
	for i := 0; i < len(ids)-1; i++ {
		require.NotEqual(t, ids[i], ids[i+1], "all ids should be different")
	}

	// Get a project by its id
	for _, p := range projects {
		retrieved, err := repo.Get(p.ID)
		if assert.NoError(t, err, "get should not fail") {
			assert.Equal(t, *p, retrieved, "get %s", p.Name)
		}
	}

	// Get a project that does not exist
	retrieved, err := repo.Get(100)
	if assert.NoError(t, err, "get missing should not fail") {
		assert.Equal(t, 0, retrieved.ID, "missing project should be the zero value")
	}

	// User 1 owns project 0, user 2 collaborates on 0 and owns 1
	forUser, err := repo.GetForUser(1)
	if assert.NoError(t, err, "get for user should not fail") {
		if assert.Len(t, forUser, 1, "user 1 should see one project") {
			assert.Equal(t, projects[0].ID, forUser[0].ID)
		}
	}
	forUser, err = repo.GetForUser(2)
	if assert.NoError(t, err, "get for user should not fail") {
		assert.Len(t, forUser, 2, "user 2 should see both projects")
	}
	forUser, err = repo.GetForUser(100)
	if assert.NoError(t, err, "get for unknown user should not fail") {
		assert.Len(t, forUser, 0, "unknown user should see no project")
	}

	// Update collaborators
	projects[0].Collaborators = append(projects[0].Collaborators, project.Collaborator{
		UserID: 3, Role: project.RoleViewer,
	})
	err = repo.Upsert(projects[0])
	require.NoError(t, err, "update should not fail")
	retrieved, err = repo.Get(projects[0].ID)
	if assert.NoError(t, err, "get after update should not fail") {
		assert.Equal(t, projects[0].Collaborators, retrieved.Collaborators, "collaborators should be updated")
	}

	// Delete a project
	err = repo.Delete(projects[1].ID)
	require.NoError(t, err, "delete should not fail")
	retrieved, err = repo.Get(projects[1].ID)
	if assert.NoError(t, err, "get after delete should not fail") {
		assert.Equal(t, 0, retrieved.ID, "deleted project should be gone")
	}
	forUser, err = repo.GetForUser(2)
	if assert.NoError(t, err, "get for user after delete should not fail") {
		assert.Len(t, forUser, 1, "user 2 should only see the remaining project")
	}
}
