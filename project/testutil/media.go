package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/photopilot/project"
)

// TestMediaRepository verifies the MediaRepository contract, in particular
// the ordering of GetForProject: ascending OrderIndex, ties kept in
// insertion order.
func TestMediaRepository(t *testing.T, repo project.MediaRepository) {
	assets := []*project.MediaAsset{
		{ProjectID: 1, Filename: "IMG_002.jpg", CloudPath: "/p/IMG_002.jpg", Status: project.StatusGood, OrderIndex: 1},
		{ProjectID: 1, Filename: "IMG_001.jpg", CloudPath: "/p/IMG_001.jpg", Status: project.StatusGood, OrderIndex: 0},
		{ProjectID: 1, Filename: "IMG_003.jpg", CloudPath: "/p/IMG_003.jpg", Status: project.StatusChange, OrderIndex: 1},
		{ProjectID: 2, Filename: "other.jpg", CloudPath: "/q/other.jpg", Status: project.StatusGood, OrderIndex: 0},
	}

	for _, asset := range assets {
		err := repo.Upsert(asset)
		require.NoError(t, err, "insert %s should not fail", asset.Filename)
		require.NotEqual(t, 0, asset.ID, "id should be set by insert")
	}

	// Get an asset by its id
	retrieved, err := repo.Get(assets[0].ID)
	if assert.NoError(t, err, "get should not fail") {
		assert.Equal(t, *assets[0], retrieved)
	}

	// Get an asset that does not exist
	retrieved, err = repo.Get(100)
	if assert.NoError(t, err, "get missing should not fail") {
		assert.Equal(t, 0, retrieved.ID, "missing asset should be the zero value")
	}

	// Project listing: ascending OrderIndex, the two OrderIndex==1 assets
	// keep their insertion order.
	forProject, err := repo.GetForProject(1)
	if assert.NoError(t, err, "get for project should not fail") {
		if assert.Len(t, forProject, 3, "project 1 should have three assets") {
			assert.Equal(t, "IMG_001.jpg", forProject[0].Filename)
			assert.Equal(t, "IMG_002.jpg", forProject[1].Filename)
			assert.Equal(t, "IMG_003.jpg", forProject[2].Filename)
		}
	}

	forProject, err = repo.GetForProject(100)
	if assert.NoError(t, err, "get for unknown project should not fail") {
		assert.Len(t, forProject, 0, "unknown project should have no asset")
	}

	// Update status and order
	assets[1].Status = project.StatusArchived
	assets[1].OrderIndex = 10
	err = repo.Upsert(assets[1])
	require.NoError(t, err, "update should not fail")
	retrieved, err = repo.Get(assets[1].ID)
	if assert.NoError(t, err, "get after update should not fail") {
		assert.Equal(t, project.StatusArchived, retrieved.Status)
		assert.Equal(t, 10, retrieved.OrderIndex)
	}

	// The reordered asset now sorts last
	forProject, err = repo.GetForProject(1)
	if assert.NoError(t, err, "get for project should not fail") {
		if assert.Len(t, forProject, 3) {
			assert.Equal(t, "IMG_001.jpg", forProject[2].Filename)
		}
	}

	// Delete a single asset
	err = repo.Delete(assets[2].ID)
	require.NoError(t, err, "delete should not fail")
	forProject, err = repo.GetForProject(1)
	if assert.NoError(t, err, "get for project after delete should not fail") {
		assert.Len(t, forProject, 2)
	}

	// Cascade delete of project 1, project 2 untouched
	err = repo.DeleteForProject(1)
	require.NoError(t, err, "delete for project should not fail")
	forProject, err = repo.GetForProject(1)
	if assert.NoError(t, err, "get for project after cascade should not fail") {
		assert.Len(t, forProject, 0, "cascade should leave no asset behind")
	}
	forProject, err = repo.GetForProject(2)
	if assert.NoError(t, err, "get for other project should not fail") {
		assert.Len(t, forProject, 1, "other projects should keep their assets")
	}
}
