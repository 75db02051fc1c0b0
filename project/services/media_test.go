package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/photopilot/errors"
	"github.com/bobinette/photopilot/project"
)

func TestMediaService_Create(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	// Owner and editor may create, status defaults to good
	for _, userID := range []int{f.owner.ID, f.editor.ID} {
		asset, err := f.mediaService.Create(userID, CreateMediaRequest{
			ProjectID: p.ID,
			Filename:  "img.jpg",
			CloudPath: "/wedding/img.jpg",
		})
		require.NoError(t, err, "create by user %d should not fail", userID)
		assert.Equal(t, project.StatusGood, asset.Status, "status should default to good")
		assert.Equal(t, 0, asset.OrderIndex, "order index should default to 0")
	}

	// Viewers and strangers may not
	for _, userID := range []int{f.viewer.ID, f.stranger.ID} {
		_, err := f.mediaService.Create(userID, CreateMediaRequest{
			ProjectID: p.ID,
			Filename:  "img.jpg",
			CloudPath: "/wedding/img.jpg",
		})
		require.Error(t, err, "create by user %d should fail", userID)
		errors.AssertCode(t, err, http.StatusForbidden)
	}

	assets, err := f.media.GetForProject(p.ID)
	require.NoError(t, err)
	assert.Len(t, assets, 2, "refused creates should leave no asset")

	// Unknown parent project
	_, err = f.mediaService.Create(f.owner.ID, CreateMediaRequest{
		ProjectID: 100,
		Filename:  "img.jpg",
		CloudPath: "/img.jpg",
	})
	require.Error(t, err, "create in a missing project should fail")
	errors.AssertCode(t, err, http.StatusNotFound)

	// Unknown status
	_, err = f.mediaService.Create(f.owner.ID, CreateMediaRequest{
		ProjectID: p.ID,
		Filename:  "img.jpg",
		CloudPath: "/img.jpg",
		Status:    "excellent",
	})
	require.Error(t, err, "unknown status should fail")
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestMediaService_GetForProject(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	// Insert out of order: orderIndex 1 first, then 0, then another 1
	for _, tt := range []struct {
		filename   string
		orderIndex int
	}{
		{"second.jpg", 1},
		{"first.jpg", 0},
		{"third.jpg", 1},
	} {
		_, err := f.mediaService.Create(f.owner.ID, CreateMediaRequest{
			ProjectID:  p.ID,
			Filename:   tt.filename,
			CloudPath:  "/wedding/" + tt.filename,
			OrderIndex: tt.orderIndex,
		})
		require.NoError(t, err, "create should not fail")
	}

	// Any collaborator may list, sorted by orderIndex with stable ties
	assets, err := f.mediaService.GetForProject(f.viewer.ID, p.ID)
	require.NoError(t, err, "list by viewer should not fail")
	if assert.Len(t, assets, 3) {
		assert.Equal(t, "first.jpg", assets[0].Filename)
		assert.Equal(t, "second.jpg", assets[1].Filename)
		assert.Equal(t, "third.jpg", assets[2].Filename)
	}

	_, err = f.mediaService.GetForProject(f.stranger.ID, p.ID)
	require.Error(t, err, "list by stranger should fail")
	errors.AssertCode(t, err, http.StatusForbidden)

	_, err = f.mediaService.GetForProject(f.owner.ID, 100)
	require.Error(t, err, "list of a missing project should fail")
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestMediaService_Update(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	asset, err := f.mediaService.Create(f.owner.ID, CreateMediaRequest{
		ProjectID: p.ID,
		Filename:  "img.jpg",
		CloudPath: "/wedding/img.jpg",
	})
	require.NoError(t, err, "create should not fail")

	orderIndex := 3
	updated, err := f.mediaService.Update(f.editor.ID, asset.ID, UpdateMediaRequest{
		Status:     project.StatusChange,
		Metadata:   &project.Metadata{CustomText: "crop tighter"},
		OrderIndex: &orderIndex,
	})
	require.NoError(t, err, "update by editor should not fail")
	assert.Equal(t, project.StatusChange, updated.Status)
	assert.Equal(t, "crop tighter", updated.Metadata.CustomText)
	assert.Equal(t, 3, updated.OrderIndex)

	// Partial update keeps the rest
	updated, err = f.mediaService.Update(f.owner.ID, asset.ID, UpdateMediaRequest{
		Status: project.StatusGood,
	})
	require.NoError(t, err, "update should not fail")
	assert.Equal(t, "crop tighter", updated.Metadata.CustomText, "metadata should be kept")
	assert.Equal(t, 3, updated.OrderIndex, "order index should be kept")

	// Viewers may not mutate
	_, err = f.mediaService.Update(f.viewer.ID, asset.ID, UpdateMediaRequest{Status: project.StatusDelete})
	require.Error(t, err, "update by viewer should fail")
	errors.AssertCode(t, err, http.StatusForbidden)

	stored, err := f.media.Get(asset.ID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusGood, stored.Status, "refused update should leave no trace")

	_, err = f.mediaService.Update(f.owner.ID, 100, UpdateMediaRequest{})
	require.Error(t, err, "update of a missing asset should fail")
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestMediaService_UpdateStatus(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	asset, err := f.mediaService.Create(f.owner.ID, CreateMediaRequest{
		ProjectID: p.ID,
		Filename:  "img.jpg",
		CloudPath: "/wedding/img.jpg",
	})
	require.NoError(t, err, "create should not fail")

	updated, err := f.mediaService.UpdateStatus(f.editor.ID, asset.ID, project.StatusArchived)
	require.NoError(t, err, "update status by editor should not fail")
	assert.Equal(t, project.StatusArchived, updated.Status)

	_, err = f.mediaService.UpdateStatus(f.owner.ID, asset.ID, "excellent")
	require.Error(t, err, "unknown status should fail")
	errors.AssertCode(t, err, http.StatusBadRequest)

	_, err = f.mediaService.UpdateStatus(f.viewer.ID, asset.ID, project.StatusGood)
	require.Error(t, err, "update status by viewer should fail")
	errors.AssertCode(t, err, http.StatusForbidden)
}

func TestMediaService_Delete(t *testing.T) {
	f := createFixture(t)
	p := f.sharedProject(t)

	asset, err := f.mediaService.Create(f.owner.ID, CreateMediaRequest{
		ProjectID: p.ID,
		Filename:  "img.jpg",
		CloudPath: "/wedding/img.jpg",
	})
	require.NoError(t, err, "create should not fail")

	err = f.mediaService.Delete(f.viewer.ID, asset.ID)
	require.Error(t, err, "delete by viewer should fail")
	errors.AssertCode(t, err, http.StatusForbidden)

	err = f.mediaService.Delete(f.editor.ID, asset.ID)
	require.NoError(t, err, "delete by editor should not fail")

	err = f.mediaService.Delete(f.editor.ID, asset.ID)
	require.Error(t, err, "deleting twice should fail")
	errors.AssertCode(t, err, http.StatusNotFound)
}
