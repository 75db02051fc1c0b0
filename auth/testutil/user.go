package testutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/photopilot/auth"
)

// TestUserRepository verifies the UserRepository contract. It is meant to be
// called by every implementation's test file.
func TestUserRepository(t *testing.T, repo auth.UserRepository) {
	users := []*auth.User{
		{
			Name:         "Ana",
			Email:        "ana@example.com",
			Salt:         "salt-ana",
			PasswordHash: "hash-ana",
		},
		{
			Name:         "Bob",
			Email:        "bob@example.com",
			Salt:         "salt-bob",
			PasswordHash: "hash-bob",
			CloudAccounts: []auth.CloudAccount{
				{Provider: "dropbox", AccessToken: "at", RefreshToken: "rt"},
			},
		},
	}

	// Insert all the users, ids should be assigned and distinct
	ids := make([]int, len(users))
	for i, user := range users {
		err := repo.Upsert(user)
		require.NoError(t, err, "insert %s should not fail", user.Email)
		require.NotEqual(t, 0, user.ID, "id should be set by insert")
		ids[i] = user.ID
	}
	sort.Ints(ids)
	for i := 0; i < len(ids)-1; i++ {
		require.NotEqual(t, ids[i], ids[i+1], "all ids should be different")
	}

	// Get a user by its id
	for _, user := range users {
		retrieved, err := repo.Get(user.ID)
		if assert.NoError(t, err, "get should not fail") {
			assert.Equal(t, *user, retrieved, "get %s", user.Email)
		}
	}

	// Get a user that does not exist
	retrieved, err := repo.Get(100)
	if assert.NoError(t, err, "get missing should not fail") {
		assert.Equal(t, 0, retrieved.ID, "missing user should be the zero value")
	}

	// Get by email
	retrieved, err = repo.GetByEmail("bob@example.com")
	if assert.NoError(t, err, "get by email should not fail") {
		assert.Equal(t, users[1].ID, retrieved.ID, "get by email should find bob")
	}

	retrieved, err = repo.GetByEmail("nobody@example.com")
	if assert.NoError(t, err, "get by missing email should not fail") {
		assert.Equal(t, 0, retrieved.ID, "missing email should give the zero value")
	}

	// Update a user
	users[0].Name = "Ana Maria"
	err = repo.Upsert(users[0])
	require.NoError(t, err, "update should not fail")
	retrieved, err = repo.Get(users[0].ID)
	if assert.NoError(t, err, "get after update should not fail") {
		assert.Equal(t, "Ana Maria", retrieved.Name, "name should be updated")
	}

	// List all users
	all, err := repo.List()
	if assert.NoError(t, err, "list should not fail") {
		assert.Len(t, all, len(users), "list should contain all the users")
	}
}
