package inmem

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bobinette/photopilot/auth"
	"github.com/bobinette/photopilot/project"
)

// LoadFixtures seeds the repositories with the development dataset served by
// the mock-db mode: one user, two projects, a few media assets. The password
// of the dev user is "password123"; its hash is computed here so the login
// flow works against the fixtures.
func LoadFixtures(users *UserRepository, projects *ProjectRepository, media *MediaRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	devUser := auth.User{
		ID:           1,
		Name:         "Development User",
		Email:        "dev@example.com",
		Salt:         "",
		PasswordHash: string(hash),
		CreatedAt:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := users.Upsert(&devUser); err != nil {
		return err
	}

	wedding := project.Project{
		ID:            1,
		Name:          "Wedding Shoot 2023",
		CloudPath:     "/wedding_shoot_2023",
		CloudProvider: project.ProviderDropbox,
		OwnerID:       devUser.ID,
		Collaborators: []project.Collaborator{},
		CreatedAt:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	nature := project.Project{
		ID:            2,
		Name:          "Nature Photography",
		CloudPath:     "/nature_photography",
		CloudProvider: project.ProviderGoogle,
		OwnerID:       devUser.ID,
		Collaborators: []project.Collaborator{},
		CreatedAt:     time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, p := range []*project.Project{&wedding, &nature} {
		if err := projects.Upsert(p); err != nil {
			return err
		}
	}

	assets := []project.MediaAsset{
		{
			ID:        1,
			ProjectID: wedding.ID,
			Filename:  "IMG_001.jpg",
			CloudPath: "/wedding_shoot_2023/IMG_001.jpg",
			Status:    project.StatusGood,
			Metadata: project.Metadata{
				AIDescription: "A couple standing under a floral arch",
				SocialPosts:   []project.SocialPost{},
			},
			OrderIndex: 0,
			CreatedAt:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			ProjectID: wedding.ID,
			Filename:  "IMG_002.jpg",
			CloudPath: "/wedding_shoot_2023/IMG_002.jpg",
			Status:    project.StatusGood,
			Metadata: project.Metadata{
				AIDescription: "First dance on a dimly lit floor",
				SocialPosts:   []project.SocialPost{},
			},
			OrderIndex: 1,
			CreatedAt:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        3,
			ProjectID: nature.ID,
			Filename:  "forest.jpg",
			CloudPath: "/nature_photography/forest.jpg",
			Status:    project.StatusGood,
			Metadata: project.Metadata{
				AIDescription: "Morning fog between pine trees",
				SocialPosts:   []project.SocialPost{},
			},
			OrderIndex: 0,
			CreatedAt:  time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range assets {
		if err := media.Upsert(&assets[i]); err != nil {
			return err
		}
	}

	return nil
}
