package inmem

import (
	"sort"
	"sync"

	"github.com/bobinette/photopilot/project"
)

// MediaRepository is a mutex-guarded in-memory project.MediaRepository. The
// backing slice keeps insertion order, which GetForProject relies on for
// stable ties.
type MediaRepository struct {
	mu     sync.Mutex
	assets []project.MediaAsset
	maxID  int
}

func NewMediaRepository() *MediaRepository {
	return &MediaRepository{
		assets: make([]project.MediaAsset, 0),
	}
}

func (r *MediaRepository) Get(id int) (project.MediaAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, asset := range r.assets {
		if asset.ID == id {
			return asset, nil
		}
	}
	return project.MediaAsset{}, nil
}

func (r *MediaRepository) GetForProject(projectID int) ([]project.MediaAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	assets := make([]project.MediaAsset, 0)
	for _, asset := range r.assets {
		if asset.ProjectID == projectID {
			assets = append(assets, asset)
		}
	}

	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].OrderIndex < assets[j].OrderIndex
	})
	return assets, nil
}

func (r *MediaRepository) Upsert(asset *project.MediaAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if asset.ID == 0 {
		r.maxID++
		asset.ID = r.maxID
	} else if asset.ID > r.maxID {
		r.maxID = asset.ID
	}

	for i, existing := range r.assets {
		if existing.ID == asset.ID {
			r.assets[i] = *asset
			return nil
		}
	}

	r.assets = append(r.assets, *asset)
	return nil
}

func (r *MediaRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, asset := range r.assets {
		if asset.ID == id {
			r.assets = append(r.assets[:i], r.assets[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MediaRepository) DeleteForProject(projectID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.assets[:0]
	for _, asset := range r.assets {
		if asset.ProjectID != projectID {
			kept = append(kept, asset)
		}
	}
	r.assets = kept
	return nil
}
