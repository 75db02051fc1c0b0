package bolt

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/boltdb/bolt"

	"github.com/bobinette/photopilot/project"
)

type MediaRepository struct {
	driver *Driver
}

func NewMediaRepository(driver *Driver) *MediaRepository {
	return &MediaRepository{
		driver: driver,
	}
}

func (r *MediaRepository) Get(id int) (project.MediaAsset, error) {
	var asset project.MediaAsset
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(mediaBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &asset)
	})
	if err != nil {
		return project.MediaAsset{}, err
	}

	return asset, nil
}

func (r *MediaRepository) GetForProject(projectID int) ([]project.MediaAsset, error) {
	assets := make([]project.MediaAsset, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(mediaBucket)

		// The cursor iterates on ascending ids, i.e. insertion order, which
		// the stable sort below keeps for equal order indexes.
		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var asset project.MediaAsset
			if err := json.Unmarshal(data, &asset); err != nil {
				return err
			}

			if asset.ProjectID == projectID {
				assets = append(assets, asset)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].OrderIndex < assets[j].OrderIndex
	})
	return assets, nil
}

func (r *MediaRepository) Upsert(asset *project.MediaAsset) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(mediaBucket)

		if asset.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			asset.ID = int(id)
		}

		data, err := json.Marshal(asset)
		if err != nil {
			return err
		}

		return bucket.Put(itob(asset.ID), data)
	})
}

func (r *MediaRepository) Delete(id int) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(mediaBucket)
		return bucket.Delete(itob(id))
	})
}

func (r *MediaRepository) DeleteForProject(projectID int) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(mediaBucket)

		keys := make([][]byte, 0)
		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var asset project.MediaAsset
			if err := json.Unmarshal(data, &asset); err != nil {
				return err
			}

			if asset.ProjectID == projectID {
				key := make([]byte, len(id))
				copy(key, id)
				keys = append(keys, key)
			}
		}

		for _, key := range keys {
			if err := bucket.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
