package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/bobinette/photopilot/project"
)

type ProjectRepository struct {
	driver *Driver
}

func NewProjectRepository(driver *Driver) *ProjectRepository {
	return &ProjectRepository{
		driver: driver,
	}
}

func (r *ProjectRepository) Get(id int) (project.Project, error) {
	var p project.Project
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(projectBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &p)
	})
	if err != nil {
		return project.Project{}, err
	}

	return p, nil
}

func (r *ProjectRepository) GetForUser(userID int) ([]project.Project, error) {
	projects := make([]project.Project, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(projectBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var p project.Project
			if err := json.Unmarshal(data, &p); err != nil {
				return err
			}

			if project.CapabilityOf(userID, p).CanRead() {
				projects = append(projects, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *ProjectRepository) Upsert(p *project.Project) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(projectBucket)

		if p.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			p.ID = int(id)
		}

		data, err := json.Marshal(p)
		if err != nil {
			return err
		}

		return bucket.Put(itob(p.ID), data)
	})
}

func (r *ProjectRepository) Delete(id int) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(projectBucket)
		return bucket.Delete(itob(id))
	})
}
