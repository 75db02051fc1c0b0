package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/bobinette/photopilot/auth"
)

type UserRepository struct {
	driver *Driver
}

func NewUserRepository(driver *Driver) *UserRepository {
	return &UserRepository{
		driver: driver,
	}
}

func (r *UserRepository) Get(id int) (auth.User, error) {
	var user auth.User
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &user)
	})
	if err != nil {
		return auth.User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(email string) (auth.User, error) {
	var user auth.User
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u auth.User
			if err := json.Unmarshal(data, &u); err != nil {
				return err
			}

			if u.Email == email {
				user = u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return auth.User{}, err
	}

	return user, nil
}

func (r *UserRepository) Upsert(user *auth.User) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		if user.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			user.ID = int(id)
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put(itob(user.ID), data)
	})
}

func (r *UserRepository) List() ([]auth.User, error) {
	users := make([]auth.User, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var user auth.User
			if err := json.Unmarshal(data, &user); err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
