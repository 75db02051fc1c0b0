package inmem

import (
	"sync"

	"github.com/bobinette/photopilot/auth"
)

// UserRepository is a mutex-guarded in-memory auth.UserRepository. It backs
// the mock-data development mode and the tests.
type UserRepository struct {
	mu    sync.Mutex
	users []auth.User
	maxID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make([]auth.User, 0),
	}
}

func (r *UserRepository) Get(userID int) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return auth.User{}, nil
}

func (r *UserRepository) GetByEmail(email string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return auth.User{}, nil
}

func (r *UserRepository) Upsert(user *auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		r.maxID++
		user.ID = r.maxID
	} else if user.ID > r.maxID {
		r.maxID = user.ID
	}

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}

	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepository) List() ([]auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]auth.User, len(r.users))
	copy(users, r.users)
	return users, nil
}
