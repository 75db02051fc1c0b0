package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bobinette/photopilot/auth"
	"github.com/bobinette/photopilot/errors"
)

type Encoder interface {
	Encode(int) (string, error)
}

type UserService struct {
	repository auth.UserRepository

	encoder Encoder
}

func NewUserService(repo auth.UserRepository, encoder Encoder) *UserService {
	return &UserService{
		repository: repo,
		encoder:    encoder,
	}
}

// Register creates a user and returns it along with a fresh token. The
// password is hashed with bcrypt over password+salt before anything is
// stored.
func (s *UserService) Register(name, email, password string) (auth.User, string, error) {
	existing, err := s.repository.GetByEmail(email)
	if err != nil {
		return auth.User{}, "", err
	} else if existing.ID != 0 {
		return auth.User{}, "", errors.New("email already exists", errors.BadRequest())
	}

	user := auth.User{
		Name:      name,
		Email:     email,
		Salt:      randToken(64),
		CreatedAt: time.Now(),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password+user.Salt), bcrypt.DefaultCost)
	if err != nil {
		return auth.User{}, "", err
	}
	user.PasswordHash = string(hash)

	if err := s.repository.Upsert(&user); err != nil {
		return auth.User{}, "", err
	}

	token, err := s.encoder.Encode(user.ID)
	if err != nil {
		return auth.User{}, "", err
	}

	return user, token, nil
}

func (s *UserService) Login(email, password string) (auth.User, string, error) {
	user, err := s.repository.GetByEmail(email)
	if err != nil {
		return auth.User{}, "", err
	} else if user.ID == 0 {
		return auth.User{}, "", errors.New("email or password incorrect", errors.Unauthorized())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password+user.Salt)); err != nil {
		return auth.User{}, "", errors.New("email or password incorrect", errors.Unauthorized())
	}

	token, err := s.encoder.Encode(user.ID)
	if err != nil {
		return auth.User{}, "", err
	}

	return user, token, nil
}

func (s *UserService) Get(id int) (auth.User, error) {
	user, err := s.repository.Get(id)
	if err != nil {
		return auth.User{}, err
	}

	if user.ID == 0 {
		return auth.User{}, errUserNotFound(id)
	}
	return user, nil
}

// Profile is Get for the token's own user. A valid token whose user vanished
// is treated as unauthenticated, not as an internal error.
func (s *UserService) Profile(callerID int) (auth.User, error) {
	user, err := s.repository.Get(callerID)
	if err != nil {
		return auth.User{}, err
	}

	if user.ID == 0 {
		return auth.User{}, errors.New("unknown user", errors.Unauthorized())
	}
	return user, nil
}
