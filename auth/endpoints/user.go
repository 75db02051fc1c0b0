package endpoints

import (
	"context"
	"time"

	"github.com/bobinette/photopilot/auth"
	"github.com/bobinette/photopilot/auth/services"
)

type UserEndpoint struct {
	service *services.UserService
}

func NewUserEndpoint(s *services.UserService) UserEndpoint {
	return UserEndpoint{
		service: s,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user: no salt, no hash, no linked
// account tokens.
type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	CloudProviders  []string `json:"cloudProviders"`
	SocialPlatforms []string `json:"socialPlatforms"`

	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(user auth.User) UserResponse {
	res := UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		CloudProviders:  make([]string, 0, len(user.CloudAccounts)),
		SocialPlatforms: make([]string, 0, len(user.SocialAccounts)),
		CreatedAt:       user.CreatedAt,
	}
	for _, account := range user.CloudAccounts {
		res.CloudProviders = append(res.CloudProviders, account.Provider)
	}
	for _, account := range user.SocialAccounts {
		res.SocialPlatforms = append(res.SocialPlatforms, account.Platform)
	}
	return res
}

func (ep UserEndpoint) Register(_ context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(RegisterRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	user, token, err := ep.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return created(map[string]interface{}{
		"user":  NewUserResponse(user),
		"token": token,
	}), nil
}

func (ep UserEndpoint) Login(_ context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(LoginRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	user, token, err := ep.service.Login(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"user":  NewUserResponse(user),
		"token": token,
	}, nil
}

func (ep UserEndpoint) Me(ctx context.Context, _ interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := ep.service.Profile(callerID)
	if err != nil {
		return nil, err
	}

	return NewUserResponse(user), nil
}
