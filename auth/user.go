package auth

import "time"

// User is an account identified by its email address. The password is never
// kept in clear: only the bcrypt hash of password+salt is stored. Linked
// cloud and social accounts are persisted on the user document; the sync and
// publishing flows behind them live outside this service.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	Salt         string `json:"salt"`
	PasswordHash string `json:"passwordHash"`

	CloudAccounts  []CloudAccount  `json:"cloudAccounts"`
	SocialAccounts []SocialAccount `json:"socialAccounts"`

	CreatedAt time.Time `json:"createdAt"`
}

type CloudAccount struct {
	Provider     string    `json:"provider"` // dropbox, google or onedrive
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type SocialAccount struct {
	Platform     string    `json:"platform"` // instagram, twitter or facebook
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	UserID       string    `json:"userId"`
	Username     string    `json:"username"`
}

// UserRepository gives access to the stored users. Get and GetByEmail return
// the zero value (ID == 0) when no user matches.
type UserRepository interface {
	Get(int) (User, error)
	GetByEmail(string) (User, error)
	Upsert(*User) error

	List() ([]User, error)
}
