package project

import "time"

type Status string

const (
	StatusGood     Status = "good"
	StatusChange   Status = "change"
	StatusDelete   Status = "delete"
	StatusArchived Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusGood, StatusChange, StatusDelete, StatusArchived:
		return true
	}
	return false
}

type SocialPostContent struct {
	Title    string   `json:"title"`
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

type SocialPost struct {
	Platform  string            `json:"platform"` // instagram, twitter or facebook
	PostID    string            `json:"post_id"`
	Timestamp time.Time         `json:"timestamp"`
	Content   SocialPostContent `json:"content"`
}

type Metadata struct {
	AIDescription string       `json:"ai_description"`
	CustomText    string       `json:"custom_text"`
	SocialPosts   []SocialPost `json:"social_posts"`
}

// MediaAsset is a single photo of a project. OrderIndex drives the display
// order and is not unique.
type MediaAsset struct {
	ID        int      `json:"id"`
	ProjectID int      `json:"projectId"`
	Filename  string   `json:"filename"`
	CloudPath string   `json:"cloudPath"`
	Status    Status   `json:"status"`
	Metadata  Metadata `json:"metadata"`

	OrderIndex int `json:"orderIndex"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MediaRepository gives access to the stored media assets. Get returns the
// zero value (ID == 0) when no asset matches.
type MediaRepository interface {
	Get(int) (MediaAsset, error)
	// GetForProject returns the project's assets sorted by ascending
	// OrderIndex; assets with the same OrderIndex keep their insertion
	// order.
	GetForProject(int) ([]MediaAsset, error)

	Upsert(*MediaAsset) error
	Delete(int) error
	// DeleteForProject removes every asset of the project. Only the project
	// cascade delete calls it.
	DeleteForProject(int) error
}
