// internal/model/models.go
package model

import (
	"time"
)

// RepositoryRecord is one public repository as returned by the GitHub API.
// Optional text fields are empty when the API sent null.
type RepositoryRecord struct {
	ID          int64
	Name        string `validate:"required"`
	Description string
	Language    string
	StarsCount  int `validate:"gte=0"`
	ForksCount  int `validate:"gte=0"`
	Homepage    string
	URL         string    `validate:"required,url"`
	UpdatedAt   time.Time `validate:"required"`
	Fork        bool
	Archived    bool
}

// TagKind identifies what a card tag displays.
type TagKind string

const (
	TagLanguage TagKind = "language"
	TagStars    TagKind = "stars"
	TagForks    TagKind = "forks"
)

// Tag is a short label shown under a card's description.
type Tag struct {
	Kind  TagKind `json:"kind"`
	Label string  `json:"label"`
}

// Link is an outbound link on a card.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// DisplayCard is the view model of one project card.
type DisplayCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        []Tag  `json:"tags"`
	Primary     Link   `json:"primary"`
	Demo        *Link  `json:"demo,omitempty"`
	Updated     string `json:"updated"`
}

// SkillBar is a decorative skill-level bar declared in the page.
// Style is the bar's declared style attribute; TargetPercent is derived from it.
type SkillBar struct {
	Index         int
	Name          string
	Style         string
	TargetPercent int
}
