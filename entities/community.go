package entities

import "time"

type Member struct {
	ID         string   `gorm:"primaryKey" json:"id"`
	Name       string   `json:"name"`
	Username   string   `json:"username"`
	Avatar     string   `json:"avatar"`
	Badges     []string `gorm:"serializer:json" json:"badges"`
	JoinDate   string   `json:"joinDate,omitempty"` // YYYY-MM-DD
	PostsCount int      `json:"postsCount"`
	Reputation int      `gorm:"index" json:"reputation"`
}

type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `gorm:"index" json:"-"`
	Author    Member    `gorm:"foreignKey:AuthorID" json:"author"`
	Timestamp string    `gorm:"-" json:"timestamp"` // relative, filled on read
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Comments  int       `json:"comments"`
	Views     int       `json:"views"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
	Image     string    `json:"image,omitempty"`
	Solved    bool      `json:"solved"`
	Trending  bool      `json:"trending"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// NetVotes is the popularity score used for sorting.
func (p Post) NetVotes() int { return p.Upvotes - p.Downvotes }

type TagStat struct {
	Name     string `gorm:"primaryKey" json:"name"`
	Count    int    `json:"count"`
	Trending bool   `json:"trending"`
}

type Contributor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Username   string   `json:"username"`
	Avatar     string   `json:"avatar"`
	Reputation int      `json:"reputation"`
	Posts      int      `json:"posts"`
	Badges     []string `json:"badges"`
}
