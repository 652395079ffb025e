package service

import (
	"errors"

	"plantscan/entities"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidPost    = errors.New("invalid post")
)

const (
	SortNewest   = "newest"
	SortPopular  = "popular"
	SortTrending = "trending"
)

type PostQuery struct {
	Q    string
	Tag  string
	Sort string
}

// NewPost is the create-post form. Tags is comma separated.
type NewPost struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Tags    string `json:"tags"`
	Image   string `json:"image" validate:"omitempty,url"`
}

type CommunityService interface {
	ListPosts(q PostQuery) ([]entities.Post, error)
	CreatePost(authorID string, in NewPost) (*entities.Post, error)
	Upvote(id string) (*entities.Post, error)
	Downvote(id string) (*entities.Post, error)
	Tags() ([]entities.TagStat, error)
	Contributors(limit int) ([]entities.Contributor, error)
	Member(id string) (*entities.Member, error)
	Guidelines() []string
}
