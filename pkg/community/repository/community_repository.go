package repository

import "plantscan/entities"

type PostFilter struct {
	Query string // title or content, case-insensitive
	Tag   string
}

type CommunityRepository interface {
	ListPosts(f PostFilter) ([]entities.Post, error)
	FindPost(id string) (*entities.Post, error)
	// CreatePost stores p, bumps the author's post count and the tag counters.
	CreatePost(p *entities.Post) error
	Vote(id string, up bool) error

	FindMember(id string) (*entities.Member, error)
	TopMembers(limit int) ([]entities.Member, error)
	Tags() ([]entities.TagStat, error)
}
