package serviceImp

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"plantscan/database"
	"plantscan/entities"
	"plantscan/pkg/community/repository"
	"plantscan/pkg/community/service"
	"plantscan/pkg/logger"
)

type CommunitySvc struct {
	r        repository.CommunityRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewCommunityService(r repository.CommunityRepository) *CommunitySvc {
	return &CommunitySvc{r: r, validate: validator.New(), now: time.Now}
}

// stamp fills the display timestamp relative to now.
func (s *CommunitySvc) stamp(posts []entities.Post) {
	now := s.now()
	for i := range posts {
		posts[i].Timestamp = humanize.RelTime(posts[i].CreatedAt, now, "ago", "from now")
	}
}

func (s *CommunitySvc) ListPosts(q service.PostQuery) ([]entities.Post, error) {
	posts, err := s.r.ListPosts(repository.PostFilter{Query: q.Q, Tag: q.Tag})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	SortPosts(posts, q.Sort)
	s.stamp(posts)
	return posts, nil
}

// SortPosts orders posts in place. Input is expected newest first.
func SortPosts(posts []entities.Post, key string) {
	switch key {
	case service.SortPopular:
		sort.SliceStable(posts, func(i, j int) bool { return posts[i].NetVotes() > posts[j].NetVotes() })
	case service.SortTrending:
		sort.SliceStable(posts, func(i, j int) bool { return posts[i].Trending && !posts[j].Trending })
	}
}

func (s *CommunitySvc) CreatePost(authorID string, in service.NewPost) (*entities.Post, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = PlainText(in.Content)
	in.Image = strings.TrimSpace(in.Image)
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidPost, err)
	}
	if _, err := s.Member(authorID); err != nil {
		return nil, err
	}

	p := &entities.Post{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		AuthorID:  authorID,
		Tags:      ParseTags(in.Tags),
		Image:     in.Image,
		CreatedAt: s.now(),
	}
	if err := s.r.CreatePost(p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	logger.For("community").WithField("post_id", p.ID).WithField("author", authorID).Info("post created")
	return s.get(p.ID)
}

func (s *CommunitySvc) get(id string) (*entities.Post, error) {
	p, err := s.r.FindPost(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", service.ErrPostNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	posts := []entities.Post{*p}
	s.stamp(posts)
	return &posts[0], nil
}

func (s *CommunitySvc) vote(id string, up bool) (*entities.Post, error) {
	err := s.r.Vote(id, up)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", service.ErrPostNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("vote %s: %w", id, err)
	}
	return s.get(id)
}

func (s *CommunitySvc) Upvote(id string) (*entities.Post, error)   { return s.vote(id, true) }
func (s *CommunitySvc) Downvote(id string) (*entities.Post, error) { return s.vote(id, false) }

func (s *CommunitySvc) Tags() ([]entities.TagStat, error) { return s.r.Tags() }

func (s *CommunitySvc) Contributors(limit int) ([]entities.Contributor, error) {
	if limit <= 0 {
		limit = 3
	}
	members, err := s.r.TopMembers(limit)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Contributor, 0, len(members))
	for _, m := range members {
		out = append(out, entities.Contributor{
			ID:         m.ID,
			Name:       m.Name,
			Username:   m.Username,
			Avatar:     m.Avatar,
			Reputation: m.Reputation,
			Posts:      m.PostsCount,
			Badges:     m.Badges,
		})
	}
	return out, nil
}

func (s *CommunitySvc) Member(id string) (*entities.Member, error) {
	m, err := s.r.FindMember(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", service.ErrMemberNotFound, id)
	}
	return m, err
}

func (s *CommunitySvc) Guidelines() []string { return database.Guidelines() }

// ParseTags splits "Fiddle Leaf Fig, help" into ["fiddle-leaf-fig", "help"].
func ParseTags(raw string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.Join(strings.Fields(strings.ToLower(t)), "-")
		t = strings.TrimLeft(t, "#")
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
