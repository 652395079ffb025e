package repositoryImp

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"plantscan/entities"
	"plantscan/pkg/community/repository"
)

type communityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CommunityRepository { return &communityRepo{db} }

func (r *communityRepo) ListPosts(f repository.PostFilter) ([]entities.Post, error) {
	q := r.db.Preload("Author")
	if t := strings.TrimSpace(f.Tag); t != "" {
		q = q.Where("EXISTS (SELECT 1 FROM json_each(posts.tags) WHERE json_each.value = ?)", t)
	}

	var rows []entities.Post
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	// SQLite LOWER only folds ASCII, so text search happens here
	needle := strings.ToLower(strings.TrimSpace(f.Query))
	if needle == "" {
		return rows, nil
	}
	out := rows[:0]
	for _, p := range rows {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *communityRepo) FindPost(id string) (*entities.Post, error) {
	var p entities.Post
	if err := r.db.Preload("Author").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *communityRepo) CreatePost(p *entities.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.Member{}).
			Where("id = ?", p.AuthorID).
			UpdateColumn("posts_count", gorm.Expr("posts_count + ?", 1)).Error; err != nil {
			return err
		}
		for _, t := range p.Tags {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.Assignments(map[string]any{"count": gorm.Expr("tag_stats.count + 1")}),
			}).Create(&entities.TagStat{Name: t, Count: 1}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Vote is a single UPDATE so concurrent votes never lose increments.
func (r *communityRepo) Vote(id string, up bool) error {
	col := "downvotes"
	if up {
		col = "upvotes"
	}
	res := r.db.Model(&entities.Post{}).
		Where("id = ?", id).
		UpdateColumn(col, gorm.Expr(col+" + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *communityRepo) FindMember(id string) (*entities.Member, error) {
	var m entities.Member
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *communityRepo) TopMembers(limit int) ([]entities.Member, error) {
	var out []entities.Member
	err := r.db.Order("reputation DESC").Order("id").Limit(limit).Find(&out).Error
	return out, err
}

func (r *communityRepo) Tags() ([]entities.TagStat, error) {
	var out []entities.TagStat
	err := r.db.Order("trending DESC").Order("count DESC").Order("name").Find(&out).Error
	return out, err
}
