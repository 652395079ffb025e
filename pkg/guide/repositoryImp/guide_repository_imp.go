package repositoryImp

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"plantscan/entities"
	"plantscan/pkg/guide/repository"
)

type guideRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GuideRepository { return &guideRepo{db} }

var distinctColumns = map[string]bool{
	"family":        true,
	"native_region": true,
	"care_sunlight": true,
	"care_water":    true,
	"difficulty":    true,
	"category":      true,
}

func (r *guideRepo) List(f repository.PlantFilter) ([]entities.GuidePlant, error) {
	q := r.db.Model(&entities.GuidePlant{})
	if f.Family != "" {
		q = q.Where("family = ?", f.Family)
	}
	if f.Region != "" {
		q = q.Where("instr(native_region, ?) > 0", f.Region)
	}
	if f.Sunlight != "" {
		q = q.Where("care_sunlight = ?", f.Sunlight)
	}
	if f.Water != "" {
		q = q.Where("care_water = ?", f.Water)
	}

	// catalog order; callers sort stably on top of it
	var rows []entities.GuidePlant
	if err := q.Order("rowid").Find(&rows).Error; err != nil {
		return nil, err
	}

	// SQLite LOWER only folds ASCII, so text search happens here
	needle := strings.ToLower(strings.TrimSpace(f.Query))
	if needle == "" {
		return rows, nil
	}
	out := rows[:0]
	for _, p := range rows {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.ScientificName), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *guideRepo) FindByID(id string) (*entities.GuidePlant, error) {
	var p entities.GuidePlant
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *guideRepo) Distinct(column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("distinct: unsupported column %q", column)
	}
	var out []string
	err := r.db.Model(&entities.GuidePlant{}).
		Where(column+" <> ''").
		Distinct(column).
		Order(column).
		Pluck(column, &out).Error
	return out, err
}
