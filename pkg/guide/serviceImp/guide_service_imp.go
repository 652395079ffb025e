package serviceImp

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"plantscan/entities"
	"plantscan/pkg/guide/repository"
	"plantscan/pkg/guide/service"
)

type guideSvc struct{ r repository.GuideRepository }

func NewGuideService(r repository.GuideRepository) service.GuideService { return &guideSvc{r} }

var difficultyRank = map[string]int{
	"Very Easy": 0,
	"Easy":      1,
	"Moderate":  2,
	"Hard":      3,
}

func rank(d string) int {
	if v, ok := difficultyRank[d]; ok {
		return v
	}
	return len(difficultyRank)
}

// unset maps an "All ..." dropdown value to no filter.
func unset(v, all string) string {
	v = strings.TrimSpace(v)
	if v == all {
		return ""
	}
	return v
}

func (s *guideSvc) List(q service.Query) ([]entities.GuidePlant, error) {
	plants, err := s.r.List(repository.PlantFilter{
		Query:    q.Q,
		Family:   unset(q.Family, service.AllFamilies),
		Region:   unset(q.Region, service.AllRegions),
		Sunlight: unset(q.Sunlight, service.AllLightLevels),
		Water:    unset(q.Water, service.AllWaterLevels),
	})
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	SortPlants(plants, q.Sort)
	return plants, nil
}

// SortPlants orders plants in place. Unknown keys fall back to alphabetical.
func SortPlants(plants []entities.GuidePlant, key string) {
	switch key {
	case service.SortPopularity:
		sort.SliceStable(plants, func(i, j int) bool { return plants[i].Popularity > plants[j].Popularity })
	case service.SortDifficulty:
		sort.SliceStable(plants, func(i, j int) bool {
			return rank(plants[i].Difficulty) < rank(plants[j].Difficulty)
		})
	default:
		sort.SliceStable(plants, func(i, j int) bool { return plants[i].Name < plants[j].Name })
	}
}

func (s *guideSvc) Get(id string) (*entities.GuidePlant, error) {
	p, err := s.r.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", service.ErrPlantNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get plant %s: %w", id, err)
	}
	return p, nil
}

func (s *guideSvc) Facets() (*service.Facets, error) {
	families, err := s.r.Distinct("family")
	if err != nil {
		return nil, err
	}
	regions, err := s.r.Distinct("native_region")
	if err != nil {
		return nil, err
	}
	light, err := s.r.Distinct("care_sunlight")
	if err != nil {
		return nil, err
	}
	water, err := s.r.Distinct("care_water")
	if err != nil {
		return nil, err
	}
	return &service.Facets{
		Families: append([]string{service.AllFamilies}, families...),
		Regions:  append([]string{service.AllRegions}, splitRegions(regions)...),
		Sunlight: append([]string{service.AllLightLevels}, light...),
		Water:    append([]string{service.AllWaterLevels}, water...),
		Sorts:    []string{service.SortAlphabetical, service.SortPopularity, service.SortDifficulty},
	}, nil
}

// splitRegions turns "India, Southeast Asia" style values into single regions.
func splitRegions(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			out = append(out, part)
		}
	}
	sort.Strings(out)
	return out
}
