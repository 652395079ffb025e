package service

import (
	"errors"

	"plantscan/entities"
)

var ErrPlantNotFound = errors.New("plant not found")

// Filter sentinels sent by the guide page's dropdowns.
const (
	AllFamilies    = "All Families"
	AllRegions     = "All Regions"
	AllLightLevels = "All Light Levels"
	AllWaterLevels = "All Water Levels"
)

const (
	SortAlphabetical = "alphabetical"
	SortPopularity   = "popularity"
	SortDifficulty   = "difficulty"
)

type Query struct {
	Q        string
	Family   string
	Region   string
	Sunlight string
	Water    string
	Sort     string
}

type Facets struct {
	Families []string `json:"families"`
	Regions  []string `json:"regions"`
	Sunlight []string `json:"sunlight"`
	Water    []string `json:"water"`
	Sorts    []string `json:"sorts"`
}

type GuideService interface {
	List(q Query) ([]entities.GuidePlant, error)
	Get(id string) (*entities.GuidePlant, error)
	Facets() (*Facets, error)
}
