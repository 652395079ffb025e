package repository

import "plantscan/entities"

// PlantFilter narrows a catalog listing. Empty fields do not filter.
type PlantFilter struct {
	Query    string // name or scientific name, case-insensitive
	Family   string
	Region   string // substring of native region
	Sunlight string
	Water    string
}

type GuideRepository interface {
	List(f PlantFilter) ([]entities.GuidePlant, error)
	FindByID(id string) (*entities.GuidePlant, error)
	Distinct(column string) ([]string, error)
}
