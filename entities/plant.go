package entities

import "time"

type CareInfo struct {
	Sunlight    string `json:"sunlight" validate:"required"`
	Water       string `json:"water" validate:"required"`
	Temperature string `json:"temperature" validate:"required"`
	Humidity    string `json:"humidity" validate:"required"`
}

// PlantRecord is the shape the identify prompt asks for. Strict mode decodes
// model output into it; it is never stored.
type PlantRecord struct {
	Name           string   `json:"name" validate:"required"`
	ScientificName string   `json:"scientificName" validate:"required"`
	Family         string   `json:"family"`
	Description    string   `json:"description"`
	Care           CareInfo `json:"care"`
	NativeRegion   string   `json:"nativeRegion"`
	Uses           []string `json:"uses"`
	FunFacts       []string `json:"funFacts"`
}

// GuidePlant is a plant guide catalog entry.
type GuidePlant struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"index" json:"name"`
	ScientificName string    `json:"scientificName"`
	Family         string    `gorm:"index" json:"family"`
	Description    string    `json:"description"`
	Care           CareInfo  `gorm:"embedded;embeddedPrefix:care_" json:"care"`
	NativeRegion   string    `json:"nativeRegion"`
	Uses           []string  `gorm:"serializer:json" json:"uses"`
	FunFacts       []string  `gorm:"serializer:json" json:"funFacts"`
	Image          string    `json:"image"`
	Popularity     int       `json:"popularity"`
	Difficulty     string    `json:"difficulty"` // Very Easy|Easy|Moderate|Hard
	Category       string    `json:"category"`   // Indoor|Succulent|...
	CreatedAt      time.Time `json:"-"`
}
