// Package seed reads guide catalogs from CSV or XLSX files and writes them
// back out as spreadsheets.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"plantscan/entities"
)

// ListSep separates items inside the uses and fun facts columns.
const ListSep = ";"

// Header is the column order WriteXLSX produces. Loaders also accept aliases.
var Header = []string{
	"ID", "Name", "ScientificName", "Family", "Description",
	"Sunlight", "Water", "Temperature", "Humidity",
	"NativeRegion", "Uses", "FunFacts", "Image",
	"Popularity", "Difficulty", "Category",
}

// LoadFromFile picks the reader by extension (.csv or .xlsx).
func LoadFromFile(path string) ([]entities.GuidePlant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("guide seed %s: unsupported file type", path)
	}
}

func ReadCSV(r io.Reader) ([]entities.GuidePlant, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return fromRows(rows)
}

func ReadXLSX(r io.Reader) ([]entities.GuidePlant, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func fromRows(rows [][]string) ([]entities.GuidePlant, error) {
	if len(rows) == 0 {
		return nil, errors.New("guide seed is empty")
	}
	head := rows[0]
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cID := findAny("ID", "plant_id")
	cName := findAny("Name", "common_name", "plant")
	cSci := findAny("ScientificName", "scientific", "latin_name", "botanical_name")
	cFam := findAny("Family")
	cDesc := findAny("Description", "about", "notes")
	cSun := findAny("Sunlight", "light", "care_sunlight")
	cWater := findAny("Water", "watering", "care_water")
	cTemp := findAny("Temperature", "temp", "care_temperature")
	cHum := findAny("Humidity", "care_humidity")
	cRegion := findAny("NativeRegion", "region", "origin")
	cUses := findAny("Uses")
	cFacts := findAny("FunFacts", "facts")
	cImg := findAny("Image", "image_url", "photo")
	cPop := findAny("Popularity", "score")
	cDiff := findAny("Difficulty", "level")
	cCat := findAny("Category", "type")

	if cName == -1 || cSci == -1 {
		return nil, fmt.Errorf("guide seed missing required columns. Found headers: %v; need at least: Name, ScientificName", head)
	}

	var out []entities.GuidePlant
	for i, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		if name == "" {
			continue
		}
		id := get(cID)
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		pop, _ := strconv.Atoi(get(cPop))

		out = append(out, entities.GuidePlant{
			ID:             id,
			Name:           name,
			ScientificName: get(cSci),
			Family:         get(cFam),
			Description:    get(cDesc),
			Care: entities.CareInfo{
				Sunlight:    get(cSun),
				Water:       get(cWater),
				Temperature: get(cTemp),
				Humidity:    get(cHum),
			},
			NativeRegion: get(cRegion),
			Uses:         splitList(get(cUses)),
			FunFacts:     splitList(get(cFacts)),
			Image:        get(cImg),
			Popularity:   pop,
			Difficulty:   get(cDiff),
			Category:     get(cCat),
		})
	}
	if len(out) == 0 {
		return nil, errors.New("guide seed has no plant rows")
	}
	return out, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ListSep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
