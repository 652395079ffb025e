package seed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"plantscan/entities"
)

const aliasCSV = "\uFEFFplant_id,Common Name,Latin Name,Family,Light,Watering,Temp,Humidity,Origin,Uses,Facts,Score,Level,Type\n" +
	"p1,Calathea,Goeppertia orbifolia,Marantaceae,Medium Indirect Light,Medium,65-80°F,50-60%,Bolivia,Indoor Decoration; Pet Safe,Leaves fold at night;Likes filtered water,70,Hard,Indoor\n" +
	",Spider Plant,Chlorophytum comosum,Asparagaceae,Bright Indirect Light,Medium,60-75°F,40%,South Africa,,,x,Very Easy,Indoor\n" +
	",,,,,,,,,,,,,\n"

func TestReadCSVAliasesAndBOM(t *testing.T) {
	plants, err := ReadCSV(strings.NewReader(aliasCSV))
	require.NoError(t, err)
	require.Len(t, plants, 2)

	c := plants[0]
	assert.Equal(t, "p1", c.ID)
	assert.Equal(t, "Calathea", c.Name)
	assert.Equal(t, "Goeppertia orbifolia", c.ScientificName)
	assert.Equal(t, entities.CareInfo{Sunlight: "Medium Indirect Light", Water: "Medium", Temperature: "65-80°F", Humidity: "50-60%"}, c.Care)
	assert.Equal(t, "Bolivia", c.NativeRegion)
	assert.Equal(t, []string{"Indoor Decoration", "Pet Safe"}, c.Uses)
	assert.Equal(t, []string{"Leaves fold at night", "Likes filtered water"}, c.FunFacts)
	assert.Equal(t, 70, c.Popularity)
	assert.Equal(t, "Hard", c.Difficulty)

	s := plants[1]
	assert.Equal(t, "2", s.ID, "row number stands in for a missing id")
	assert.Zero(t, s.Popularity)
	assert.Empty(t, s.Uses)
}

func TestReadCSVMissingColumns(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Name,Family\nPothos,Araceae\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ScientificName")

	_, err = ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestWriteXLSXReadsBack(t *testing.T) {
	in := []entities.GuidePlant{{
		ID: "6", Name: "Pothos", ScientificName: "Epipremnum aureum", Family: "Araceae",
		Care:         entities.CareInfo{Sunlight: "Low to Bright Light", Water: "Low to Medium", Temperature: "60-80°F", Humidity: "30-60%"},
		NativeRegion: "Southeast Asia",
		Uses:         []string{"Hanging Baskets", "Trailing Plant"},
		FunFacts:     []string{"Can grow in water indefinitely"},
		Popularity:   90, Difficulty: "Very Easy", Category: "Indoor",
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, in))

	x, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer x.Close()
	assert.Equal(t, []string{SheetName}, x.GetSheetList())
	v, err := x.GetCellValue(SheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Pothos", v)

	out, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadFromFileByExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "plants.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(aliasCSV), 0o644))

	plants, err := LoadFromFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, plants, 2)

	txt := filepath.Join(dir, "plants.txt")
	require.NoError(t, os.WriteFile(txt, []byte(aliasCSV), 0o644))
	_, err = LoadFromFile(txt)
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
