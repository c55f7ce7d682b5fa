package model

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

type MaterialType string

const (
	MaterialTypePanel   MaterialType = "panel"
	MaterialTypeScrew   MaterialType = "screw"
	MaterialTypeBracket MaterialType = "bracket"
	MaterialTypeDowel   MaterialType = "dowel"
)

type Substance string

const (
	SubstanceWood          Substance = "wood"
	SubstanceMetal         Substance = "metal"
	SubstanceFiberboard    Substance = "fiberboard"
	SubstanceParticleboard Substance = "particleboard"
)

type FurnitureItem struct {
	// Display name; also the natural key for upserts.
	Name string
	// Category tag, loosely matching Category.Name.
	Category    string
	Description string
	ImageURL    string
	Model3DURL  string
	Difficulty  Difficulty
	// Estimated assembly time in minutes.
	EstimatedTime int
	// Average rating in [0, 5].
	Rating      float64
	ReviewCount int
	Tags        []string
	IsActive    bool
	Materials   []Material
	Steps       []Step
	// Assigned by the store at write time.
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// MaterialByID looks a material up by its per-item identifier.
func (f *FurnitureItem) MaterialByID(id string) (Material, bool) {
	for _, m := range f.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// StepsTime is the sum of per-step estimates in minutes.
func (f *FurnitureItem) StepsTime() int {
	total := 0
	for _, s := range f.Steps {
		total += s.EstimatedTime
	}
	return total
}

type Material struct {
	// Identifier unique within the owning item, referenced by Step.RequiredMaterials.
	ID          string
	Name        string
	Description string
	Quantity    int
	ImageURL    string
	Model3DURL  string
	Type        MaterialType
	Dimensions  Dimensions
	Substance   Substance
	Color       string
	Notes       []string
}

// Dimensions is sparse: only the measures that apply to the part type are set.
// Values are in millimetres.
type Dimensions struct {
	Length   *float64
	Width    *float64
	Height   *float64
	Diameter *float64
}

func (d Dimensions) Empty() bool {
	return d.Length == nil && d.Width == nil && d.Height == nil && d.Diameter == nil
}

type Step struct {
	// 1-based position in the assembly sequence.
	Number            int
	Title             string
	Description       string
	ImageURL          string
	Model3DURL        string
	RequiredMaterials []string
	Tools             []string
	// Estimated time in minutes.
	EstimatedTime int
	Difficulty    Difficulty
	Warnings      []string
	Tips          []string
	VideoURL      string
}
