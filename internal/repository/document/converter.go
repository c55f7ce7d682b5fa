package document

import (
	"github.com/samber/lo"

	"github.com/you-humble/assembly-seeder/internal/model"
)

func FurnitureFromModel(f *model.FurnitureItem) *Furniture {
	if f == nil {
		return nil
	}

	return &Furniture{
		Name:          f.Name,
		Category:      f.Category,
		Description:   f.Description,
		ImageURL:      f.ImageURL,
		Model3DURL:    f.Model3DURL,
		Difficulty:    string(f.Difficulty),
		EstimatedTime: f.EstimatedTime,
		Rating:        f.Rating,
		ReviewCount:   f.ReviewCount,
		Tags:          nonNil(f.Tags),
		IsActive:      f.IsActive,
		Materials:     lo.Map(f.Materials, func(m model.Material, _ int) Material { return materialFromModel(m) }),
		Steps:         lo.Map(f.Steps, func(s model.Step, _ int) Step { return stepFromModel(s) }),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func FurnitureToModel(d *Furniture) *model.FurnitureItem {
	if d == nil {
		return nil
	}

	return &model.FurnitureItem{
		Name:          d.Name,
		Category:      d.Category,
		Description:   d.Description,
		ImageURL:      d.ImageURL,
		Model3DURL:    d.Model3DURL,
		Difficulty:    model.Difficulty(d.Difficulty),
		EstimatedTime: d.EstimatedTime,
		Rating:        d.Rating,
		ReviewCount:   d.ReviewCount,
		Tags:          d.Tags,
		IsActive:      d.IsActive,
		Materials:     lo.Map(d.Materials, func(m Material, _ int) model.Material { return materialToModel(m) }),
		Steps:         lo.Map(d.Steps, func(s Step, _ int) model.Step { return stepToModel(s) }),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func CategoryFromModel(c *model.Category) *Category {
	if c == nil {
		return nil
	}
	return &Category{Name: c.Name, Icon: c.Icon, Order: c.Order}
}

func CategoryToModel(d *Category) *model.Category {
	if d == nil {
		return nil
	}
	return &model.Category{Name: d.Name, Icon: d.Icon, Order: d.Order}
}

func materialFromModel(m model.Material) Material {
	out := Material{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Quantity:    m.Quantity,
		ImageURL:    m.ImageURL,
		Model3DURL:  m.Model3DURL,
		Type:        string(m.Type),
		Material:    string(m.Substance),
		Color:       m.Color,
		Notes:       nonNil(m.Notes),
	}

	if !m.Dimensions.Empty() {
		out.Dimensions = &Dimensions{
			Length:   m.Dimensions.Length,
			Width:    m.Dimensions.Width,
			Height:   m.Dimensions.Height,
			Diameter: m.Dimensions.Diameter,
		}
	}

	return out
}

func materialToModel(d Material) model.Material {
	out := model.Material{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Quantity:    d.Quantity,
		ImageURL:    d.ImageURL,
		Model3DURL:  d.Model3DURL,
		Type:        model.MaterialType(d.Type),
		Substance:   model.Substance(d.Material),
		Color:       d.Color,
		Notes:       d.Notes,
	}

	if d.Dimensions != nil {
		out.Dimensions = model.Dimensions{
			Length:   d.Dimensions.Length,
			Width:    d.Dimensions.Width,
			Height:   d.Dimensions.Height,
			Diameter: d.Dimensions.Diameter,
		}
	}

	return out
}

func stepFromModel(s model.Step) Step {
	return Step{
		StepNumber:        s.Number,
		Title:             s.Title,
		Description:       s.Description,
		ImageURL:          s.ImageURL,
		Model3DURL:        s.Model3DURL,
		RequiredMaterials: nonNil(s.RequiredMaterials),
		Tools:             nonNil(s.Tools),
		EstimatedTime:     s.EstimatedTime,
		Difficulty:        string(s.Difficulty),
		Warnings:          nonNil(s.Warnings),
		Tips:              nonNil(s.Tips),
		VideoURL:          s.VideoURL,
	}
}

func stepToModel(d Step) model.Step {
	return model.Step{
		Number:            d.StepNumber,
		Title:             d.Title,
		Description:       d.Description,
		ImageURL:          d.ImageURL,
		Model3DURL:        d.Model3DURL,
		RequiredMaterials: d.RequiredMaterials,
		Tools:             d.Tools,
		EstimatedTime:     d.EstimatedTime,
		Difficulty:        model.Difficulty(d.Difficulty),
		Warnings:          d.Warnings,
		Tips:              d.Tips,
		VideoURL:          d.VideoURL,
	}
}

// nonNil stores empty lists as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
