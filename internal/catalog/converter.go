package catalog

import (
	"github.com/samber/lo"

	"github.com/you-humble/assembly-seeder/internal/model"
)

func catalogToModel(f *catalogFile) *model.Catalog {
	return &model.Catalog{
		Version: f.Version,
		Furniture: lo.Map(f.Furniture, func(it furnitureYAML, _ int) model.FurnitureItem {
			return furnitureToModel(it)
		}),
		Categories: lo.Map(f.Categories, func(c categoryYAML, _ int) model.Category {
			return model.Category{Name: c.Name, Icon: c.Icon, Order: c.Order}
		}),
	}
}

func furnitureToModel(it furnitureYAML) model.FurnitureItem {
	return model.FurnitureItem{
		Name:          it.Name,
		Category:      it.Category,
		Description:   it.Description,
		ImageURL:      it.ImageURL,
		Model3DURL:    it.Model3DURL,
		Difficulty:    model.Difficulty(it.Difficulty),
		EstimatedTime: it.EstimatedTime,
		Rating:        it.Rating,
		ReviewCount:   it.ReviewCount,
		Tags:          append([]string(nil), it.Tags...),
		// Items are active unless the catalog says otherwise.
		IsActive:  lo.FromPtrOr(it.IsActive, true),
		Materials: lo.Map(it.Materials, func(m materialYAML, _ int) model.Material { return materialToModel(m) }),
		Steps:     lo.Map(it.Steps, func(s stepYAML, _ int) model.Step { return stepToModel(s) }),
	}
}

func materialToModel(m materialYAML) model.Material {
	out := model.Material{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Quantity:    m.Quantity,
		ImageURL:    m.ImageURL,
		Model3DURL:  m.Model3DURL,
		Type:        model.MaterialType(m.Type),
		Substance:   model.Substance(m.Substance),
		Color:       m.Color,
		Notes:       append([]string(nil), m.Notes...),
	}

	if m.Dimensions != nil {
		out.Dimensions = model.Dimensions{
			Length:   m.Dimensions.Length,
			Width:    m.Dimensions.Width,
			Height:   m.Dimensions.Height,
			Diameter: m.Dimensions.Diameter,
		}
	}

	return out
}

func stepToModel(s stepYAML) model.Step {
	return model.Step{
		Number:            s.StepNumber,
		Title:             s.Title,
		Description:       s.Description,
		ImageURL:          s.ImageURL,
		Model3DURL:        s.Model3DURL,
		RequiredMaterials: lo.Ternary(s.RequiredMaterials == nil, []string{}, s.RequiredMaterials),
		Tools:             lo.Ternary(s.Tools == nil, []string{}, s.Tools),
		EstimatedTime:     s.EstimatedTime,
		Difficulty:        model.Difficulty(s.Difficulty),
		Warnings:          append([]string(nil), s.Warnings...),
		Tips:              append([]string(nil), s.Tips...),
		VideoURL:          s.VideoURL,
	}
}
