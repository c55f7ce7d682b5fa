package catalog

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/you-humble/assembly-seeder/internal/model"
)

// Validate checks the catalog invariants and returns every violation joined
// with model.ErrInvalidCatalog. Step time drift is not an error, see TimeDrift.
func Validate(c *model.Catalog) error {
	if c == nil {
		return errors.Join(model.ErrInvalidCatalog, errors.New("catalog is nil"))
	}

	var errs []error
	names := lo.Map(c.Furniture, func(it model.FurnitureItem, _ int) string { return it.Name })
	for _, n := range lo.FindDuplicates(names) {
		errs = append(errs, fmt.Errorf("duplicate furniture %q", n))
	}
	for i := range c.Furniture {
		errs = append(errs, validateFurniture(&c.Furniture[i])...)
	}
	errs = append(errs, validateCategories(c.Categories)...)

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{model.ErrInvalidCatalog}, errs...)...)
}

// TimeDrift is the sum of step estimates minus the item estimate, in minutes.
func TimeDrift(item *model.FurnitureItem) int {
	return item.StepsTime() - item.EstimatedTime
}

func validateFurniture(it *model.FurnitureItem) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("furniture %q: "+format, append([]any{it.Name}, args...)...))
	}

	if it.Name == "" {
		fail("name is empty")
	}
	if !it.Difficulty.Valid() {
		fail("unknown difficulty %q", it.Difficulty)
	}
	if it.Rating < 0 || it.Rating > 5 {
		fail("rating %v out of [0, 5]", it.Rating)
	}
	if it.ReviewCount < 0 {
		fail("negative review count %d", it.ReviewCount)
	}
	if it.EstimatedTime < 0 {
		fail("negative estimated time %d", it.EstimatedTime)
	}

	ids := lo.Map(it.Materials, func(m model.Material, _ int) string { return m.ID })
	for _, id := range lo.FindDuplicates(ids) {
		fail("duplicate material id %q", id)
	}
	for _, m := range it.Materials {
		if m.ID == "" {
			fail("material %q has empty id", m.Name)
		}
		if m.Quantity < 1 {
			fail("material %q quantity %d < 1", m.ID, m.Quantity)
		}
	}

	for i, s := range it.Steps {
		if s.Number != i+1 {
			fail("step at position %d has number %d", i+1, s.Number)
		}
		if !s.Difficulty.Valid() {
			fail("step %d: unknown difficulty %q", s.Number, s.Difficulty)
		}
		if s.EstimatedTime < 0 {
			fail("step %d: negative estimated time %d", s.Number, s.EstimatedTime)
		}
		for _, ref := range lo.Without(s.RequiredMaterials, ids...) {
			fail("step %d requires unknown material %q", s.Number, ref)
		}
	}

	return errs
}

func validateCategories(cs []model.Category) []error {
	var errs []error

	names := lo.Map(cs, func(c model.Category, _ int) string { return c.Name })
	for _, n := range lo.FindDuplicates(names) {
		errs = append(errs, fmt.Errorf("duplicate category %q", n))
	}
	for i, c := range cs {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("category at position %d has empty name", i+1))
		}
	}

	return errs
}
