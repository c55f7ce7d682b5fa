package document

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/assembly-seeder/internal/model"
)

func sampleItem() *model.FurnitureItem {
	return &model.FurnitureItem{
		Name:          "BILLY Bookcase",
		Category:      "Shelves",
		ImageURL:      "https://example.com/billy.jpg",
		Difficulty:    model.DifficultyEasy,
		EstimatedTime: 10,
		Rating:        4.7,
		ReviewCount:   543,
		IsActive:      true,
		Materials: []model.Material{{
			ID:         "mat_104",
			Name:       "Shelf Pins",
			Quantity:   20,
			Type:       model.MaterialTypeBracket,
			Substance:  model.SubstanceMetal,
			Dimensions: model.Dimensions{Length: lo.ToPtr(5.0), Diameter: lo.ToPtr(5.0)},
		}},
		Steps: []model.Step{{
			Number:            1,
			Title:             "Install Shelves",
			RequiredMaterials: []string{"mat_104"},
			EstimatedTime:     10,
			Difficulty:        model.DifficultyEasy,
		}},
	}
}

func TestFurnitureBSON(t *testing.T) {
	t.Parallel()

	b, err := bson.Marshal(FurnitureFromModel(sampleItem()))
	require.NoError(t, err)
	raw := bson.Raw(b)

	for _, k := range []string{"name", "imageUrl", "estimatedTime", "reviewCount", "isActive", "materials", "steps", "tags"} {
		_, err := raw.LookupErr(k)
		assert.NoError(t, err, k)
	}
	for _, k := range []string{"_id", "model3dUrl", "createdAt", "updatedAt"} {
		_, err := raw.LookupErr(k)
		assert.Error(t, err, k)
	}

	assert.Equal(t, bson.TypeArray, raw.Lookup("tags").Type)
	assert.Equal(t, "metal", raw.Lookup("materials", "0", "material").StringValue())
	assert.Equal(t, 5.0, raw.Lookup("materials", "0", "dimensions", "diameter").Double())
	_, err = raw.LookupErr("materials", "0", "dimensions", "width")
	assert.Error(t, err)

	assert.Equal(t, "mat_104", raw.Lookup("steps", "0", "requiredMaterials", "0").StringValue())
	assert.Equal(t, bson.TypeArray, raw.Lookup("steps", "0", "tools").Type)
	_, err = raw.LookupErr("steps", "0", "videoUrl")
	assert.Error(t, err)
}

func TestFurnitureDynamo(t *testing.T) {
	t.Parallel()

	av, err := attributevalue.MarshalMap(FurnitureFromModel(sampleItem()))
	require.NoError(t, err)

	assert.Equal(t, &types.AttributeValueMemberS{Value: "BILLY Bookcase"}, av["name"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "543"}, av["reviewCount"])
	assert.Equal(t, &types.AttributeValueMemberBOOL{Value: true}, av["isActive"])
	assert.NotContains(t, av, "model3dUrl")
	assert.NotContains(t, av, "createdAt")

	var back Furniture
	require.NoError(t, attributevalue.UnmarshalMap(av, &back))
	assert.Equal(t, sampleItem(), withEmptyLists(FurnitureToModel(&back)))
}

func TestNilConversions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FurnitureFromModel(nil))
	assert.Nil(t, FurnitureToModel(nil))
	assert.Nil(t, CategoryFromModel(nil))
	assert.Nil(t, CategoryToModel(nil))

	c := &model.Category{Name: "Beds", Icon: "bed", Order: 1}
	assert.Equal(t, c, CategoryToModel(CategoryFromModel(c)))
}

// withEmptyLists drops the [] placeholders written for absent lists.
func withEmptyLists(f *model.FurnitureItem) *model.FurnitureItem {
	if len(f.Tags) == 0 {
		f.Tags = nil
	}
	for i := range f.Materials {
		if len(f.Materials[i].Notes) == 0 {
			f.Materials[i].Notes = nil
		}
	}
	for i := range f.Steps {
		s := &f.Steps[i]
		if len(s.Tools) == 0 {
			s.Tools = nil
		}
		if len(s.Warnings) == 0 {
			s.Warnings = nil
		}
		if len(s.Tips) == 0 {
			s.Tips = nil
		}
	}
	return f
}
