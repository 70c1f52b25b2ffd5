package store

import (
	"errors"
	"testing"

	"nexzen-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildProduct(t *testing.T) {
	p, err := BuildProduct(models.Document{
		"name":        "Cargo Pants",
		"description": "Cotton twill",
		"price":       "59.5",
		"category":    "Men",
		"subCategory": "Bottomwear",
		"sizes":       []string{"30", "32"},
		"sizeChart":   []any{map[string]any{"size": "30"}},
		"bestseller":  true,
		"date":        int64(1714559400000),
		"image1":      "https://res.cloudinary.com/demo/image1.png",
		"image2":      "",
		"stock":       "12",
	})
	require.NoError(t, err)

	assert.Equal(t, "Cargo Pants", p.Name)
	assert.Equal(t, 59.5, p.Price)
	assert.Equal(t, []string{"30", "32"}, p.Sizes)
	assert.Len(t, p.SizeChart, 1)
	assert.True(t, p.Bestseller)
	assert.Equal(t, int64(1714559400000), p.Date)
	assert.Equal(t, "https://res.cloudinary.com/demo/image1.png", p.Image1)
	assert.Equal(t, "", p.Image2)
	assert.True(t, p.ID.IsZero())
}

func TestBuildProductRequiresName(t *testing.T) {
	_, err := BuildProduct(models.Document{"price": "10"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Path)
}

func TestBuildProductDefaultsLists(t *testing.T) {
	p, err := BuildProduct(models.Document{"name": "Cap"})
	require.NoError(t, err)

	assert.Equal(t, []string{}, p.Sizes)
	assert.Equal(t, []any{}, p.SizeChart)
}

func TestBuildUpdateCastsKnownPaths(t *testing.T) {
	set, err := BuildUpdate(models.Document{
		"price":      12.0,
		"sizes":      []any{"S", 42.0},
		"bestseller": "no",
		"_id":        "665f1c2e8b3f4a0012345678",
		"color":      "red",
		"image3":     nil,
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"price":      12.0,
		"sizes":      []string{"S", "42"},
		"bestseller": false,
		"image3":     nil,
	}, set)
}

func TestBuildUpdateSingleSizeString(t *testing.T) {
	set, err := BuildUpdate(models.Document{"sizes": "S|M"})
	require.NoError(t, err)
	assert.Equal(t, []string{"S|M"}, set["sizes"])
}

func TestBlankNumberClearsValue(t *testing.T) {
	set, err := BuildUpdate(models.Document{"price": "", "date": " "})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"price": nil, "date": nil}, set)

	p, err := BuildProduct(models.Document{"name": "Cap", "price": ""})
	require.NoError(t, err)
	assert.Zero(t, p.Price)
}

func TestBuildUpdateCastFailures(t *testing.T) {
	cases := []struct {
		name  string
		patch models.Document
		path  string
	}{
		{name: "price text", patch: models.Document{"price": "cheap"}, path: "price"},
		{name: "bestseller upper case", patch: models.Document{"bestseller": "TRUE"}, path: "bestseller"},
		{name: "size chart text", patch: models.Document{"sizeChart": "{broken"}, path: "sizeChart"},
		{name: "name object", patch: models.Document{"name": map[string]any{"en": "x"}}, path: "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildUpdate(tc.patch)

			var cerr *CastError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tc.path, cerr.Path)
			assert.Contains(t, err.Error(), tc.path)
		})
	}
}

func TestParseIDRejectsMalformed(t *testing.T) {
	_, err := parseID("not-an-object-id")

	var cerr *CastError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "ObjectId", cerr.Kind)
}
