package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_FixedOrder(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 4)

	want := []Category{CategoryEssentials, CategoryGear, CategoryLogistics, CategoryFun}
	for i, info := range cats {
		assert.Equal(t, want[i], info.ID)
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range []Category{CategoryEssentials, CategoryGear, CategoryLogistics, CategoryFun} {
		assert.True(t, c.Valid(), "category %q must be valid", c)
	}

	assert.False(t, Category("Garage").Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("Essentials").Valid(), "stored values are lowercase and matching is case-sensitive")
}

func TestFilterByCategory(t *testing.T) {
	sections := []Section{
		{ID: 1, Category: CategoryGear, Title: "Nespresso Machine"},
		{ID: 2, Category: CategoryEssentials, Title: "How to Check-in"},
		{ID: 3, Category: CategoryGear, Title: "Washing Machine"},
		{ID: 4, Category: CategoryEssentials, Title: "Wifi"},
	}

	essentials := FilterByCategory(sections, CategoryEssentials)
	require.Len(t, essentials, 2)
	assert.Equal(t, int64(2), essentials[0].ID)
	assert.Equal(t, int64(4), essentials[1].ID)

	assert.Len(t, FilterByCategory(sections, CategoryGear), 2)
	assert.Empty(t, FilterByCategory(sections, CategoryFun))
}

func TestCountByCategory(t *testing.T) {
	sections := []Section{
		{Category: CategoryGear},
		{Category: CategoryGear},
		{Category: CategoryLogistics},
		{Category: Category("bogus")},
	}

	counts := CountByCategory(sections)
	assert.Equal(t, 0, counts[CategoryEssentials])
	assert.Equal(t, 2, counts[CategoryGear])
	assert.Equal(t, 1, counts[CategoryLogistics])
	assert.Equal(t, 0, counts[CategoryFun])

	_, hasBogus := counts[Category("bogus")]
	assert.False(t, hasBogus, "unknown categories never appear in counts")
}

func TestGroupSections_OmitsEmptyAndKeepsOrder(t *testing.T) {
	sections := []Section{
		{ID: 10, Category: CategoryFun, Title: "Beach"},
		{ID: 11, Category: CategoryEssentials, Title: "Check-in"},
		{ID: 12, Category: CategoryFun, Title: "Hiking"},
	}

	groups := GroupSections(sections)
	require.Len(t, groups, 2)

	assert.Equal(t, CategoryEssentials, groups[0].Info.ID)
	require.Len(t, groups[0].Sections, 1)

	assert.Equal(t, CategoryFun, groups[1].Info.ID)
	require.Len(t, groups[1].Sections, 2)
	assert.Equal(t, int64(10), groups[1].Sections[0].ID)
}

func TestGroupSections_DropsUnknownCategory(t *testing.T) {
	groups := GroupSections([]Section{{Category: Category("Attic")}})
	assert.Empty(t, groups)
}

func TestProperty_Public_HidesOwner(t *testing.T) {
	p := Property{
		ID:         7,
		OwnerID:    42,
		Name:       "Seaside Villa",
		Slug:       "seaside-villa-1a2b3c4d",
		Address:    "1 Shore Rd",
		CoverImage: "https://img.example/cover.jpg",
	}

	pub := p.Public()
	assert.Equal(t, p.Name, pub.Name)
	assert.Equal(t, p.Slug, pub.Slug)
	assert.Equal(t, p.Address, pub.Address)
	assert.Equal(t, p.CoverImage, pub.CoverImage)
}
