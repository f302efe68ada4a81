package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionRegionChangeClearsEverything(t *testing.T) {
	s := Selection{
		RegionID:    "r1",
		DistrictID:  "d1",
		CountyID:    "c1",
		SubCountyID: "s1",
		ParishID:    "p1",
		VillageID:   "v1",
	}
	s = s.WithRegion("r2")
	assert.Equal(t, "r2", s.RegionID)
	assert.Empty(t, s.DistrictID)
	assert.Empty(t, s.CountyID)
	assert.Empty(t, s.SubCountyID)
	assert.Empty(t, s.ParishID)
	assert.Empty(t, s.VillageID)
}

func TestSelectionDistrictChangeKeepsRegion(t *testing.T) {
	s := Selection{RegionID: "r1", DistrictID: "d1", CountyID: "c1"}
	s = s.WithDistrict("d2")
	assert.Equal(t, "r1", s.RegionID)
	assert.Equal(t, "d2", s.DistrictID)
	assert.Empty(t, s.CountyID)
}

func TestSelectionDistrictChangeClearsDescendants(t *testing.T) {
	s := Selection{}
	s = s.WithDistrict("dist-x")
	s = s.WithCounty("county-y")
	assert.Equal(t, "dist-x", s.DistrictID)
	assert.Equal(t, "county-y", s.CountyID)

	// Changing the district must clear the county back to empty.
	s = s.WithDistrict("dist-z")
	assert.Equal(t, "dist-z", s.DistrictID)
	assert.Empty(t, s.CountyID)
	assert.Empty(t, s.SubCountyID)
	assert.Empty(t, s.ParishID)
	assert.Empty(t, s.VillageID)
}

func TestSelectionReselectingSameParentKeepsChildren(t *testing.T) {
	s := Selection{DistrictID: "d1", CountyID: "c1", SubCountyID: "s1"}
	s = s.WithDistrict("d1")
	assert.Equal(t, "c1", s.CountyID)
	assert.Equal(t, "s1", s.SubCountyID)
}

func TestSelectionMidLevelChangeClearsOnlyDescendants(t *testing.T) {
	s := Selection{
		DistrictID:  "d1",
		CountyID:    "c1",
		SubCountyID: "s1",
		ParishID:    "p1",
		VillageID:   "v1",
	}
	s = s.WithSubCounty("s2")
	assert.Equal(t, "d1", s.DistrictID)
	assert.Equal(t, "c1", s.CountyID)
	assert.Equal(t, "s2", s.SubCountyID)
	assert.Empty(t, s.ParishID)
	assert.Empty(t, s.VillageID)
}

func TestDistrictOptions(t *testing.T) {
	central := "r-central"
	western := "r-western"
	all := []District{
		{ID: "d1", RegionID: &central, Name: "Wakiso"},
		{ID: "d2", RegionID: &western, Name: "Hoima"},
		{ID: "d3", Name: "Unassigned"},
	}

	assert.Len(t, DistrictOptions(all, ""), 3, "no region selected falls back to full collection")

	filtered := DistrictOptions(all, central)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "d1", filtered[0].ID)
}

func TestCountyOptions(t *testing.T) {
	all := []County{
		{ID: "c1", DistrictID: "d1", Name: "Busiro"},
		{ID: "c2", DistrictID: "d1", Name: "Kyadondo"},
		{ID: "c3", DistrictID: "d2", Name: "Bugahya"},
	}

	assert.Len(t, CountyOptions(all, ""), 3, "no parent selected falls back to full collection")

	filtered := CountyOptions(all, "d1")
	assert.Len(t, filtered, 2)
	for _, c := range filtered {
		assert.Equal(t, "d1", c.DistrictID)
	}

	assert.Empty(t, CountyOptions(all, "d-none"))
}

func TestVillageOptions(t *testing.T) {
	all := []Village{
		{ID: "v1", ParishID: "p1"},
		{ID: "v2", ParishID: "p2"},
	}
	assert.Len(t, VillageOptions(all, ""), 2)
	assert.Len(t, VillageOptions(all, "p2"), 1)
}
