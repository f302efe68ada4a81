package location

// Selection holds the currently selected id at each level of the geography
// filter. Changing a level clears every descendant selection; option lists
// for a child level are computed against the selected parent and fall back
// to the full collection when no parent is selected.
type Selection struct {
	RegionID    string
	DistrictID  string
	CountyID    string
	SubCountyID string
	ParishID    string
	VillageID   string
}

// WithRegion returns the selection with the region set. A changed region
// clears every descendant level.
func (s Selection) WithRegion(id string) Selection {
	if s.RegionID == id {
		return s
	}
	return Selection{RegionID: id}
}

// WithDistrict returns the selection with the district set. A changed
// district clears county, subcounty, parish and village.
func (s Selection) WithDistrict(id string) Selection {
	if s.DistrictID == id {
		return s
	}
	return Selection{RegionID: s.RegionID, DistrictID: id}
}

// WithCounty returns the selection with the county set, clearing descendants
// when the county changed.
func (s Selection) WithCounty(id string) Selection {
	if s.CountyID == id {
		return s
	}
	return Selection{RegionID: s.RegionID, DistrictID: s.DistrictID, CountyID: id}
}

// WithSubCounty returns the selection with the subcounty set, clearing
// parish and village when it changed.
func (s Selection) WithSubCounty(id string) Selection {
	if s.SubCountyID == id {
		return s
	}
	return Selection{
		RegionID:    s.RegionID,
		DistrictID:  s.DistrictID,
		CountyID:    s.CountyID,
		SubCountyID: id,
	}
}

// WithParish returns the selection with the parish set, clearing the village
// when it changed.
func (s Selection) WithParish(id string) Selection {
	if s.ParishID == id {
		return s
	}
	return Selection{
		RegionID:    s.RegionID,
		DistrictID:  s.DistrictID,
		CountyID:    s.CountyID,
		SubCountyID: s.SubCountyID,
		ParishID:    id,
	}
}

// WithVillage returns the selection with the village set.
func (s Selection) WithVillage(id string) Selection {
	s.VillageID = id
	return s
}

// DistrictOptions filters districts by the selected region, or returns all
// districts when no region is selected. Districts without a region only
// appear in the unfiltered list.
func DistrictOptions(all []District, regionID string) []District {
	if regionID == "" {
		return all
	}
	var out []District
	for _, d := range all {
		if d.RegionID != nil && *d.RegionID == regionID {
			out = append(out, d)
		}
	}
	return out
}

// CountyOptions filters counties by the selected district, or returns all
// counties when no district is selected.
func CountyOptions(all []County, districtID string) []County {
	if districtID == "" {
		return all
	}
	var out []County
	for _, c := range all {
		if c.DistrictID == districtID {
			out = append(out, c)
		}
	}
	return out
}

// SubCountyOptions filters subcounties by the selected county.
func SubCountyOptions(all []SubCounty, countyID string) []SubCounty {
	if countyID == "" {
		return all
	}
	var out []SubCounty
	for _, s := range all {
		if s.CountyID == countyID {
			out = append(out, s)
		}
	}
	return out
}

// ParishOptions filters parishes by the selected subcounty.
func ParishOptions(all []Parish, subCountyID string) []Parish {
	if subCountyID == "" {
		return all
	}
	var out []Parish
	for _, p := range all {
		if p.SubCountyID == subCountyID {
			out = append(out, p)
		}
	}
	return out
}

// VillageOptions filters villages by the selected parish.
func VillageOptions(all []Village, parishID string) []Village {
	if parishID == "" {
		return all
	}
	var out []Village
	for _, v := range all {
		if v.ParishID == parishID {
			out = append(out, v)
		}
	}
	return out
}
