package location

// Administrative geography hierarchy used for categorization and cascading
// filters: Region → District → County → SubCounty → Parish → Village. Each
// level is a flat reference resource with a parent foreign key. Regions are a
// later addition, so a district's region is optional.

type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type District struct {
	ID       string  `json:"id"`
	RegionID *string `json:"region_id,omitempty"`
	Name     string  `json:"name"`
}

type County struct {
	ID         string `json:"id"`
	DistrictID string `json:"district_id"`
	Name       string `json:"name"`
}

type SubCounty struct {
	ID       string `json:"id"`
	CountyID string `json:"county_id"`
	Name     string `json:"name"`
}

type Parish struct {
	ID          string `json:"id"`
	SubCountyID string `json:"subcounty_id"`
	Name        string `json:"name"`
}

type Village struct {
	ID       string `json:"id"`
	ParishID string `json:"parish_id"`
	Name     string `json:"name"`
}
