package location

import "errors"

var (
	ErrRegionNotFound    = errors.New("region not found")
	ErrDistrictNotFound  = errors.New("district not found")
	ErrCountyNotFound    = errors.New("county not found")
	ErrSubCountyNotFound = errors.New("subcounty not found")
	ErrParishNotFound    = errors.New("parish not found")
	ErrVillageNotFound   = errors.New("village not found")
	ErrParentNotFound    = errors.New("parent location not found")
	ErrHasChildren       = errors.New("location has dependent children")
)
