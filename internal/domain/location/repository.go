package location

import "context"

// Repositories fetch whole levels; parent scoping for the cascading option
// lists is a pure projection on top (see cascade.go).

type RegionRepository interface {
	Create(ctx context.Context, r Region) (Region, error)
	GetByID(ctx context.Context, id string) (Region, error)
	List(ctx context.Context) ([]Region, error)
	Update(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type DistrictRepository interface {
	Create(ctx context.Context, d District) (District, error)
	GetByID(ctx context.Context, id string) (District, error)
	List(ctx context.Context) ([]District, error)
	Update(ctx context.Context, id string, name *string, regionID *string) error
	Delete(ctx context.Context, id string) error
}

type CountyRepository interface {
	Create(ctx context.Context, c County) (County, error)
	GetByID(ctx context.Context, id string) (County, error)
	List(ctx context.Context) ([]County, error)
	Update(ctx context.Context, id string, name *string, districtID *string) error
	Delete(ctx context.Context, id string) error
}

type SubCountyRepository interface {
	Create(ctx context.Context, s SubCounty) (SubCounty, error)
	GetByID(ctx context.Context, id string) (SubCounty, error)
	List(ctx context.Context) ([]SubCounty, error)
	Update(ctx context.Context, id string, name *string, countyID *string) error
	Delete(ctx context.Context, id string) error
}

type ParishRepository interface {
	Create(ctx context.Context, p Parish) (Parish, error)
	GetByID(ctx context.Context, id string) (Parish, error)
	List(ctx context.Context) ([]Parish, error)
	Update(ctx context.Context, id string, name *string, subCountyID *string) error
	Delete(ctx context.Context, id string) error
}

type VillageRepository interface {
	Create(ctx context.Context, v Village) (Village, error)
	GetByID(ctx context.Context, id string) (Village, error)
	List(ctx context.Context) ([]Village, error)
	Update(ctx context.Context, id string, name *string, parishID *string) error
	Delete(ctx context.Context, id string) error
}
