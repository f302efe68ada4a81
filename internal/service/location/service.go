package location

import (
	"context"

	"github.com/hrpms/pms-backend-go/internal/domain/location"
)

// LocationService manages the six-level geography hierarchy. Child listings
// take an optional parent id so the handlers can serve cascading dropdowns;
// repositories return whole levels and the parent scoping is applied in
// memory through the option helpers.
type LocationService interface {
	// Region operations
	CreateRegion(ctx context.Context, req location.CreateLocationRequest) (location.Region, error)
	ListRegions(ctx context.Context) ([]location.Region, error)
	UpdateRegion(ctx context.Context, req location.UpdateLocationRequest) error
	DeleteRegion(ctx context.Context, id string) error

	// District operations
	CreateDistrict(ctx context.Context, req location.CreateLocationRequest) (location.District, error)
	ListDistricts(ctx context.Context, regionID *string) ([]location.District, error)
	UpdateDistrict(ctx context.Context, req location.UpdateLocationRequest) error
	DeleteDistrict(ctx context.Context, id string) error

	// County operations
	CreateCounty(ctx context.Context, req location.CreateLocationRequest) (location.County, error)
	ListCounties(ctx context.Context, districtID *string) ([]location.County, error)
	UpdateCounty(ctx context.Context, req location.UpdateLocationRequest) error
	DeleteCounty(ctx context.Context, id string) error

	// SubCounty operations
	CreateSubCounty(ctx context.Context, req location.CreateLocationRequest) (location.SubCounty, error)
	ListSubCounties(ctx context.Context, countyID *string) ([]location.SubCounty, error)
	UpdateSubCounty(ctx context.Context, req location.UpdateLocationRequest) error
	DeleteSubCounty(ctx context.Context, id string) error

	// Parish operations
	CreateParish(ctx context.Context, req location.CreateLocationRequest) (location.Parish, error)
	ListParishes(ctx context.Context, subCountyID *string) ([]location.Parish, error)
	UpdateParish(ctx context.Context, req location.UpdateLocationRequest) error
	DeleteParish(ctx context.Context, id string) error

	// Village operations
	CreateVillage(ctx context.Context, req location.CreateLocationRequest) (location.Village, error)
	ListVillages(ctx context.Context, parishID *string) ([]location.Village, error)
	UpdateVillage(ctx context.Context, req location.UpdateLocationRequest) error
	DeleteVillage(ctx context.Context, id string) error
}

type locationServiceImpl struct {
	regionRepo    location.RegionRepository
	districtRepo  location.DistrictRepository
	countyRepo    location.CountyRepository
	subCountyRepo location.SubCountyRepository
	parishRepo    location.ParishRepository
	villageRepo   location.VillageRepository
}

func NewLocationService(
	regionRepo location.RegionRepository,
	districtRepo location.DistrictRepository,
	countyRepo location.CountyRepository,
	subCountyRepo location.SubCountyRepository,
	parishRepo location.ParishRepository,
	villageRepo location.VillageRepository,
) LocationService {
	return &locationServiceImpl{
		regionRepo:    regionRepo,
		districtRepo:  districtRepo,
		countyRepo:    countyRepo,
		subCountyRepo: subCountyRepo,
		parishRepo:    parishRepo,
		villageRepo:   villageRepo,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ==================== REGION OPERATIONS ====================

func (s *locationServiceImpl) CreateRegion(ctx context.Context, req location.CreateLocationRequest) (location.Region, error) {
	if err := req.ValidateRegion(); err != nil {
		return location.Region{}, err
	}
	return s.regionRepo.Create(ctx, location.Region{Name: req.Name})
}

func (s *locationServiceImpl) ListRegions(ctx context.Context) ([]location.Region, error) {
	regions, err := s.regionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return []location.Region{}, nil
	}
	return regions, nil
}

func (s *locationServiceImpl) UpdateRegion(ctx context.Context, req location.UpdateLocationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	return s.regionRepo.Update(ctx, req.ID, name)
}

func (s *locationServiceImpl) DeleteRegion(ctx context.Context, id string) error {
	return s.regionRepo.Delete(ctx, id)
}

// ==================== DISTRICT OPERATIONS ====================

func (s *locationServiceImpl) CreateDistrict(ctx context.Context, req location.CreateLocationRequest) (location.District, error) {
	if err := req.ValidateDistrict(); err != nil {
		return location.District{}, err
	}
	d := location.District{Name: req.Name}
	if req.ParentID != "" {
		d.RegionID = &req.ParentID
	}
	return s.districtRepo.Create(ctx, d)
}

func (s *locationServiceImpl) ListDistricts(ctx context.Context, regionID *string) ([]location.District, error) {
	districts, err := s.districtRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	districts = location.DistrictOptions(districts, deref(regionID))
	if len(districts) == 0 {
		return []location.District{}, nil
	}
	return districts, nil
}

func (s *locationServiceImpl) UpdateDistrict(ctx context.Context, req location.UpdateLocationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.districtRepo.Update(ctx, req.ID, req.Name, req.ParentID)
}

func (s *locationServiceImpl) DeleteDistrict(ctx context.Context, id string) error {
	return s.districtRepo.Delete(ctx, id)
}

// ==================== COUNTY OPERATIONS ====================

func (s *locationServiceImpl) CreateCounty(ctx context.Context, req location.CreateLocationRequest) (location.County, error) {
	if err := req.ValidateCounty(); err != nil {
		return location.County{}, err
	}
	return s.countyRepo.Create(ctx, location.County{DistrictID: req.ParentID, Name: req.Name})
}

func (s *locationServiceImpl) ListCounties(ctx context.Context, districtID *string) ([]location.County, error) {
	counties, err := s.countyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counties = location.CountyOptions(counties, deref(districtID))
	if len(counties) == 0 {
		return []location.County{}, nil
	}
	return counties, nil
}

func (s *locationServiceImpl) UpdateCounty(ctx context.Context, req location.UpdateLocationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.countyRepo.Update(ctx, req.ID, req.Name, req.ParentID)
}

func (s *locationServiceImpl) DeleteCounty(ctx context.Context, id string) error {
	return s.countyRepo.Delete(ctx, id)
}

// ==================== SUBCOUNTY OPERATIONS ====================

func (s *locationServiceImpl) CreateSubCounty(ctx context.Context, req location.CreateLocationRequest) (location.SubCounty, error) {
	if err := req.ValidateSubCounty(); err != nil {
		return location.SubCounty{}, err
	}
	return s.subCountyRepo.Create(ctx, location.SubCounty{CountyID: req.ParentID, Name: req.Name})
}

func (s *locationServiceImpl) ListSubCounties(ctx context.Context, countyID *string) ([]location.SubCounty, error) {
	subcounties, err := s.subCountyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	subcounties = location.SubCountyOptions(subcounties, deref(countyID))
	if len(subcounties) == 0 {
		return []location.SubCounty{}, nil
	}
	return subcounties, nil
}

func (s *locationServiceImpl) UpdateSubCounty(ctx context.Context, req location.UpdateLocationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.subCountyRepo.Update(ctx, req.ID, req.Name, req.ParentID)
}

func (s *locationServiceImpl) DeleteSubCounty(ctx context.Context, id string) error {
	return s.subCountyRepo.Delete(ctx, id)
}

// ==================== PARISH OPERATIONS ====================

func (s *locationServiceImpl) CreateParish(ctx context.Context, req location.CreateLocationRequest) (location.Parish, error) {
	if err := req.ValidateParish(); err != nil {
		return location.Parish{}, err
	}
	return s.parishRepo.Create(ctx, location.Parish{SubCountyID: req.ParentID, Name: req.Name})
}

func (s *locationServiceImpl) ListParishes(ctx context.Context, subCountyID *string) ([]location.Parish, error) {
	parishes, err := s.parishRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	parishes = location.ParishOptions(parishes, deref(subCountyID))
	if len(parishes) == 0 {
		return []location.Parish{}, nil
	}
	return parishes, nil
}

func (s *locationServiceImpl) UpdateParish(ctx context.Context, req location.UpdateLocationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.parishRepo.Update(ctx, req.ID, req.Name, req.ParentID)
}

func (s *locationServiceImpl) DeleteParish(ctx context.Context, id string) error {
	return s.parishRepo.Delete(ctx, id)
}

// ==================== VILLAGE OPERATIONS ====================

func (s *locationServiceImpl) CreateVillage(ctx context.Context, req location.CreateLocationRequest) (location.Village, error) {
	if err := req.ValidateVillage(); err != nil {
		return location.Village{}, err
	}
	return s.villageRepo.Create(ctx, location.Village{ParishID: req.ParentID, Name: req.Name})
}

func (s *locationServiceImpl) ListVillages(ctx context.Context, parishID *string) ([]location.Village, error) {
	villages, err := s.villageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	villages = location.VillageOptions(villages, deref(parishID))
	if len(villages) == 0 {
		return []location.Village{}, nil
	}
	return villages, nil
}

func (s *locationServiceImpl) UpdateVillage(ctx context.Context, req location.UpdateLocationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.villageRepo.Update(ctx, req.ID, req.Name, req.ParentID)
}

func (s *locationServiceImpl) DeleteVillage(ctx context.Context, id string) error {
	return s.villageRepo.Delete(ctx, id)
}
