package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpms/pms-backend-go/internal/domain/location"
)

type fakeRegionRepo struct {
	regions []location.Region
}

func (f *fakeRegionRepo) Create(_ context.Context, r location.Region) (location.Region, error) {
	f.regions = append(f.regions, r)
	return r, nil
}
func (f *fakeRegionRepo) GetByID(context.Context, string) (location.Region, error) {
	return location.Region{}, location.ErrRegionNotFound
}
func (f *fakeRegionRepo) List(context.Context) ([]location.Region, error) { return f.regions, nil }
func (f *fakeRegionRepo) Update(context.Context, string, string) error    { return nil }
func (f *fakeRegionRepo) Delete(context.Context, string) error            { return nil }

type fakeDistrictRepo struct {
	districts []location.District
}

func (f *fakeDistrictRepo) Create(_ context.Context, d location.District) (location.District, error) {
	f.districts = append(f.districts, d)
	return d, nil
}
func (f *fakeDistrictRepo) GetByID(context.Context, string) (location.District, error) {
	return location.District{}, location.ErrDistrictNotFound
}
func (f *fakeDistrictRepo) List(context.Context) ([]location.District, error) {
	return f.districts, nil
}
func (f *fakeDistrictRepo) Update(context.Context, string, *string, *string) error { return nil }
func (f *fakeDistrictRepo) Delete(context.Context, string) error                   { return nil }

type fakeCountyRepo struct {
	counties []location.County
}

func (f *fakeCountyRepo) Create(_ context.Context, c location.County) (location.County, error) {
	f.counties = append(f.counties, c)
	return c, nil
}
func (f *fakeCountyRepo) GetByID(context.Context, string) (location.County, error) {
	return location.County{}, location.ErrCountyNotFound
}
func (f *fakeCountyRepo) List(context.Context) ([]location.County, error) { return f.counties, nil }
func (f *fakeCountyRepo) Update(context.Context, string, *string, *string) error {
	return nil
}
func (f *fakeCountyRepo) Delete(context.Context, string) error { return nil }

type fakeSubCountyRepo struct{}

func (fakeSubCountyRepo) Create(_ context.Context, s location.SubCounty) (location.SubCounty, error) {
	return s, nil
}
func (fakeSubCountyRepo) GetByID(context.Context, string) (location.SubCounty, error) {
	return location.SubCounty{}, location.ErrSubCountyNotFound
}
func (fakeSubCountyRepo) List(context.Context) ([]location.SubCounty, error) { return nil, nil }
func (fakeSubCountyRepo) Update(context.Context, string, *string, *string) error {
	return nil
}
func (fakeSubCountyRepo) Delete(context.Context, string) error { return nil }

type fakeParishRepo struct{}

func (fakeParishRepo) Create(_ context.Context, p location.Parish) (location.Parish, error) {
	return p, nil
}
func (fakeParishRepo) GetByID(context.Context, string) (location.Parish, error) {
	return location.Parish{}, location.ErrParishNotFound
}
func (fakeParishRepo) List(context.Context) ([]location.Parish, error) { return nil, nil }
func (fakeParishRepo) Update(context.Context, string, *string, *string) error {
	return nil
}
func (fakeParishRepo) Delete(context.Context, string) error { return nil }

type fakeVillageRepo struct {
	villages []location.Village
}

func (f *fakeVillageRepo) Create(_ context.Context, v location.Village) (location.Village, error) {
	return v, nil
}
func (f *fakeVillageRepo) GetByID(context.Context, string) (location.Village, error) {
	return location.Village{}, location.ErrVillageNotFound
}
func (f *fakeVillageRepo) List(context.Context) ([]location.Village, error) {
	return f.villages, nil
}
func (f *fakeVillageRepo) Update(context.Context, string, *string, *string) error { return nil }
func (f *fakeVillageRepo) Delete(context.Context, string) error                   { return nil }

func newTestService(districts []location.District, counties []location.County, villages []location.Village) LocationService {
	return NewLocationService(
		&fakeRegionRepo{},
		&fakeDistrictRepo{districts: districts},
		&fakeCountyRepo{counties: counties},
		fakeSubCountyRepo{},
		fakeParishRepo{},
		&fakeVillageRepo{villages: villages},
	)
}

func TestListCountiesScopesToDistrict(t *testing.T) {
	counties := []location.County{
		{ID: "c1", DistrictID: "d1", Name: "Busiro"},
		{ID: "c2", DistrictID: "d1", Name: "Kyadondo"},
		{ID: "c3", DistrictID: "d2", Name: "Bugahya"},
	}
	svc := newTestService(nil, counties, nil)

	district := "d1"
	got, err := svc.ListCounties(context.Background(), &district)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, "d1", c.DistrictID)
	}
}

func TestListCountiesWithoutParentReturnsAll(t *testing.T) {
	counties := []location.County{
		{ID: "c1", DistrictID: "d1", Name: "Busiro"},
		{ID: "c3", DistrictID: "d2", Name: "Bugahya"},
	}
	svc := newTestService(nil, counties, nil)

	got, err := svc.ListCounties(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListDistrictsScopesToRegion(t *testing.T) {
	central := "r1"
	districts := []location.District{
		{ID: "d1", RegionID: &central, Name: "Wakiso"},
		{ID: "d2", Name: "Unassigned"},
	}
	svc := newTestService(districts, nil, nil)

	got, err := svc.ListDistricts(context.Background(), &central)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "d1", got[0].ID)
}

func TestListVillagesEmptyScopeReturnsEmptySlice(t *testing.T) {
	villages := []location.Village{{ID: "v1", ParishID: "p1"}}
	svc := newTestService(nil, nil, villages)

	parish := "p-none"
	got, err := svc.ListVillages(context.Background(), &parish)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
