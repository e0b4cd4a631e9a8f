package services_test

import (
	"testing"

	"homeserve_backend/internal/models"
	"homeserve_backend/internal/services"
	"homeserve_backend/internal/services/dto"
	"homeserve_backend/pkg/apperrors"
	"homeserve_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	env        *testEnv
	plumbing   *models.ServiceCategory
	electrical *models.ServiceCategory
}

// newCatalogFixture creates four providers:
//
//	a: plumbing   rating 4.5 jobs 10 rate 40
//	b: plumbing   rating 4.5 jobs 20 rate 60
//	c: electrical rating 4.9 jobs  5 rate 80
//	d: electrical rating 3.0 jobs 50 rate 30
func newCatalogFixture(t *testing.T) *catalogFixture {
	env := newTestEnv(t)
	f := &catalogFixture{
		env:        env,
		plumbing:   helpers.CreateCategory(t, env.DB, "Plumbing"),
		electrical: helpers.CreateCategory(t, env.DB, "Electrical"),
	}

	seed := []struct {
		email    string
		category uint
		rating   float64
		jobs     int
		rate     float64
	}{
		{"a@example.com", f.plumbing.ID, 4.5, 10, 40},
		{"b@example.com", f.plumbing.ID, 4.5, 20, 60},
		{"c@example.com", f.electrical.ID, 4.9, 5, 80},
		{"d@example.com", f.electrical.ID, 3.0, 50, 30},
	}
	for _, s := range seed {
		s := s
		helpers.CreateProvider(t, env.DB, s.email, s.category, func(p *models.Provider) {
			p.Rating = s.rating
			p.TotalJobs = s.jobs
			p.HourlyRate = s.rate
		})
	}
	return f
}

func emails(providers []dto.ProviderResponse) []string {
	out := make([]string, 0, len(providers))
	for _, p := range providers {
		out = append(out, p.Email)
	}
	return out
}

func TestCatalogListCategories(t *testing.T) {
	f := newCatalogFixture(t)

	categories, err := f.env.CatalogService.ListCategories(f.env.DB)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Plumbing", categories[0].Name)
	assert.Equal(t, "Electrical", categories[1].Name)
}

func TestCatalogListProviders(t *testing.T) {
	f := newCatalogFixture(t)

	tests := []struct {
		name   string
		filter dto.ProviderFilter
		want   []string
	}{
		{"no filter sorts by rating then jobs", dto.ProviderFilter{}, []string{"c@example.com", "b@example.com", "a@example.com", "d@example.com"}},
		{"category", dto.ProviderFilter{Category: f.plumbing.ID}, []string{"b@example.com", "a@example.com"}},
		{"min rating", dto.ProviderFilter{Rating: 4.5}, []string{"c@example.com", "b@example.com", "a@example.com"}},
		{"price range is inclusive", dto.ProviderFilter{Price: "40-60"}, []string{"b@example.com", "a@example.com"}},
		{"open price range", dto.ProviderFilter{Price: "60+"}, []string{"c@example.com", "b@example.com"}},
		{"filters combine", dto.ProviderFilter{Category: f.electrical.ID, Price: "0-50"}, []string{"d@example.com"}},
		{"no match", dto.ProviderFilter{Rating: 5}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := f.env.CatalogService.ListProviders(f.env.DB, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, emails(providers))
		})
	}
}

func TestCatalogListProviders_IncludesCategoryName(t *testing.T) {
	f := newCatalogFixture(t)

	providers, err := f.env.CatalogService.ListProviders(f.env.DB, dto.ProviderFilter{Category: f.electrical.ID})
	require.NoError(t, err)
	require.NotEmpty(t, providers)
	for _, p := range providers {
		assert.Equal(t, "Electrical", p.CategoryName)
	}
}

func TestCatalogListProviders_RejectsBadInput(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.env.CatalogService.ListProviders(f.env.DB, dto.ProviderFilter{Price: "cheap"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPriceRange)

	_, err = f.env.CatalogService.ListProviders(f.env.DB, dto.ProviderFilter{Rating: 7})
	assert.Error(t, err)
}

func TestCatalogGetProvider(t *testing.T) {
	f := newCatalogFixture(t)
	provider := helpers.CreateProvider(t, f.env.DB, "solo@example.com", f.plumbing.ID)

	resp, err := f.env.CatalogService.GetProvider(f.env.DB, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, provider.FullName, resp.FullName)
	assert.Equal(t, "Plumbing", resp.CategoryName)

	_, err = f.env.CatalogService.GetProvider(f.env.DB, 9999)
	assert.ErrorIs(t, err, apperrors.ErrProviderNotFound)
	assert.Equal(t, "Provider not found", err.(*apperrors.AppError).Message)
}

func TestParsePriceRange(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		raw     string
		min     *float64
		max     *float64
		wantErr bool
	}{
		{raw: ""},
		{raw: "20-50", min: f(20), max: f(50)},
		{raw: " 20 - 50 ", min: f(20), max: f(50)},
		{raw: "100+", min: f(100)},
		{raw: "0-0", min: f(0), max: f(0)},
		{raw: "50-20", wantErr: true},
		{raw: "-5", wantErr: true},
		{raw: "a-b", wantErr: true},
		{raw: "+", wantErr: true},
		{raw: "1-2-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			lo, hi, err := services.ParsePriceRange(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidPriceRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.min, lo)
			assert.Equal(t, tt.max, hi)
		})
	}
}
