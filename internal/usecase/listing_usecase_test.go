package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subleasehub/internal/domain/entity"
	"subleasehub/pkg/errors"
)

type stubGeocoder struct {
	point *entity.GeoPoint
	calls []string
}

func (g *stubGeocoder) Resolve(ctx context.Context, address string) (*entity.GeoPoint, error) {
	g.calls = append(g.calls, address)
	return g.point, nil
}

func setupListingTest(t *testing.T, geocoder *stubGeocoder) (*ListingUseCase, *fakeListingRepo) {
	t.Helper()

	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "owner-1", Name: "John Doe"}))

	return NewListingUseCase(listingRepo, userRepo, geocoder), listingRepo
}

func listingInput() CreateListingInput {
	return CreateListingInput{
		Title:     "Campus studio",
		Address:   "123 State St, Madison WI",
		Rent:      1100,
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-05-31"),
		Capacity:  2,
	}
}

func TestCreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("stores resolved coordinates", func(t *testing.T) {
		geocoder := &stubGeocoder{point: &entity.GeoPoint{Lat: 43.07, Lng: -89.4}}
		uc, _ := setupListingTest(t, geocoder)

		listing, err := uc.CreateListing(ctx, "owner-1", listingInput())
		require.NoError(t, err)
		require.NotNil(t, listing.Location)
		assert.Equal(t, 43.07, listing.Location.Lat)
		assert.Equal(t, []string{"123 State St, Madison WI"}, geocoder.calls)
	})

	t.Run("failed geocode leaves location empty", func(t *testing.T) {
		uc, _ := setupListingTest(t, &stubGeocoder{})

		listing, err := uc.CreateListing(ctx, "owner-1", listingInput())
		require.NoError(t, err)
		assert.Nil(t, listing.Location)
	})

	t.Run("inverted date range", func(t *testing.T) {
		uc, _ := setupListingTest(t, &stubGeocoder{})

		input := listingInput()
		input.StartDate, input.EndDate = input.EndDate, input.StartDate
		_, err := uc.CreateListing(ctx, "owner-1", input)
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	})

	t.Run("unknown owner", func(t *testing.T) {
		uc, _ := setupListingTest(t, &stubGeocoder{})

		_, err := uc.CreateListing(ctx, "ghost", listingInput())
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})
}

func TestUpdateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("only the owner can update", func(t *testing.T) {
		uc, _ := setupListingTest(t, &stubGeocoder{})
		listing, err := uc.CreateListing(ctx, "owner-1", listingInput())
		require.NoError(t, err)

		_, err = uc.UpdateListing(ctx, listing.ID, "someone-else", listingInput())
		assert.True(t, errors.Is(err, "FORBIDDEN"))
	})

	t.Run("address change triggers a new lookup", func(t *testing.T) {
		geocoder := &stubGeocoder{point: &entity.GeoPoint{Lat: 43.07, Lng: -89.4}}
		uc, _ := setupListingTest(t, geocoder)
		listing, err := uc.CreateListing(ctx, "owner-1", listingInput())
		require.NoError(t, err)

		input := listingInput()
		input.Address = "456 Langdon St, Madison WI"
		updated, err := uc.UpdateListing(ctx, listing.ID, "owner-1", input)
		require.NoError(t, err)
		assert.Equal(t, "456 Langdon St, Madison WI", updated.Address)
		assert.Len(t, geocoder.calls, 2)
	})

	t.Run("unchanged address keeps coordinates without a lookup", func(t *testing.T) {
		geocoder := &stubGeocoder{point: &entity.GeoPoint{Lat: 43.07, Lng: -89.4}}
		uc, _ := setupListingTest(t, geocoder)
		listing, err := uc.CreateListing(ctx, "owner-1", listingInput())
		require.NoError(t, err)

		input := listingInput()
		input.Rent = 1200
		updated, err := uc.UpdateListing(ctx, listing.ID, "owner-1", input)
		require.NoError(t, err)
		assert.NotNil(t, updated.Location)
		assert.Len(t, geocoder.calls, 1)
	})
}

func TestDeleteListing(t *testing.T) {
	ctx := context.Background()
	uc, _ := setupListingTest(t, &stubGeocoder{})

	listing, err := uc.CreateListing(ctx, "owner-1", listingInput())
	require.NoError(t, err)

	err = uc.DeleteListing(ctx, listing.ID, "someone-else")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.DeleteListing(ctx, listing.ID, "owner-1"))

	_, err = uc.GetListing(ctx, listing.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
