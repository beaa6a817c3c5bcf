package geo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"googlemaps.github.io/maps"

	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
	"github.com/gamenight-tools/gamenight/internal/geo"
	mockgeo "github.com/gamenight-tools/gamenight/internal/geo/mock"
)

var (
	homeA = geo.Home{Name: "alex", Address: "1 Elm St"}
	homeB = geo.Home{Name: "sam", Address: "2 Oak St"}

	locA = maps.LatLng{Lat: 33.10, Lng: -84.10}
	locB = maps.LatLng{Lat: 33.20, Lng: -84.20}

	waffle1 = geo.Place{Address: "100 Peach Rd", Location: maps.LatLng{Lat: 33.15, Lng: -84.15}}
	waffle2 = geo.Place{Address: "200 Vine Ave", Location: maps.LatLng{Lat: 33.17, Lng: -84.17}}
	waffle3 = geo.Place{Address: "300 Pine Ct", Location: maps.LatLng{Lat: 33.30, Lng: -84.30}}
)

func newPlanner(t *testing.T, client geo.Client) *geo.Planner {
	t.Helper()
	planner, err := geo.NewPlanner(&geo.PlannerConfig{Client: client})
	require.NoError(t, err)
	return planner
}

func TestNewPlanner_RequiresClient(t *testing.T) {
	_, err := geo.NewPlanner(nil)
	require.Error(t, err)
	assert.True(t, gnerr.IsInvalidArgument(err))

	_, err = geo.NewPlanner(&geo.PlannerConfig{})
	require.Error(t, err)
}

func TestPlanner_RankBreakfast(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockgeo.NewMockClient(ctrl)
	arrival := time.Date(2022, 5, 2, 7, 5, 0, 0, time.UTC)

	client.EXPECT().Geocode(gomock.Any(), homeA.Address).Return(locA, nil)
	client.EXPECT().Geocode(gomock.Any(), homeB.Address).Return(locB, nil)

	// waffle1 and waffle2 show up near both homes, waffle3 only near one.
	client.EXPECT().FindPlaces(gomock.Any(), geo.DefaultBreakfastQuery, locA).
		Return([]geo.Place{waffle1, waffle2, waffle3}, nil)
	client.EXPECT().FindPlaces(gomock.Any(), geo.DefaultBreakfastQuery, locB).
		Return([]geo.Place{waffle2, waffle1}, nil)

	client.EXPECT().DistanceMatrix(gomock.Any(), &geo.MatrixRequest{
		Origins:      []maps.LatLng{locA, locB},
		Destinations: []maps.LatLng{waffle1.Location, waffle2.Location},
		ArrivalTime:  arrival,
	}).Return(&geo.Matrix{
		DestinationAddresses: []string{waffle1.Address, waffle2.Address},
		Durations: [][]time.Duration{
			{20 * time.Minute, 5 * time.Minute},
			{15 * time.Minute, 10 * time.Minute},
		},
	}, nil)

	planner := newPlanner(t, client)
	candidates, err := planner.RankBreakfast(context.Background(), []geo.Home{homeA, homeB}, arrival)

	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// waffle2 wins: 5+10 beats 20+15.
	assert.Equal(t, waffle2.Address, candidates[0].Address)
	assert.Equal(t, 15*time.Minute, candidates[0].TotalDuration)
	assert.Equal(t, waffle1.Address, candidates[1].Address)
	assert.Equal(t, 35*time.Minute, candidates[1].TotalDuration)
}

func TestPlanner_RankBreakfast_NoSharedSpot(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockgeo.NewMockClient(ctrl)

	client.EXPECT().Geocode(gomock.Any(), homeA.Address).Return(locA, nil)
	client.EXPECT().Geocode(gomock.Any(), homeB.Address).Return(locB, nil)
	client.EXPECT().FindPlaces(gomock.Any(), geo.DefaultBreakfastQuery, locA).
		Return([]geo.Place{waffle1}, nil)
	client.EXPECT().FindPlaces(gomock.Any(), geo.DefaultBreakfastQuery, locB).
		Return([]geo.Place{waffle3}, nil)

	planner := newPlanner(t, client)
	candidates, err := planner.RankBreakfast(context.Background(), []geo.Home{homeA, homeB}, time.Time{})

	require.Error(t, err)
	assert.Nil(t, candidates)
	assert.True(t, gnerr.Is(err, gnerr.CodeNotFound))
}

func TestPlanner_RankBreakfast_DuplicateHitsNearOneHomeDoNotCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockgeo.NewMockClient(ctrl)

	client.EXPECT().Geocode(gomock.Any(), homeA.Address).Return(locA, nil)
	client.EXPECT().Geocode(gomock.Any(), homeB.Address).Return(locB, nil)
	// The same spot listed twice near one home is still only near one home.
	client.EXPECT().FindPlaces(gomock.Any(), geo.DefaultBreakfastQuery, locA).
		Return([]geo.Place{waffle1, waffle1}, nil)
	client.EXPECT().FindPlaces(gomock.Any(), geo.DefaultBreakfastQuery, locB).
		Return([]geo.Place{waffle3}, nil)

	planner := newPlanner(t, client)
	_, err := planner.RankBreakfast(context.Background(), []geo.Home{homeA, homeB}, time.Time{})

	assert.True(t, gnerr.Is(err, gnerr.CodeNotFound))
}

func TestPlanner_RankBreakfast_GeocodeFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockgeo.NewMockClient(ctrl)

	client.EXPECT().Geocode(gomock.Any(), homeA.Address).
		Return(maps.LatLng{}, gnerr.NotFoundf("no geocoding result"))

	planner := newPlanner(t, client)
	_, err := planner.RankBreakfast(context.Background(), []geo.Home{homeA, homeB}, time.Time{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "alex")
}

func TestPlanner_RankBreakfast_NoHomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := newPlanner(t, mockgeo.NewMockClient(ctrl))

	_, err := planner.RankBreakfast(context.Background(), nil, time.Time{})

	require.Error(t, err)
	assert.True(t, gnerr.IsInvalidArgument(err))
}

func TestPlanner_CompareCommutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockgeo.NewMockClient(ctrl)

	lucky := "305 Brookhaven Ave"
	church := "2590 Tanglewood Rd"
	luckyLoc := maps.LatLng{Lat: 33.86, Lng: -84.33}
	churchLoc := maps.LatLng{Lat: 33.79, Lng: -84.28}

	client.EXPECT().Geocode(gomock.Any(), homeA.Address).Return(locA, nil)
	client.EXPECT().Geocode(gomock.Any(), homeB.Address).Return(locB, nil)
	client.EXPECT().Geocode(gomock.Any(), lucky).Return(luckyLoc, nil)
	client.EXPECT().Geocode(gomock.Any(), church).Return(churchLoc, nil)

	client.EXPECT().DistanceMatrix(gomock.Any(), &geo.MatrixRequest{
		Origins:      []maps.LatLng{locA, locB},
		Destinations: []maps.LatLng{luckyLoc, churchLoc},
	}).Return(&geo.Matrix{
		DestinationAddresses: []string{lucky, church},
		Durations: [][]time.Duration{
			{30 * time.Minute, 20 * time.Minute},
			{10 * time.Minute, 25 * time.Minute},
		},
	}, nil)

	planner := newPlanner(t, client)
	commutes, err := planner.CompareCommutes(context.Background(), []geo.Home{homeA, homeB}, lucky, church)

	require.NoError(t, err)
	require.Len(t, commutes, 2)

	// Positive delta: the first destination is farther for alex.
	assert.Equal(t, geo.Commute{Name: "alex", Delta: 10 * time.Minute}, commutes[0])
	// Negative delta: the first destination is closer for sam.
	assert.Equal(t, geo.Commute{Name: "sam", Delta: -15 * time.Minute}, commutes[1])
}

func TestPlanner_CompareCommutes_NoHomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := newPlanner(t, mockgeo.NewMockClient(ctrl))

	_, err := planner.CompareCommutes(context.Background(), nil, "a", "b")

	require.Error(t, err)
	assert.True(t, gnerr.IsInvalidArgument(err))
}
