// Package geo wraps the slice of the Google Maps API the toolbox needs and
// builds the group logistics logic (breakfast spot ranking, commute
// comparison) on top of it.
package geo

//go:generate mockgen -destination=mock/mock_client.go -package=mockgeo -source=client.go

import (
	"context"
	"strconv"
	"time"

	"googlemaps.github.io/maps"

	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

// Place is one place search hit.
type Place struct {
	Address  string
	Location maps.LatLng
}

// MatrixRequest asks for drive times from every origin to every destination.
type MatrixRequest struct {
	Origins      []maps.LatLng
	Destinations []maps.LatLng

	// ArrivalTime, when non-zero, asks for routes arriving by that time.
	ArrivalTime time.Time
}

// Matrix is the drive-time table for a MatrixRequest.
type Matrix struct {
	// DestinationAddresses are the resolved addresses, in request order.
	DestinationAddresses []string

	// Durations[i][j] is the drive time from origin i to destination j.
	Durations [][]time.Duration
}

// Client is the Google Maps surface the planner consumes. The real
// implementation wraps the official Go client; tests use the generated mock.
type Client interface {
	// Geocode resolves a street address to coordinates.
	Geocode(ctx context.Context, address string) (maps.LatLng, error)

	// FindPlaces text-searches for query near a location.
	FindPlaces(ctx context.Context, query string, near maps.LatLng) ([]Place, error)

	// DistanceMatrix computes driving times for all origin/destination pairs.
	DistanceMatrix(ctx context.Context, req *MatrixRequest) (*Matrix, error)
}

type mapsClient struct {
	inner *maps.Client
}

// NewClient creates a Client backed by the Google Maps API.
func NewClient(apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, gnerr.InvalidArgument("maps API key is required")
	}

	inner, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, gnerr.Wrap(err, "creating maps client")
	}
	return &mapsClient{inner: inner}, nil
}

// Geocode implements Client
func (c *mapsClient) Geocode(ctx context.Context, address string) (maps.LatLng, error) {
	results, err := c.inner.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return maps.LatLng{}, gnerr.Wrapf(err, "geocoding %q", address)
	}
	if len(results) == 0 {
		return maps.LatLng{}, gnerr.NotFoundf("no geocoding result for %q", address)
	}
	return results[0].Geometry.Location, nil
}

// FindPlaces implements Client
func (c *mapsClient) FindPlaces(ctx context.Context, query string, near maps.LatLng) ([]Place, error) {
	resp, err := c.inner.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Location: &near,
		Radius:   25000,
	})
	if err != nil {
		return nil, gnerr.Wrapf(err, "searching for %q", query)
	}

	places := make([]Place, 0, len(resp.Results))
	for _, result := range resp.Results {
		places = append(places, Place{
			Address:  result.FormattedAddress,
			Location: result.Geometry.Location,
		})
	}
	return places, nil
}

// DistanceMatrix implements Client
func (c *mapsClient) DistanceMatrix(ctx context.Context, req *MatrixRequest) (*Matrix, error) {
	apiReq := &maps.DistanceMatrixRequest{
		Origins:      latLngStrings(req.Origins),
		Destinations: latLngStrings(req.Destinations),
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsImperial,
	}
	if !req.ArrivalTime.IsZero() {
		apiReq.ArrivalTime = strconv.FormatInt(req.ArrivalTime.Unix(), 10)
	}

	resp, err := c.inner.DistanceMatrix(ctx, apiReq)
	if err != nil {
		return nil, gnerr.Wrap(err, "requesting distance matrix")
	}

	matrix := &Matrix{
		DestinationAddresses: resp.DestinationAddresses,
		Durations:            make([][]time.Duration, len(resp.Rows)),
	}
	for i, row := range resp.Rows {
		matrix.Durations[i] = make([]time.Duration, len(row.Elements))
		for j, element := range row.Elements {
			if element.Status != "OK" {
				return nil, gnerr.NotFoundf("no route from origin %d to destination %d (%s)", i, j, element.Status)
			}
			matrix.Durations[i][j] = element.Duration
		}
	}
	return matrix, nil
}

func latLngStrings(coords []maps.LatLng) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.String()
	}
	return out
}
