package geo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"googlemaps.github.io/maps"

	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

// DefaultBreakfastQuery is what the group actually eats.
const DefaultBreakfastQuery = "Waffle House"

// placesPerHome caps how many search hits each home contributes.
const placesPerHome = 6

// Candidate is one breakfast spot with the group's combined drive time.
type Candidate struct {
	Address       string
	TotalDuration time.Duration
}

// Commute is one person's drive-time comparison between two destinations.
// Delta is first minus second: negative means the first destination is
// closer for them.
type Commute struct {
	Name  string
	Delta time.Duration
}

// Planner answers group logistics questions against a maps Client.
type Planner struct {
	client Client
	query  string
}

// PlannerConfig holds configuration for the planner.
type PlannerConfig struct {
	// Client is required.
	Client Client

	// Query overrides the breakfast search term.
	Query string
}

// NewPlanner creates a Planner
func NewPlanner(cfg *PlannerConfig) (*Planner, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, gnerr.InvalidArgument("maps client is required")
	}

	query := cfg.Query
	if query == "" {
		query = DefaultBreakfastQuery
	}
	return &Planner{client: cfg.Client, query: query}, nil
}

// RankBreakfast finds breakfast spots near every home, keeps the ones that
// showed up near more than one home, and ranks them by the group's combined
// drive time (ascending). arrival pins the matrix to a planned arrival time.
func (p *Planner) RankBreakfast(ctx context.Context, homes []Home, arrival time.Time) ([]Candidate, error) {
	if len(homes) == 0 {
		return nil, gnerr.InvalidArgument("no homes to search from")
	}

	origins := make([]maps.LatLng, 0, len(homes))
	var found [][]Place
	for _, home := range homes {
		location, err := p.client.Geocode(ctx, home.Address)
		if err != nil {
			return nil, gnerr.Wrapf(err, "locating %s", home.Name)
		}
		origins = append(origins, location)

		places, err := p.client.FindPlaces(ctx, p.query, location)
		if err != nil {
			return nil, gnerr.Wrapf(err, "searching near %s", home.Name)
		}
		if len(places) > placesPerHome {
			places = places[:placesPerHome]
		}
		found = append(found, places)
	}

	shared := sharedPlaces(found)
	if len(shared) == 0 {
		return nil, gnerr.NotFoundf("no %s is near more than one home", p.query)
	}

	destinations := make([]maps.LatLng, len(shared))
	for i, place := range shared {
		destinations[i] = place.Location
	}

	matrix, err := p.client.DistanceMatrix(ctx, &MatrixRequest{
		Origins:      origins,
		Destinations: destinations,
		ArrivalTime:  arrival,
	})
	if err != nil {
		return nil, err
	}

	return rankByTotalDuration(matrix)
}

// CompareCommutes reports, per person, how much longer the drive to first is
// than the drive to second.
func (p *Planner) CompareCommutes(ctx context.Context, homes []Home, first, second string) ([]Commute, error) {
	if len(homes) == 0 {
		return nil, gnerr.InvalidArgument("no homes to compare from")
	}

	origins := make([]maps.LatLng, 0, len(homes))
	for _, home := range homes {
		location, err := p.client.Geocode(ctx, home.Address)
		if err != nil {
			return nil, gnerr.Wrapf(err, "locating %s", home.Name)
		}
		origins = append(origins, location)
	}

	destinations := make([]maps.LatLng, 0, 2)
	for _, address := range []string{first, second} {
		location, err := p.client.Geocode(ctx, address)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, location)
	}

	matrix, err := p.client.DistanceMatrix(ctx, &MatrixRequest{
		Origins:      origins,
		Destinations: destinations,
	})
	if err != nil {
		return nil, err
	}
	if len(matrix.Durations) != len(homes) {
		return nil, gnerr.Internalf("matrix has %d rows for %d homes", len(matrix.Durations), len(homes))
	}

	commutes := make([]Commute, len(homes))
	for i, home := range homes {
		row := matrix.Durations[i]
		if len(row) != 2 {
			return nil, gnerr.Internalf("matrix row has %d destinations, want 2", len(row))
		}
		commutes[i] = Commute{Name: home.Name, Delta: row[0] - row[1]}
	}
	return commutes, nil
}

// sharedPlaces keeps places found near more than one home, deduplicated by
// coordinates, in first-seen order.
func sharedPlaces(found [][]Place) []Place {
	type entry struct {
		place Place
		homes int
	}

	var order []string
	seen := make(map[string]*entry)
	for _, places := range found {
		counted := make(map[string]bool)
		for _, place := range places {
			key := locationKey(place.Location)
			if counted[key] {
				continue
			}
			counted[key] = true

			if e, ok := seen[key]; ok {
				e.homes++
				continue
			}
			seen[key] = &entry{place: place, homes: 1}
			order = append(order, key)
		}
	}

	var shared []Place
	for _, key := range order {
		if seen[key].homes > 1 {
			shared = append(shared, seen[key].place)
		}
	}
	return shared
}

func rankByTotalDuration(matrix *Matrix) ([]Candidate, error) {
	if len(matrix.Durations) == 0 {
		return nil, gnerr.Internalf("distance matrix has no rows")
	}

	totals := make([]time.Duration, len(matrix.DestinationAddresses))
	for _, row := range matrix.Durations {
		if len(row) != len(totals) {
			return nil, gnerr.Internalf("matrix row has %d columns, want %d", len(row), len(totals))
		}
		for j, duration := range row {
			totals[j] += duration
		}
	}

	candidates := make([]Candidate, len(totals))
	for j, total := range totals {
		candidates[j] = Candidate{Address: matrix.DestinationAddresses[j], TotalDuration: total}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].TotalDuration != candidates[j].TotalDuration {
			return candidates[i].TotalDuration < candidates[j].TotalDuration
		}
		return candidates[i].Address < candidates[j].Address
	})
	return candidates, nil
}

func locationKey(l maps.LatLng) string {
	return fmt.Sprintf("%.6f,%.6f", l.Lat, l.Lng)
}
