package geo

import (
	"math"
	"sort"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points given in degrees. Symmetric; 0 for identical points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// IsValidCoordinate reports whether lat/lon fall in the valid
// [-90,90] / [-180,180] ranges.
func IsValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	if lat < -90 || lat > 90 {
		return false
	}
	if lon < -180 || lon > 180 {
		return false
	}
	return true
}

// BoundingBox is a rectangular coordinate range used to pre-filter
// candidates cheaply before exact distance computation.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// ComputeBoundingBox returns a box guaranteed to contain the full
// circle of radiusKm around the center. The longitude delta is widened
// by 1/cos(lat) to correct for meridian convergence, which diverges as
// |lat| approaches 90; the approximation is not valid near the poles.
func ComputeBoundingBox(lat, lon, radiusKm float64) BoundingBox {
	latDelta := (radiusKm / EarthRadiusKm) * (180 / math.Pi)
	lonDelta := latDelta / math.Cos(toRad(lat))

	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
}

// Locatable is anything with a geographic position.
type Locatable interface {
	Coordinates() (lat, lon float64)
}

// Ranked pairs an item with its distance from a search center.
type Ranked[T Locatable] struct {
	Item       T
	DistanceKm float64
}

// RankByDistance computes each item's distance to the center, rounded
// to 2 decimals, drops items farther than radiusKm (inclusive bound)
// and returns the rest ordered ascending by distance. The sort is
// stable, so input order breaks ties.
func RankByDistance[T Locatable](items []T, centerLat, centerLon, radiusKm float64) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(items))

	for _, item := range items {
		lat, lon := item.Coordinates()
		d := math.Round(Distance(centerLat, centerLon, lat, lon)*100) / 100
		if d > radiusKm {
			continue
		}
		ranked = append(ranked, Ranked[T]{Item: item, DistanceKm: d})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}
