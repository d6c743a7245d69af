package geo

import (
	"math"
	"testing"
)

func TestDistanceIdenticalPoints(t *testing.T) {
	got := Distance(-34.6037, -58.3816, -34.6037, -58.3816)
	if got != 0 {
		t.Errorf("Distance(p, p) = %v, want 0", got)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	d1 := Distance(-34.6037, -58.3816, -34.9215, -57.9545)
	d2 := Distance(-34.9215, -57.9545, -34.6037, -58.3816)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceBuenosAires(t *testing.T) {
	// Obelisco to Belgrano, roughly 2-3 km apart.
	got := Distance(-34.6037, -58.3816, -34.5831, -58.3916)
	if got < 2 || got > 3 {
		t.Errorf("Distance = %v km, want between 2 and 3", got)
	}
}

func TestDistanceKnownCities(t *testing.T) {
	// Buenos Aires to Cordoba is about 650 km in a straight line.
	got := Distance(-34.6037, -58.3816, -31.4201, -64.1888)
	if got < 630 || got > 670 {
		t.Errorf("Distance = %v km, want around 650", got)
	}
}

func TestIsValidCoordinate(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{"origin", 0, 0, true},
		{"buenos aires", -34.6037, -58.3816, true},
		{"lat too high", 90.1, 0, false},
		{"lat too low", -90.1, 0, false},
		{"lon too high", 0, 180.1, false},
		{"lon too low", 0, -180.1, false},
		{"lat boundary", 90, 0, true},
		{"lon boundary", 0, -180, true},
		{"nan lat", math.NaN(), 0, false},
		{"nan lon", 0, math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCoordinate(tt.lat, tt.lon); got != tt.want {
				t.Errorf("IsValidCoordinate(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestComputeBoundingBoxContainsCircle(t *testing.T) {
	centers := []struct{ lat, lon float64 }{
		{-34.6037, -58.3816},
		{0, 0},
		{60, 120},
		{-45, -170},
	}

	for _, c := range centers {
		radius := 25.0
		box := ComputeBoundingBox(c.lat, c.lon, radius)

		// Sample points on the circle edge; every one must land inside
		// the box for the pre-filter to be safe.
		for deg := 0; deg < 360; deg += 15 {
			bearing := float64(deg) * math.Pi / 180
			lat := c.lat + (radius/EarthRadiusKm)*(180/math.Pi)*math.Cos(bearing)
			lon := c.lon + (radius/EarthRadiusKm)*(180/math.Pi)*math.Sin(bearing)/math.Cos(c.lat*math.Pi/180)

			if lat < box.MinLat || lat > box.MaxLat || lon < box.MinLon || lon > box.MaxLon {
				t.Errorf("center (%v, %v): circle point (%v, %v) outside box %+v",
					c.lat, c.lon, lat, lon, box)
			}
		}
	}
}

type point struct {
	lat, lon float64
	name     string
}

func (p point) Coordinates() (float64, float64) {
	return p.lat, p.lon
}

func TestRankByDistanceFiltersAndSorts(t *testing.T) {
	center := point{lat: -34.60, lon: -58.38}

	// Roughly 0.008993 degrees of latitude per km.
	items := []point{
		{lat: center.lat + 4*0.008993, lon: center.lon, name: "four"},
		{lat: center.lat + 1*0.008993, lon: center.lon, name: "one"},
		{lat: center.lat + 10*0.008993, lon: center.lon, name: "ten"},
	}

	ranked := RankByDistance(items, center.lat, center.lon, 5)

	if len(ranked) != 2 {
		t.Fatalf("got %d results, want 2", len(ranked))
	}
	if ranked[0].Item.name != "one" || ranked[1].Item.name != "four" {
		t.Errorf("order = [%s, %s], want [one, four]", ranked[0].Item.name, ranked[1].Item.name)
	}
	if ranked[0].DistanceKm >= ranked[1].DistanceKm {
		t.Errorf("distances not ascending: %v then %v", ranked[0].DistanceKm, ranked[1].DistanceKm)
	}
}

func TestRankByDistanceInclusiveBound(t *testing.T) {
	center := point{lat: 0, lon: 0}
	// 5 km due north; the rounded distance equals the radius exactly.
	items := []point{{lat: 5 * (180 / math.Pi) / EarthRadiusKm, lon: 0, name: "edge"}}

	ranked := RankByDistance(items, center.lat, center.lon, 5)
	if len(ranked) != 1 {
		t.Fatalf("item at exactly the radius was excluded")
	}
	if ranked[0].DistanceKm != 5 {
		t.Errorf("DistanceKm = %v, want 5", ranked[0].DistanceKm)
	}
}

func TestRankByDistanceRounding(t *testing.T) {
	ranked := RankByDistance([]point{{lat: 0.01, lon: 0.0123}}, 0, 0, 100)
	if len(ranked) != 1 {
		t.Fatal("expected one result")
	}
	d := ranked[0].DistanceKm
	if d != math.Round(d*100)/100 {
		t.Errorf("DistanceKm = %v, want 2-decimal rounding", d)
	}
}

func TestRankByDistanceStableTies(t *testing.T) {
	items := []point{
		{lat: 0.01, lon: 0, name: "first"},
		{lat: -0.01, lon: 0, name: "second"},
	}

	ranked := RankByDistance(items, 0, 0, 10)
	if len(ranked) != 2 {
		t.Fatalf("got %d results, want 2", len(ranked))
	}
	if ranked[0].Item.name != "first" || ranked[1].Item.name != "second" {
		t.Errorf("tie order = [%s, %s], want input order", ranked[0].Item.name, ranked[1].Item.name)
	}
}

func TestRankByDistanceEmptyInput(t *testing.T) {
	ranked := RankByDistance([]point{}, 0, 0, 10)
	if len(ranked) != 0 {
		t.Errorf("got %d results, want 0", len(ranked))
	}
}
