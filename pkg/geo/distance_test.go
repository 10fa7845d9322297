package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	points := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 10, Longitude: 20},
		{Latitude: -89.9999, Longitude: 179.9999},
		{Latitude: 55.7558, Longitude: 37.6173},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]Point{
		{{Latitude: 10, Longitude: 20}, {Latitude: 10.0007, Longitude: 20.0007}},
		{{Latitude: 55.75, Longitude: 37.61}, {Latitude: 59.93, Longitude: 30.31}},
		{{Latitude: -33.86, Longitude: 151.2}, {Latitude: 51.5, Longitude: -0.12}},
	}
	for _, p := range pairs {
		assert.InDelta(t, Distance(p[0], p[1]), Distance(p[1], p[0]), 1e-6)
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// один градус по меридиану ~111.195 км
	d := Distance(Point{Latitude: 0, Longitude: 0}, Point{Latitude: 1, Longitude: 0})
	assert.InDelta(t, 111195, d, 1)

	// ~110 м между двумя отчётами о пожаре
	d = Distance(Point{Latitude: 10, Longitude: 20}, Point{Latitude: 10.0007, Longitude: 20.0007})
	assert.InDelta(t, 108, d, 3)
}

func TestDistance_Antipodal(t *testing.T) {
	d := Distance(Point{Latitude: 0, Longitude: 0}, Point{Latitude: 0, Longitude: 180})
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadiusMeters, d, 1)

	d = Distance(Point{Latitude: 90, Longitude: 0}, Point{Latitude: -90, Longitude: 0})
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadiusMeters, d, 1)
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, Point{Latitude: 90, Longitude: -180}.Valid())
	assert.False(t, Point{Latitude: 90.1, Longitude: 0}.Valid())
	assert.False(t, Point{Latitude: 0, Longitude: 180.5}.Valid())
	assert.False(t, Point{Latitude: math.NaN(), Longitude: 0}.Valid())
}

func TestBoundingBox_ContainsEveryPointInRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	centers := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 55.7558, Longitude: 37.6173},
		{Latitude: -70, Longitude: 100},
		{Latitude: 10, Longitude: 20},
	}
	for _, c := range centers {
		for _, radius := range []float64{200, 5000, 50000} {
			box := BoundingBox(c, radius)
			// радиус в градусах с запасом, чтобы часть точек попадала за границу круга
			spread := 2 * radius / 111195 / math.Cos(c.Latitude*math.Pi/180)
			for i := 0; i < 2000; i++ {
				p := Point{
					Latitude:  c.Latitude + (rng.Float64()*2-1)*spread,
					Longitude: c.Longitude + (rng.Float64()*2-1)*spread,
				}
				if Distance(c, p) <= radius {
					assert.True(t, box.Contains(p), "center %v radius %.0f point %v", c, radius, p)
				}
			}
		}
	}
}

func TestBoundingBox_Equator(t *testing.T) {
	box := BoundingBox(Point{Latitude: 0, Longitude: 0}, 111195)
	assert.InDelta(t, -1, box.MinLatitude, 1e-3)
	assert.InDelta(t, 1, box.MaxLatitude, 1e-3)
	assert.InDelta(t, -1, box.MinLongitude, 1e-3)
	assert.InDelta(t, 1, box.MaxLongitude, 1e-3)
}

func TestBoundingBox_PoleAndAntimeridian(t *testing.T) {
	box := BoundingBox(Point{Latitude: 89.9, Longitude: 10}, 50000)
	assert.Equal(t, 90.0, box.MaxLatitude)
	assert.Equal(t, -180.0, box.MinLongitude)
	assert.Equal(t, 180.0, box.MaxLongitude)
	assert.True(t, box.Contains(Point{Latitude: 89.95, Longitude: -170}))

	box = BoundingBox(Point{Latitude: 0, Longitude: 179.999}, 1000)
	assert.Equal(t, -180.0, box.MinLongitude)
	assert.Equal(t, 180.0, box.MaxLongitude)
	assert.True(t, box.Contains(Point{Latitude: 0, Longitude: -179.999}))
	assert.Less(t, box.MaxLatitude, 0.01)
}
