package geo

import "math"

// EarthRadiusMeters радиус сферической модели Земли
const EarthRadiusMeters = 6371000.0

// Point координаты в десятичных градусах
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid проверяет, что широта и долгота лежат в допустимых диапазонах
func (p Point) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// Distance возвращает расстояние по большому кругу между точками в метрах (формула гаверсинусов)
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// погрешность округления может вывести h за пределы [0,1] около антиподов
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Box прямоугольник в градусах; границы включаются
type Box struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

// BoundingBox наименьший прямоугольник, содержащий все точки не дальше radius метров от center.
// Если круг захватывает полюс или пересекает 180-й меридиан, долгота не ограничивается.
func BoundingBox(center Point, radius float64) Box {
	delta := radius / EarthRadiusMeters
	lat := toRadians(center.Latitude)

	box := Box{
		MinLatitude:  toDegrees(lat - delta),
		MaxLatitude:  toDegrees(lat + delta),
		MinLongitude: -180,
		MaxLongitude: 180,
	}
	if box.MinLatitude <= -90 || box.MaxLatitude >= 90 {
		box.MinLatitude = math.Max(-90, box.MinLatitude)
		box.MaxLatitude = math.Min(90, box.MaxLatitude)
		return box
	}

	dLon := toDegrees(math.Asin(math.Sin(delta) / math.Cos(lat)))
	if center.Longitude-dLon < -180 || center.Longitude+dLon > 180 {
		return box
	}
	box.MinLongitude = center.Longitude - dLon
	box.MaxLongitude = center.Longitude + dLon
	return box
}

func (b Box) Contains(p Point) bool {
	return p.Latitude >= b.MinLatitude && p.Latitude <= b.MaxLatitude &&
		p.Longitude >= b.MinLongitude && p.Longitude <= b.MaxLongitude
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
