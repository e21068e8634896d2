package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned for coordinates outside of WGS 84 bounds.
var ErrOutOfRange = errors.New("coordinate out of range")

const earthRadiusKm = 6371.0

// Point is a geographic coordinate (WGS 84).
type Point struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Validate checks that latitude is in [-90,90] and longitude in [-180,180].
func (p Point) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %v: %w", p.Latitude, ErrOutOfRange)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %v: %w", p.Longitude, ErrOutOfRange)
	}
	return nil
}

func (p Point) String() string {
	return fmt.Sprintf("%.5f,%.5f", p.Latitude, p.Longitude)
}

// DistanceKm returns the great-circle distance between a and b using the haversine formula.
func DistanceKm(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Centroid returns the arithmetic mean of the given points. It returns the zero point for no points.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range points {
		c.Latitude += p.Latitude
		c.Longitude += p.Longitude
	}
	n := float64(len(points))
	return Point{Latitude: c.Latitude / n, Longitude: c.Longitude / n}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
