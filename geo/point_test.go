package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/networkteam/pickupcheck/geo"
)

func TestPoint_Validate(t *testing.T) {
	tests := []struct {
		name    string
		point   geo.Point
		wantErr bool
	}{
		{name: "Prague", point: geo.Point{Latitude: 50.0755, Longitude: 14.4378}},
		{name: "north pole", point: geo.Point{Latitude: 90, Longitude: 0}},
		{name: "date line", point: geo.Point{Latitude: 0, Longitude: -180}},
		{name: "latitude too large", point: geo.Point{Latitude: 90.0001, Longitude: 0}, wantErr: true},
		{name: "longitude too small", point: geo.Point{Latitude: 0, Longitude: -180.5}, wantErr: true},
		{name: "NaN", point: geo.Point{Latitude: math.NaN(), Longitude: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.point.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, geo.ErrOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDistanceKm(t *testing.T) {
	prague := geo.Point{Latitude: 50.0755, Longitude: 14.4378}
	brno := geo.Point{Latitude: 49.1951, Longitude: 16.6068}

	assert.InDelta(t, 0, geo.DistanceKm(prague, prague), 1e-9)
	// Prague to Brno is roughly 185 km as the crow flies
	assert.InDelta(t, 185, geo.DistanceKm(prague, brno), 5)
	assert.InDelta(t, geo.DistanceKm(prague, brno), geo.DistanceKm(brno, prague), 1e-9)
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, geo.Point{}, geo.Centroid(nil))

	c := geo.Centroid([]geo.Point{
		{Latitude: 50, Longitude: 14},
		{Latitude: 52, Longitude: 16},
	})
	assert.InDelta(t, 51, c.Latitude, 1e-9)
	assert.InDelta(t, 15, c.Longitude, 1e-9)
}
