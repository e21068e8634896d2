package stubwidget

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/networkteam/pickupcheck/geo"
)

// Kind of a pickup point.
type Kind string

const (
	KindZBox  Kind = "zbox"
	KindPoint Kind = "point"
)

// PickupPoint is one entry of the stub catalog.
type PickupPoint struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Street     string    `json:"street"`
	District   string    `json:"district"`
	City       string    `json:"city"`
	Kind       Kind      `json:"kind"`
	Wheelchair bool      `json:"wheelchair"`
	Nonstop    bool      `json:"nonstop"`
	Location   geo.Point `json:"location"`
}

// Query selects pickup points.
type Query struct {
	// Center is the simulated user position.
	Center geo.Point
	// RadiusKm limits results around Center. Ignored when Text is set.
	RadiusKm float64
	// Text matches name, street, district or city (case-insensitive).
	Text           string
	ZBoxOnly       bool
	WheelchairOnly bool
}

// Match is a pickup point with its distance to the query center.
type Match struct {
	PickupPoint
	DistanceKm float64 `json:"distanceKm"`
}

// Cluster aggregates points of one city that are not part of the detailed results.
type Cluster struct {
	City     string    `json:"city"`
	Count    int       `json:"count"`
	Location geo.Point `json:"location"`
}

// Result of a catalog search.
type Result struct {
	Points   []Match   `json:"points"`
	Clusters []Cluster `json:"clusters"`
}

// Catalog is an immutable in-memory set of pickup points.
type Catalog struct {
	points []PickupPoint
}

// NewCatalog creates a catalog of the given points.
func NewCatalog(points []PickupPoint) *Catalog {
	return &Catalog{points: slices.Clone(points)}
}

// Points returns all points of the catalog.
func (c *Catalog) Points() []PickupPoint {
	return slices.Clone(c.points)
}

// Search returns matching points ordered by distance and clusters for all other points passing the filters.
func (c *Catalog) Search(q Query) Result {
	filtered := lo.Filter(c.points, func(p PickupPoint, _ int) bool {
		if q.ZBoxOnly && p.Kind != KindZBox {
			return false
		}
		if q.WheelchairOnly && !p.Wheelchair {
			return false
		}
		return true
	})

	text := strings.ToLower(strings.TrimSpace(q.Text))
	matches := lo.FilterMap(filtered, func(p PickupPoint, _ int) (Match, bool) {
		m := Match{PickupPoint: p, DistanceKm: geo.DistanceKm(q.Center, p.Location)}
		if text != "" {
			return m, p.matchesText(text)
		}
		return m, m.DistanceKm <= q.RadiusKm
	})
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	matchedIDs := lo.SliceToMap(matches, func(m Match) (string, struct{}) {
		return m.ID, struct{}{}
	})
	rest := lo.Reject(filtered, func(p PickupPoint, _ int) bool {
		_, ok := matchedIDs[p.ID]
		return ok
	})

	return Result{
		Points:   matches,
		Clusters: clusterByCity(rest),
	}
}

func clusterByCity(points []PickupPoint) []Cluster {
	clusters := lo.MapToSlice(lo.GroupBy(points, func(p PickupPoint) string {
		return p.City
	}), func(city string, group []PickupPoint) Cluster {
		return Cluster{
			City:  city,
			Count: len(group),
			Location: geo.Centroid(lo.Map(group, func(p PickupPoint, _ int) geo.Point {
				return p.Location
			})),
		}
	})
	slices.SortFunc(clusters, func(a, b Cluster) int {
		return cmp.Compare(a.City, b.City)
	})
	return clusters
}

// Suggest returns up to limit distinct districts and cities containing text.
func (c *Catalog) Suggest(text string, limit int) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" || limit <= 0 {
		return []string{}
	}

	candidates := lo.Uniq(lo.FlatMap(c.points, func(p PickupPoint, _ int) []string {
		return []string{p.District, p.City}
	}))
	suggestions := lo.Filter(candidates, func(s string, _ int) bool {
		return strings.Contains(strings.ToLower(s), text)
	})
	slices.Sort(suggestions)

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func (p PickupPoint) matchesText(lowerText string) bool {
	return lo.SomeBy([]string{p.Name, p.Street, p.District, p.City}, func(s string) bool {
		return strings.Contains(strings.ToLower(s), lowerText)
	})
}
