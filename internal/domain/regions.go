package domain

// Location is a fixed map coordinate for a funding category. The map
// view has no real geocoding: each category maps to one representative
// location, mirroring where its typical funders cluster.
type Location struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Region string  `json:"region"`
}

// UnknownRegion groups grants whose category has no location entry.
const UnknownRegion = "Unknown"

// CategoryLocations is the fixed category -> location lookup table.
var CategoryLocations = map[string]Location{
	"STEM":                     {Lat: 40.7128, Lng: -74.006, Region: "Northeast"},
	"Arts":                     {Lat: 34.0522, Lng: -118.2437, Region: "West"},
	"Literacy":                 {Lat: 41.8781, Lng: -87.6298, Region: "Midwest"},
	"Technology":               {Lat: 37.7749, Lng: -122.4194, Region: "West"},
	"Professional Development": {Lat: 39.9526, Lng: -75.1652, Region: "Northeast"},
	"Special Education":        {Lat: 29.7604, Lng: -95.3698, Region: "South"},
}

// Regions lists the selectable regions in display order.
var Regions = []string{"Northeast", "South", "Midwest", "West"}

// RegionOf returns the region for a category, or UnknownRegion.
func RegionOf(category string) string {
	if loc, ok := CategoryLocations[category]; ok {
		return loc.Region
	}
	return UnknownRegion
}

// GroupByRegion buckets grants by the region of their category.
func GroupByRegion(grants []*Grant) map[string][]*Grant {
	out := make(map[string][]*Grant)
	for _, g := range grants {
		region := RegionOf(g.Category)
		out[region] = append(out[region], g)
	}
	return out
}
