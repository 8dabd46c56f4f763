package pmtiles

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"routecast/config"
	"routecast/internal/domain/entity"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTile = maptile.At(orb.Point{-79.52, 9.0}, defaultZoom)

func tileCenter() orb.Point {
	return testTile.Bound().Center()
}

func offset(dLng, dLat float64) orb.Point {
	c := tileCenter()

	return orb.Point{c.Lon() + dLng, c.Lat() + dLat}
}

func road(class string, oneway bool, points ...orb.Point) *geojson.Feature {
	feature := geojson.NewFeature(orb.LineString(points))
	feature.Properties["class"] = class
	if oneway {
		feature.Properties["oneway"] = true
	}

	return feature
}

func encodeTile(t *testing.T, layer string, features ...*geojson.Feature) []byte {
	t.Helper()

	fc := geojson.NewFeatureCollection()
	fc.Features = features
	layers := mvt.NewLayers(map[string]*geojson.FeatureCollection{layer: fc})
	layers.ProjectToTile(testTile)

	data, err := mvt.Marshal(layers)
	require.NoError(t, err)

	return data
}

func newTestProvider(t *testing.T, data []byte) (*Provider, *int) {
	t.Helper()

	fetches := 0
	fetch := func(_ context.Context, tile maptile.Tile) ([]byte, error) {
		fetches++
		if tile == testTile {
			return data, nil
		}

		return nil, nil
	}

	cfg := &config.Config{
		Routing: &config.RoutingConfig{MaxSnapDistanceKm: 0.5, DefaultSpeedKmh: 30},
	}

	return newProvider(cfg, fetch, slog.New(slog.NewTextHandler(io.Discard, nil))), &fetches
}

func TestTileDecoder_Decode(t *testing.T) {
	data := encodeTile(t, defaultRoadLayer,
		road("primary", true, offset(-0.005, 0), offset(0.005, 0)),
		road("footway", false, offset(0, -0.005), offset(0, 0.005)),
		road("busway", false, offset(0, 0), offset(0.001, 0.001)),
	)

	segments, err := newTileDecoder(defaultRoadLayer, 30).decode(data, testTile)

	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "primary", segments[0].Class)
	assert.Equal(t, 60.0, segments[0].SpeedKmh)
	assert.True(t, segments[0].OneWay)
	assert.InDelta(t, offset(-0.005, 0).Lon(), segments[0].Points[0].Lon(), 1e-4)
	assert.Equal(t, 30.0, segments[1].SpeedKmh, "unknown class uses the default speed")
}

func TestTileDecoder_MissingLayer(t *testing.T) {
	data := encodeTile(t, "water", road("primary", false, offset(0, 0), offset(0.001, 0)))

	segments, err := newTileDecoder(defaultRoadLayer, 30).decode(data, testTile)

	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestTileDecoder_Garbage(t *testing.T) {
	_, err := newTileDecoder(defaultRoadLayer, 30).decode([]byte("not a tile"), testTile)

	assert.Error(t, err)
}

func TestRoadGraph_FastestPathPrefersSpeed(t *testing.T) {
	graph := newRoadGraph()
	west, east := orb.Point{0, 0}, orb.Point{0.02, 0}

	// Short residential street against a longer motorway detour.
	graph.addSegment(roadSegment{Points: orb.LineString{west, east}, SpeedKmh: 10})
	graph.addSegment(roadSegment{Points: orb.LineString{west, {0.01, 0.005}, east}, SpeedKmh: 100})

	result, ok := graph.fastestPath(graph.node(west), graph.node(east))

	require.True(t, ok)
	assert.Len(t, result.path, 3)
	assert.Greater(t, result.meters, geo.PointDistance(west, east)*1000)
}

func TestRoadGraph_OneWay(t *testing.T) {
	graph := newRoadGraph()
	a, b := orb.Point{0, 0}, orb.Point{0.01, 0}
	graph.addSegment(roadSegment{Points: orb.LineString{a, b}, SpeedKmh: 30, OneWay: true})

	_, ok := graph.fastestPath(graph.node(a), graph.node(b))
	assert.True(t, ok)

	_, ok = graph.fastestPath(graph.node(b), graph.node(a))
	assert.False(t, ok)
}

func TestProvider_Routes(t *testing.T) {
	data := encodeTile(t, defaultRoadLayer,
		road("primary", false, offset(-0.006, 0), offset(0, 0), offset(0.006, 0)),
		road("residential", false, offset(0, 0), offset(0, 0.006)),
	)
	provider, fetches := newTestProvider(t, data)

	start := entity.NewGeoPointFromOrb(offset(-0.006, 0.0002))
	end := entity.NewGeoPointFromOrb(offset(0.006, -0.0002))

	routes, err := provider.Routes(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, routes, 1)
	route := routes[0]
	assert.Equal(t, start.Point(), route.Path[0])
	assert.Equal(t, end.Point(), route.Path[len(route.Path)-1])
	assert.GreaterOrEqual(t, len(route.Path), 5)
	assert.InDelta(t, geo.PathLength(route.Path)*1000, route.Distance, 5)
	assert.Greater(t, route.BaseDuration, 0.0)
	assert.Equal(t, "pmtiles", provider.Name())

	calls := *fetches
	_, err = provider.Routes(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, calls, *fetches, "tiles are cached after the first route")
}

func TestProvider_NoRoute(t *testing.T) {
	data := encodeTile(t, defaultRoadLayer,
		road("primary", true, offset(-0.006, 0), offset(0.006, 0)),
	)
	provider, _ := newTestProvider(t, data)

	tests := []struct {
		name  string
		start orb.Point
		end   orb.Point
	}{
		{name: "against one-way", start: offset(0.006, 0), end: offset(-0.006, 0)},
		{name: "start off network", start: offset(0, 0.009), end: offset(0.006, 0)},
		{name: "end off network", start: offset(-0.006, 0), end: offset(0, -0.009)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.Routes(context.Background(),
				entity.NewGeoPointFromOrb(tt.start), entity.NewGeoPointFromOrb(tt.end))

			assert.True(t, errors.Is(err, service.ErrNoRoute), "got %v", err)
		})
	}
}

func TestParseSourcePath(t *testing.T) {
	tests := []struct {
		source  string
		bucket  string
		tileset string
	}{
		{source: "/data/panama.pmtiles", bucket: "file:///data", tileset: "panama"},
		{source: "file:///data/tiles/panama.pmtiles", bucket: "file:///data/tiles", tileset: "panama"},
		{source: "https://cdn.example.com/t/panama.pmtiles", bucket: "https://cdn.example.com/t", tileset: "panama"},
		{source: "gs://maps/panama.pmtiles", bucket: "gs://maps", tileset: "panama"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			bucket, tileset := parseSourcePath(tt.source)

			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.tileset, tileset)
		})
	}
}
