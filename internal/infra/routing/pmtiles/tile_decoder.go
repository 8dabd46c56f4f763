package pmtiles

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

// roadSegment is one drivable line pulled out of a vector tile.
type roadSegment struct {
	Points   orb.LineString
	Class    string
	SpeedKmh float64
	OneWay   bool
}

// classSpeeds maps OpenMapTiles transportation classes to free-flow speeds in km/h.
var classSpeeds = map[string]float64{
	"motorway":     100,
	"trunk":        80,
	"primary":      60,
	"secondary":    50,
	"tertiary":     40,
	"minor":        30,
	"residential":  30,
	"unclassified": 30,
	"service":      20,
}

// nonDrivable classes are skipped when building the graph.
var nonDrivable = map[string]bool{
	"path":       true,
	"track":      true,
	"rail":       true,
	"transit":    true,
	"ferry":      true,
	"footway":    true,
	"cycleway":   true,
	"pedestrian": true,
}

// tileDecoder extracts road segments from one layer of an MVT tile.
type tileDecoder struct {
	layer        string
	defaultSpeed float64
}

func newTileDecoder(layer string, defaultSpeed float64) *tileDecoder {
	return &tileDecoder{layer: layer, defaultSpeed: defaultSpeed}
}

// decode accepts gzipped or plain MVT bytes and returns segments in WGS84.
func (d *tileDecoder) decode(data []byte, tile maptile.Tile) ([]roadSegment, error) {
	layers, err := mvt.UnmarshalGzipped(data)
	if err != nil {
		if layers, err = mvt.Unmarshal(data); err != nil {
			return nil, errors.Wrapf(err, "decode tile %d/%d/%d", tile.Z, tile.X, tile.Y)
		}
	}

	var roads *mvt.Layer
	for _, layer := range layers {
		if layer.Name == d.layer {
			roads = layer

			break
		}
	}
	if roads == nil {
		return nil, nil
	}

	roads.ProjectToWGS84(tile)

	segments := make([]roadSegment, 0, len(roads.Features))
	for _, feature := range roads.Features {
		segments = append(segments, d.segments(feature)...)
	}

	return segments, nil
}

func (d *tileDecoder) segments(feature *geojson.Feature) []roadSegment {
	class := feature.Properties.MustString("class", "")
	if nonDrivable[class] {
		return nil
	}

	var lines []orb.LineString
	switch geom := feature.Geometry.(type) {
	case orb.LineString:
		lines = []orb.LineString{geom}
	case orb.MultiLineString:
		lines = geom
	default:
		return nil
	}

	speed, ok := classSpeeds[class]
	if !ok {
		speed = d.defaultSpeed
	}
	oneWay := isOneWay(feature.Properties["oneway"])

	out := make([]roadSegment, 0, len(lines))
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		out = append(out, roadSegment{Points: line, Class: class, SpeedKmh: speed, OneWay: oneWay})
	}

	return out
}

func isOneWay(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case int64:
		return v == 1
	case uint64:
		return v == 1
	case string:
		return v == "yes" || v == "true" || v == "1"
	default:
		return false
	}
}
