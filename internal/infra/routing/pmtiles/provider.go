// Package pmtiles routes over a road graph built from PMTiles vector tiles.
package pmtiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"routecast/config"
	"routecast/internal/domain/entity"
	"routecast/internal/domain/service"
	"routecast/internal/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
)

const (
	providerName     = "pmtiles"
	defaultRoadLayer = "transportation"
	defaultZoom      = 14
	tileCacheSize    = 64
	maxTilesPerRoute = 256
	areaPaddingKm    = 0.5
)

// tileFetcher returns raw tile bytes, or nil when the tile does not exist.
type tileFetcher func(ctx context.Context, tile maptile.Tile) ([]byte, error)

// Provider implements service.RoutingProvider on PMTiles road data.
type Provider struct {
	zoom         maptile.Zoom
	maxSnapKm    float64
	defaultSpeed float64
	decoder      *tileDecoder
	fetch        tileFetcher
	logger       *slog.Logger

	mu       sync.RWMutex
	segments map[maptile.Tile][]roadSegment
}

// New opens the configured PMTiles archive (local path, file://, http(s):// or gs://).
func New(cfg *config.Config, logger *slog.Logger) (*Provider, error) {
	tiles := cfg.PMTiles
	if tiles == nil || tiles.Source == "" {
		return nil, errors.New("pmtiles source is required")
	}

	bucket, tileset := parseSourcePath(tiles.Source)

	// go-pmtiles logs through the standard logger; requests are already logged here.
	server, err := pmtiles.NewServer(bucket, "", log.New(io.Discard, "", 0), tileCacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "create pmtiles server")
	}
	server.Start()

	fetch := func(ctx context.Context, tile maptile.Tile) ([]byte, error) {
		status, _, data := server.Get(ctx, fmt.Sprintf("/%s/%d/%d/%d.mvt", tileset, tile.Z, tile.X, tile.Y))
		switch status {
		case http.StatusOK:
			return data, nil
		case http.StatusNotFound, http.StatusNoContent:
			return nil, nil
		default:
			return nil, errors.Errorf("pmtiles status %d for tile %d/%d/%d", status, tile.Z, tile.X, tile.Y)
		}
	}

	logger.Info("PMTiles routing initialized",
		slog.String("source", tiles.Source),
		slog.String("tileset", tileset),
	)

	return newProvider(cfg, fetch, logger), nil
}

func newProvider(cfg *config.Config, fetch tileFetcher, logger *slog.Logger) *Provider {
	layer, zoom := defaultRoadLayer, defaultZoom
	if cfg.PMTiles != nil {
		if cfg.PMTiles.RoadLayer != "" {
			layer = cfg.PMTiles.RoadLayer
		}
		if cfg.PMTiles.ZoomLevel > 0 {
			zoom = cfg.PMTiles.ZoomLevel
		}
	}

	return &Provider{
		zoom:         maptile.Zoom(zoom),
		maxSnapKm:    cfg.Routing.MaxSnapDistanceKm,
		defaultSpeed: cfg.Routing.DefaultSpeedKmh,
		decoder:      newTileDecoder(layer, cfg.Routing.DefaultSpeedKmh),
		fetch:        fetch,
		logger:       logger,
		segments:     make(map[maptile.Tile][]roadSegment),
	}
}

// Name identifies the engine.
func (p *Provider) Name() string {
	return providerName
}

// Routes returns the single fastest path over the tile graph. PMTiles offers no alternatives.
func (p *Provider) Routes(ctx context.Context, start, end entity.GeoPoint) ([]*entity.RoutePolyline, error) {
	graph, err := p.graphFor(ctx, start.Point(), end.Point())
	if err != nil {
		return nil, err
	}

	from, fromKm, ok := graph.nearest(start.Point())
	if !ok || fromKm > p.maxSnapKm {
		return nil, errors.Wrap(service.ErrNoRoute, "start is off the road network")
	}
	to, toKm, ok := graph.nearest(end.Point())
	if !ok || toKm > p.maxSnapKm {
		return nil, errors.Wrap(service.ErrNoRoute, "end is off the road network")
	}

	result, ok := graph.fastestPath(from, to)
	if !ok {
		return nil, errors.Wrap(service.ErrNoRoute, "points are not connected")
	}

	path := make(orb.LineString, 0, len(result.path)+2)
	path = append(path, start.Point())
	path = append(path, result.path...)
	path = append(path, end.Point())

	snapKm := fromKm + toKm

	return []*entity.RoutePolyline{{
		Path:         path,
		Distance:     result.meters + snapKm*1000,
		BaseDuration: result.seconds + snapKm/p.defaultSpeed*3600,
	}}, nil
}

// graphFor merges the cached segments of every tile around both points.
func (p *Provider) graphFor(ctx context.Context, a, b orb.Point) (*roadGraph, error) {
	tiles := tilesCovering(geo.Bounds([]orb.Point{a, b}, areaPaddingKm), p.zoom)
	if len(tiles) > maxTilesPerRoute {
		return nil, errors.Wrapf(service.ErrNoRoute, "route area spans %d tiles", len(tiles))
	}

	graph := newRoadGraph()
	for _, tile := range tiles {
		segments, err := p.tileSegments(ctx, tile)
		if err != nil {
			p.logger.DebugContext(ctx, "Skipping tile",
				slog.String("tile", fmt.Sprintf("%d/%d/%d", tile.Z, tile.X, tile.Y)),
				slog.Any("error", err),
			)

			continue
		}
		for _, segment := range segments {
			graph.addSegment(segment)
		}
	}

	return graph, nil
}

func (p *Provider) tileSegments(ctx context.Context, tile maptile.Tile) ([]roadSegment, error) {
	p.mu.RLock()
	cached, ok := p.segments[tile]
	p.mu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := p.fetch(ctx, tile)
	if err != nil {
		return nil, err
	}

	var segments []roadSegment
	if data != nil {
		if segments, err = p.decoder.decode(data, tile); err != nil {
			return nil, err
		}
	}

	p.mu.Lock()
	p.segments[tile] = segments
	p.mu.Unlock()

	return segments, nil
}

// tilesCovering lists the tiles intersecting bound, north-west first.
func tilesCovering(bound orb.Bound, zoom maptile.Zoom) []maptile.Tile {
	nw := maptile.At(orb.Point{bound.Min.Lon(), bound.Max.Lat()}, zoom)
	se := maptile.At(orb.Point{bound.Max.Lon(), bound.Min.Lat()}, zoom)

	tiles := make([]maptile.Tile, 0, int(se.X-nw.X+1)*int(se.Y-nw.Y+1))
	for x := nw.X; x <= se.X; x++ {
		for y := nw.Y; y <= se.Y; y++ {
			tiles = append(tiles, maptile.Tile{X: x, Y: y, Z: zoom})
		}
	}

	return tiles
}

// parseSourcePath splits a source into the bucket URL go-pmtiles expects and the tileset name.
//
//	"/data/panama.pmtiles"                   -> ("file:///data", "panama")
//	"https://cdn.example.com/t/panama.pmtiles" -> ("https://cdn.example.com/t", "panama")
func parseSourcePath(source string) (bucket, tileset string) {
	switch {
	case strings.Contains(source, "://") && !strings.HasPrefix(source, "file://"):
		idx := strings.LastIndex(source, "/")

		return source[:idx], strings.TrimSuffix(source[idx+1:], ".pmtiles")
	default:
		path := strings.TrimPrefix(source, "file://")

		return "file://" + filepath.Dir(path), strings.TrimSuffix(filepath.Base(path), ".pmtiles")
	}
}
