package pmtiles

import (
	"container/heap"
	"math"

	"routecast/internal/geo"

	"github.com/paulmach/orb"
)

type nodeID int32

type edge struct {
	to      nodeID
	meters  float64
	seconds float64
}

// roadGraph is a directed graph whose nodes are tile vertices snapped to ~1 m.
type roadGraph struct {
	points []orb.Point
	edges  [][]edge
	index  map[[2]int64]nodeID
}

func newRoadGraph() *roadGraph {
	return &roadGraph{index: make(map[[2]int64]nodeID)}
}

// node returns the id for p, creating it on first sight. Shared vertices across tiles merge.
func (g *roadGraph) node(p orb.Point) nodeID {
	key := [2]int64{int64(math.Round(p.Lon() * 1e5)), int64(math.Round(p.Lat() * 1e5))}
	if id, ok := g.index[key]; ok {
		return id
	}

	id := nodeID(len(g.points))
	g.points = append(g.points, p)
	g.edges = append(g.edges, nil)
	g.index[key] = id

	return id
}

func (g *roadGraph) addSegment(s roadSegment) {
	prev := g.node(s.Points[0])
	for _, p := range s.Points[1:] {
		cur := g.node(p)
		if cur == prev {
			continue
		}

		meters := geo.PointDistance(g.points[prev], g.points[cur]) * 1000
		seconds := meters / (s.SpeedKmh / 3.6)

		g.edges[prev] = append(g.edges[prev], edge{to: cur, meters: meters, seconds: seconds})
		if !s.OneWay {
			g.edges[cur] = append(g.edges[cur], edge{to: prev, meters: meters, seconds: seconds})
		}
		prev = cur
	}
}

// nearest returns the closest node to p and its distance in kilometers.
func (g *roadGraph) nearest(p orb.Point) (nodeID, float64, bool) {
	if len(g.points) == 0 {
		return 0, 0, false
	}

	best, bestKm := nodeID(0), math.MaxFloat64
	for i, candidate := range g.points {
		if d := geo.PointDistance(p, candidate); d < bestKm {
			best, bestKm = nodeID(i), d
		}
	}

	return best, bestKm, true
}

// pathResult is the fastest path between two nodes.
type pathResult struct {
	path    orb.LineString
	meters  float64
	seconds float64
}

type queueItem struct {
	id      nodeID
	seconds float64
}

type minQueue []queueItem

func (q minQueue) Len() int           { return len(q) }
func (q minQueue) Less(i, j int) bool { return q[i].seconds < q[j].seconds }
func (q minQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *minQueue) Push(x any)        { *q = append(*q, x.(queueItem)) }
func (q *minQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]

	return item
}

// fastestPath runs Dijkstra on travel time and rebuilds the vertex path.
func (g *roadGraph) fastestPath(from, to nodeID) (pathResult, bool) {
	n := len(g.points)
	if int(from) >= n || int(to) >= n {
		return pathResult{}, false
	}

	seconds := make([]float64, n)
	meters := make([]float64, n)
	prev := make([]nodeID, n)
	for i := range seconds {
		seconds[i] = math.Inf(1)
		prev[i] = -1
	}
	seconds[from] = 0

	queue := &minQueue{{id: from}}
	for queue.Len() > 0 {
		item := heap.Pop(queue).(queueItem)
		if item.seconds > seconds[item.id] {
			continue
		}
		if item.id == to {
			break
		}

		for _, e := range g.edges[item.id] {
			next := item.seconds + e.seconds
			if next < seconds[e.to] {
				seconds[e.to] = next
				meters[e.to] = meters[item.id] + e.meters
				prev[e.to] = item.id
				heap.Push(queue, queueItem{id: e.to, seconds: next})
			}
		}
	}

	if math.IsInf(seconds[to], 1) {
		return pathResult{}, false
	}

	var reversed orb.LineString
	for cur := to; cur != -1; cur = prev[cur] {
		reversed = append(reversed, g.points[cur])
	}
	path := make(orb.LineString, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}

	return pathResult{path: path, meters: meters[to], seconds: seconds[to]}, true
}
