package traffic

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ecoroute/graph"
	"golang.org/x/exp/slog"
)

// ErrCacheCorrupt marks a cache file whose timestamp line cannot be
// read. Callers treat it as a cache miss and resample.
var ErrCacheCorrupt = errors.New("traffic cache corrupt")

// Cache persists per-edge congestion multipliers in a plain text file:
// the first line is a unix timestamp in seconds shared by all entries,
// every following line is "u v factor" for one undirected edge. Only one
// direction is recorded, symmetry is reconstructed on load.
//
// The file is read and conditionally rewritten once per run. Concurrent
// runs against the same file may race; that is an accepted limitation.
type Cache struct {
	file string
	now  func() time.Time
}

func NewCache(file string) *Cache {
	return &Cache{file: file, now: time.Now}
}

// IsFresh reports whether the cache timestamp is within the TTL.
// A timestamp in the future (clock skew) is always stale.
func (self *Cache) IsFresh(ttl_minutes int) bool {
	timestamp, err := self.readTimestamp()
	if err != nil {
		return false
	}
	age := self.now().Unix() - timestamp
	return age >= 0 && age <= int64(ttl_minutes)*60
}

func (self *Cache) readTimestamp() (int64, error) {
	data, err := os.ReadFile(self.file)
	if err != nil {
		return 0, err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	timestamp, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad timestamp line: %v", ErrCacheCorrupt, err)
	}
	return timestamp, nil
}

// Load resets every factor of g to the free-flow default and overlays
// the persisted entries symmetrically. Entries referencing unknown
// nodes are skipped, edges without an entry keep the default.
func (self *Cache) Load(g *graph.Graph) error {
	data, err := os.ReadFile(self.file)
	if err != nil {
		return err
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 {
		return fmt.Errorf("%w: empty file", ErrCacheCorrupt)
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64); err != nil {
		return fmt.Errorf("%w: bad timestamp line: %v", ErrCacheCorrupt, err)
	}

	g.ResetFactors()
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue
		}
		u, err1 := strconv.ParseInt(fields[0], 10, 32)
		v, err2 := strconv.ParseInt(fields[1], 10, 32)
		factor, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		if edge, ok := g.GetEdgeBetween(int32(u), int32(v)); ok {
			g.SetFactor(edge, factor)
		}
	}
	return nil
}

// Refresh resamples traffic factors for g and rewrites the cache file
// with a new timestamp. Undirected edge pairs are visited in
// upper-triangular index order; every Nth pair is sampled through the
// sampler at the edge midpoint, the rest default to free flow. A failed
// sample degrades that edge to free flow without aborting the run.
//
// Sampling only a fraction of the pairs bounds external calls on a
// dense O(V^2) graph while keeping costs traffic-sensitive; it is an
// explicit approximation, not a correctness guarantee.
func (self *Cache) Refresh(g *graph.Graph, sample_every_n int, sampler ISampler) error {
	if sample_every_n < 1 {
		sample_every_n = 1
	}
	v := g.NodeCount()
	count := 0
	var builder strings.Builder
	builder.WriteString(strconv.FormatInt(self.now().Unix(), 10))
	builder.WriteString("\n")
	for i := 0; i < v; i++ {
		for j := i + 1; j < v; j++ {
			edge, ok := g.GetEdgeBetween(int32(i), int32(j))
			if !ok {
				continue
			}
			factor := graph.MIN_TRAFFIC_FACTOR
			if count%sample_every_n == 0 {
				sampled, err := sampler.Sample(g.EdgeMidpoint(edge))
				if err != nil {
					slog.Warn(fmt.Sprintf("traffic sample %v-%v failed, assuming free flow: %v", i, j, err))
				} else {
					factor = graph.ClampFactor(sampled)
				}
			}
			count++
			g.SetFactor(edge, factor)
			builder.WriteString(fmt.Sprintf("%d %d %.6f\n", i, j, factor))
		}
	}
	return os.WriteFile(self.file, []byte(builder.String()), 0644)
}
