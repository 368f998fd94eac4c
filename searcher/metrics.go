package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one completed SelectMove call.
type SearchMetric struct {
	Level    int
	Depth    int
	Nodes    int
	Leaves   int
	Cutoffs  int
	Duration time.Duration
}

// Collector gathers search statistics without changing search behavior.
type Collector interface {
	Start(level, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
	Last() SearchMetric
}

type collector struct {
	level     int
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	last      SearchMetric
}

// NewCollector returns a collector that records real statistics.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(level, depth int) {
	c.level = level
	c.depth = depth
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() { c.nodes.Add(1) }

func (c *collector) AddLeaf() { c.leaves.Add(1) }

func (c *collector) AddCutoff() { c.cutoffs.Add(1) }

func (c *collector) Complete() SearchMetric {
	c.last = SearchMetric{
		Level:    c.level,
		Depth:    c.depth,
		Nodes:    int(c.nodes.Load()),
		Leaves:   int(c.leaves.Load()),
		Cutoffs:  int(c.cutoffs.Load()),
		Duration: time.Since(c.startTime),
	}
	return c.last
}

func (c *collector) Last() SearchMetric { return c.last }

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(level, depth int) {}

func (dummyCollector) AddNode() {}

func (dummyCollector) AddLeaf() {}

func (dummyCollector) AddCutoff() {}

func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }

func (dummyCollector) Last() SearchMetric { return SearchMetric{} }
