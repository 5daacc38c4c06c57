package searcher

import "time"

// SearchMetric summarizes one FindMove call.
type SearchMetric struct {
	Depth     int
	Nodes     int
	Leaves    int
	Terminals int
	Duration  time.Duration
}

// Collector accumulates search statistics. The search is synchronous and
// single-threaded, so plain counters suffice.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddTerminal()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	nodes     int
	leaves    int
	terminals int
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.nodes = 0
	c.leaves = 0
	c.terminals = 0
	c.startTime = time.Now()
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) AddLeaf() {
	c.leaves++
}

func (c *collector) AddTerminal() {
	c.terminals++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     c.depth,
		Nodes:     c.nodes,
		Leaves:    c.leaves,
		Terminals: c.terminals,
		Duration:  time.Since(c.startTime),
	}
}

type noopCollector struct{}

func NewNoopCollector() Collector {
	return &noopCollector{}
}

func (noopCollector) Start(depth int)        {}
func (noopCollector) AddNode()               {}
func (noopCollector) AddLeaf()               {}
func (noopCollector) AddTerminal()           {}
func (noopCollector) Complete() SearchMetric { return SearchMetric{} }
