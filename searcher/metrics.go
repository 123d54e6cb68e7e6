package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	Duration time.Duration
	Nodes    int64 // States visited, root included
	Cutoffs  int64 // Non-terminal states evaluated because depth ran out
	Prunes   int64 // Times remaining siblings were skipped
}

type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	AddPrune()
	Complete() SearchMetrics
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes.Load(),
		Cutoffs:  m.cutoffs.Load(),
		Prunes:   m.prunes.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) AddCutoff()              {}
func (m *dummyCollector) AddPrune()               {}
func (m *dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
