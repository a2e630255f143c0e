package metrics

import (
	"time"
)

type SearchMetric struct {
	Iterations    int
	Exploration   float64
	Duration      time.Duration
	Episodes      int
	RootFrontiers int // Episodes whose rollout started at the root itself
	NodesCreated  int
}

type MoveMetric struct {
	Step   int
	Player string
	Action string // Empty for a pass
	SearchMetric
}

type GameMetric struct {
	Winner     string
	Margin     int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Passes     int
}

type Collector interface {
	Start(iterations int, exploration float64)
	AddEpisode()
	AddRootFrontier()
	AddNode()
	Complete() SearchMetric
}

// collector is not safe for concurrent use; a search runs on one goroutine.
type collector struct {
	iterations    int
	exploration   float64
	startTime     time.Time
	episodes      int
	rootFrontiers int
	nodes         int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int, exploration float64) {
	*m = collector{
		iterations:  iterations,
		exploration: exploration,
		startTime:   time.Now(),
	}
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddRootFrontier() {
	m.rootFrontiers++
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations:    m.iterations,
		Exploration:   m.exploration,
		Duration:      time.Since(m.startTime),
		Episodes:      m.episodes,
		RootFrontiers: m.rootFrontiers,
		NodesCreated:  m.nodes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int, exploration float64) {}
func (m *dummyCollector) AddEpisode()                               {}
func (m *dummyCollector) AddRootFrontier()                          {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
