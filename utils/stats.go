package utils

import "time"

// Stats summarizes one session for the log
type Stats struct {
	TotalGenerations  int
	PatternsSeeded    int
	AveragePopulation float64
	PeakPopulation    int
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Seeded records a new starting pattern
func (s *Stats) Seeded(population int) {
	s.PatternsSeeded++
	s.Update(population)
}

// Advanced records one computed generation
func (s *Stats) Advanced(population int) {
	s.TotalGenerations++
	s.Update(population)
}

func (s *Stats) Update(population int) {
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
