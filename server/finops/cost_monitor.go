// Package finops tracks LLM spend for the assistant pipeline. It is a
// lightweight in-process monitor, not a billing system: per-model token
// counters plus a cost estimate from static per-million-token rates.
package finops

import (
	"sync"
	"time"
)

// Per-million-token USD rates used for the estimate. Unknown models
// fall back to defaultRate.
var modelRates = map[string]rate{
	"gemini-2.0-flash": {input: 0.10, output: 0.40},
	"gpt-4o-mini":      {input: 0.15, output: 0.60},
	"gpt-4o":           {input: 2.50, output: 10.00},
}

var defaultRate = rate{input: 0.50, output: 1.50}

type rate struct {
	input  float64
	output float64
}

// CostMonitor accumulates completion usage per model.
type CostMonitor struct {
	mu     sync.Mutex
	models map[string]*modelUsage
}

type modelUsage struct {
	requests         int64
	promptTokens     int64
	completionTokens int64
	totalLatency     time.Duration
}

// NewCostMonitor creates an empty monitor.
func NewCostMonitor() *CostMonitor {
	return &CostMonitor{
		models: make(map[string]*modelUsage),
	}
}

// RecordCompletion adds one completion's usage. Implements the LLM
// service's usage recorder hook.
func (m *CostMonitor) RecordCompletion(model string, promptTokens, completionTokens int, latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	usage, ok := m.models[model]
	if !ok {
		usage = &modelUsage{}
		m.models[model] = usage
	}
	usage.requests++
	usage.promptTokens += int64(promptTokens)
	usage.completionTokens += int64(completionTokens)
	usage.totalLatency += latency
}

// ModelReport is the aggregated usage for one model.
type ModelReport struct {
	Model            string  `json:"model"`
	Requests         int64   `json:"requests"`
	PromptTokens     int64   `json:"promptTokens"`
	CompletionTokens int64   `json:"completionTokens"`
	AvgLatencyMs     int64   `json:"avgLatencyMs"`
	EstimatedCostUSD float64 `json:"estimatedCostUsd"`
}

// Report is a point-in-time view of all recorded usage.
type Report struct {
	TotalRequests    int64          `json:"totalRequests"`
	EstimatedCostUSD float64        `json:"estimatedCostUsd"`
	Models           []*ModelReport `json:"models"`
}

// Report summarizes recorded usage with cost estimates.
func (m *CostMonitor) Report() *Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	report := &Report{Models: []*ModelReport{}}
	for model, usage := range m.models {
		cost := estimateCost(model, usage.promptTokens, usage.completionTokens)
		entry := &ModelReport{
			Model:            model,
			Requests:         usage.requests,
			PromptTokens:     usage.promptTokens,
			CompletionTokens: usage.completionTokens,
			EstimatedCostUSD: cost,
		}
		if usage.requests > 0 {
			entry.AvgLatencyMs = usage.totalLatency.Milliseconds() / usage.requests
		}
		report.Models = append(report.Models, entry)
		report.TotalRequests += usage.requests
		report.EstimatedCostUSD += cost
	}
	return report
}

// Reset clears all recorded usage.
func (m *CostMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.models = make(map[string]*modelUsage)
}

func estimateCost(model string, promptTokens, completionTokens int64) float64 {
	r, ok := modelRates[model]
	if !ok {
		r = defaultRate
	}
	return float64(promptTokens)/1e6*r.input + float64(completionTokens)/1e6*r.output
}
