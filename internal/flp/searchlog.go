package flp

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// SearchLogger provides dual-format logging for a tabu search run.
// Console output is human-readable, file output is JSONL for analysis.
// Either writer may be nil to disable that channel.
type SearchLogger struct {
	console   io.Writer
	file      io.Writer
	startTime time.Time
}

// NewSearchLogger creates a logger writing to the given console and file
// streams.
func NewSearchLogger(console, file io.Writer) *SearchLogger {
	return &SearchLogger{console: console, file: file, startTime: time.Now()}
}

// logEvent is one JSONL record.
type logEvent struct {
	Event      string  `json:"event"`
	Timestamp  time.Time `json:"timestamp"`
	ElapsedMs  int64   `json:"elapsed_ms"`
	Iteration  *int    `json:"iteration,omitempty"`
	Objective  *float64 `json:"objective,omitempty"`
	Message    string  `json:"message,omitempty"`
}

func (l *SearchLogger) writeJSON(e logEvent) {
	if l.file == nil {
		return
	}
	e.Timestamp = time.Now()
	e.ElapsedMs = time.Since(l.startTime).Milliseconds()
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = l.file.Write(data)
}

// LogStart logs the beginning of a search run.
func (l *SearchLogger) LogStart(params TabuParams, initialObjective float64) {
	if l.console != nil {
		fmt.Fprintf(l.console, "starting tabu search: max_iterations=%d tabu_tenure=%d max_non_improving=%d\n",
			params.MaxIterations, params.TabuTenure, params.MaxNonImproving)
		fmt.Fprintf(l.console, "initial objective: %.4f\n", initialObjective)
	}
	l.writeJSON(logEvent{Event: "start", Objective: &initialObjective})
}

// LogImprovement logs a new best objective found at the given iteration.
func (l *SearchLogger) LogImprovement(iteration int, objective float64, elapsed time.Duration) {
	if l.console != nil {
		fmt.Fprintf(l.console, "iter %d: new best %.4f (elapsed %v)\n", iteration, objective, elapsed.Round(time.Millisecond))
	}
	l.writeJSON(logEvent{Event: "improvement", Iteration: &iteration, Objective: &objective})
}

// LogRestart logs a stagnation-triggered restart from a fresh encoding.
func (l *SearchLogger) LogRestart(iteration int) {
	if l.console != nil {
		fmt.Fprintf(l.console, "iter %d: stagnation detected, restarting from a random encoding\n", iteration)
	}
	l.writeJSON(logEvent{Event: "restart", Iteration: &iteration})
}

// LogEnd logs the end of the search run.
func (l *SearchLogger) LogEnd(bestObjective float64, iterations int, elapsed time.Duration) {
	if l.console != nil {
		fmt.Fprintf(l.console, "search complete: best=%.4f iterations=%d elapsed=%v\n",
			bestObjective, iterations, elapsed.Round(time.Millisecond))
	}
	l.writeJSON(logEvent{Event: "end", Iteration: &iterations, Objective: &bestObjective})
}
