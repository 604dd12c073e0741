package engine

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"

	"github.com/ftahirops/provertop/model"
)

// EventLogWriter appends raw worker events to a JSONL file, so a live
// run can be re-analyzed later with -events.
type EventLogWriter struct {
	path string
	mu   sync.Mutex
}

// NewEventLogWriter creates a writer for the given path.
func NewEventLogWriter(path string) *EventLogWriter {
	return &EventLogWriter{path: path}
}

// Write appends an event to the log file.
func (w *EventLogWriter) Write(e model.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(e)
}

// ReadEventLog reads all events from a JSONL file. Malformed lines are
// skipped; a missing file yields an empty result.
func ReadEventLog(path string) ([]model.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var events []model.Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024) // 1MB line limit
	for scanner.Scan() {
		var e model.Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue // skip malformed lines
		}
		events = append(events, e)
	}
	return events, scanner.Err()
}
