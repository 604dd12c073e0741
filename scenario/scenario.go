// Package scenario feeds scripted worker events into the event log, so
// the dashboard can run without a live prover: demos, UI work, and
// regression recordings all use the same scripts.
package scenario

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ftahirops/provertop/model"
)

// Step is one scripted event, emitted AtSec seconds after the scenario
// (or loop iteration) starts.
type Step struct {
	AtSec       float64 `yaml:"at"`
	Worker      string  `yaml:"worker"` // task_fetcher, prover, proof_submitter
	ProverID    int     `yaml:"prover_id,omitempty"`
	Type        string  `yaml:"type"` // success, error, state_change, info
	Msg         string  `yaml:"msg"`
	ProverState string  `yaml:"prover_state,omitempty"`
}

// Scenario is an ordered script of steps.
type Scenario struct {
	Name  string `yaml:"name"`
	Loop  bool   `yaml:"loop"`
	Steps []Step `yaml:"steps"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	for i, st := range s.Steps {
		switch model.WorkerRole(st.Worker) {
		case model.RoleTaskFetcher, model.RoleProver, model.RoleProofSubmitter:
		default:
			return fmt.Errorf("step %d: unknown worker %q", i, st.Worker)
		}
		switch model.EventType(st.Type) {
		case model.EventSuccess, model.EventError, model.EventStateChange, model.EventInfo:
		default:
			return fmt.Errorf("step %d: unknown event type %q", i, st.Type)
		}
	}
	return nil
}

// Event materializes the step as a live event stamped now.
func (st Step) Event() model.Event {
	w := model.Worker{Role: model.WorkerRole(st.Worker), ProverID: st.ProverID}
	e := model.NewEvent(w, model.EventType(st.Type), st.Msg)
	if st.ProverState != "" {
		ps := model.ProverState(st.ProverState)
		e.ProverState = &ps
	}
	return e
}

// Feeder replays a scenario into an event log on schedule.
type Feeder struct {
	scn  *Scenario
	log  *model.EventLog
	stop chan struct{}
}

// NewFeeder creates a feeder for the given scenario and log.
func NewFeeder(scn *Scenario, log *model.EventLog) *Feeder {
	return &Feeder{scn: scn, log: log, stop: make(chan struct{})}
}

// Start launches the feed in a goroutine.
func (f *Feeder) Start() {
	go f.run()
}

// Stop ends the feed. Safe to call once.
func (f *Feeder) Stop() {
	close(f.stop)
}

func (f *Feeder) run() {
	for {
		start := time.Now()
		for _, st := range f.scn.Steps {
			due := start.Add(time.Duration(st.AtSec * float64(time.Second)))
			if wait := time.Until(due); wait > 0 {
				select {
				case <-f.stop:
					return
				case <-time.After(wait):
				}
			}
			f.log.Append(st.Event())
		}
		if !f.scn.Loop {
			return
		}
		select {
		case <-f.stop:
			return
		default:
		}
	}
}
