package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ftahirops/provertop/model"
)

// Message markers emitted by the prover workers. The messages are free
// text; these are the ad hoc conventions the workers use to embed
// structured data. A message that matches none of them carries no
// information for the aggregator.
const (
	taskMarker = "Task-"

	msgStepRequesting = "Step 1 of 4"
	msgRequesting     = "Step 1 of 4: Requesting task..."
	msgProvingStart   = "Step 2 of 4: Proving task"
	msgProofGenerated = "Step 3 of 4: Proof generated for task"
	msgSubmitted      = "Step 4 of 4: Proof submitted successfully"

	msgReadyForTask = "ready for next task"
	msgRateLimited  = "rate limited"
	msgRetrying     = "retrying"
)

// extractTaskID finds the task identifier token in a message: the marker
// prefix followed by a run of non-whitespace characters. Returns false
// when the marker is absent or followed by nothing.
func extractTaskID(msg string) (string, bool) {
	start := strings.Index(msg, taskMarker)
	if start < 0 {
		return "", false
	}
	rest := msg[start:]
	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		end = len(rest)
	}
	if end <= len(taskMarker) {
		return "", false
	}
	return rest[:end], true
}

// parseBackoffSecs extracts the declared backoff duration from a
// "ready for next task (<secs>)" message. The seconds live between the
// first '(' and the first ')', with the open strictly preceding the
// close. Returns false on any pattern miss.
func parseBackoffSecs(msg string) (uint64, bool) {
	if !strings.Contains(msg, msgReadyForTask) {
		return 0, false
	}
	open := strings.Index(msg, "(")
	if open < 0 {
		return 0, false
	}
	closeIdx := strings.Index(msg, ")")
	if closeIdx < 0 || open >= closeIdx {
		return 0, false
	}
	secs, err := strconv.ParseUint(msg[open+1:closeIdx], 10, 64)
	if err != nil {
		return 0, false
	}
	return secs, true
}

// isFetchCompletion reports whether a TaskFetcher success message marks a
// completed fetch. Rate-limit responses, retries, and the initial
// requesting step are progress markers, not completions.
func isFetchCompletion(e model.Event) bool {
	if e.Worker.Role != model.RoleTaskFetcher || e.Type != model.EventSuccess {
		return false
	}
	return !strings.Contains(e.Msg, msgRateLimited) &&
		!strings.Contains(e.Msg, msgRetrying) &&
		!strings.Contains(e.Msg, msgStepRequesting)
}

// isFetchTerminal reports whether a TaskFetcher event concludes a fetch
// attempt (success or error, excluding the requesting progress marker).
func isFetchTerminal(e model.Event) bool {
	if e.Worker.Role != model.RoleTaskFetcher {
		return false
	}
	if e.Type != model.EventSuccess && e.Type != model.EventError {
		return false
	}
	return !strings.Contains(e.Msg, msgStepRequesting)
}
