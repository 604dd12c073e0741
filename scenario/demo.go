package scenario

// Demo returns the built-in looping scenario: one full
// fetch → prove → submit cycle followed by a rate-limit wait, using the
// message formats the real workers emit.
func Demo() *Scenario {
	return &Scenario{
		Name: "demo",
		Loop: true,
		Steps: []Step{
			{AtSec: 0, Worker: "prover", ProverID: 1, Type: "state_change", Msg: "state: Fetching", ProverState: "Fetching"},
			{AtSec: 0.5, Worker: "task_fetcher", Type: "info", Msg: "Step 1 of 4: Requesting task..."},
			{AtSec: 2, Worker: "task_fetcher", Type: "success", Msg: "Fetched Task-7f3a9c from orchestrator"},
			{AtSec: 2.5, Worker: "prover", ProverID: 1, Type: "state_change", Msg: "state: Proving", ProverState: "Proving"},
			{AtSec: 3, Worker: "prover", ProverID: 1, Type: "success", Msg: "Step 2 of 4: Proving task Task-7f3a9c"},
			{AtSec: 11, Worker: "prover", ProverID: 1, Type: "success", Msg: "Step 3 of 4: Proof generated for task Task-7f3a9c"},
			{AtSec: 11.5, Worker: "prover", ProverID: 1, Type: "state_change", Msg: "state: Submitting", ProverState: "Submitting"},
			{AtSec: 12, Worker: "proof_submitter", Type: "success", Msg: "Step 4 of 4: Proof submitted successfully"},
			{AtSec: 12.5, Worker: "prover", ProverID: 1, Type: "state_change", Msg: "state: Waiting", ProverState: "Waiting"},
			{AtSec: 13, Worker: "task_fetcher", Type: "info", Msg: "Rate limited, ready for next task (15)"},
			{AtSec: 28, Worker: "task_fetcher", Type: "info", Msg: "Backoff complete"},
		},
	}
}
