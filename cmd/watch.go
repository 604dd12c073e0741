package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ftahirops/provertop/engine"
	"github.com/ftahirops/provertop/model"
)

// runWatch prints one status line per tick. It is the headless analogue
// of the TUI for logging, CI soaks, and terminals without altscreen.
func runWatch(ticker engine.Ticker, interval time.Duration, count int) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	t := time.NewTicker(interval)
	defer t.Stop()

	fmt.Printf("provertop v%s — watch mode (interval %s)\n", Version, interval)

	for i := 0; ; {
		select {
		case <-sig:
			fmt.Println("\nStopped.")
			return nil
		case <-t.C:
			snap := ticker.Tick()
			if snap == nil {
				continue
			}
			fmt.Println(watchLine(snap))

			i++
			if count > 0 && i >= count {
				return nil
			}
		}
	}
}

// watchLine formats one snapshot as a compact status line.
func watchLine(snap *model.Snapshot) string {
	task := snap.CurrentTask
	if task == "" {
		task = "-"
	}
	state := string(snap.ProverState)
	if state == "" {
		state = "-"
	}

	fetch := "ready"
	if !snap.TaskFetch.CanFetchNow {
		fetch = fmt.Sprintf("wait %ds", int(snap.TaskFetch.Remaining().Seconds()))
	}

	return fmt.Sprintf("[%s] #%d %s | task=%s fetch=%s(%s) | proved=%d/%d pts=%d runtime=%s | cpu=%.1f%% ram=%s peak=%s",
		snap.Timestamp.Format("15:04:05"),
		snap.Tick,
		state,
		task,
		snap.Fetching,
		fetch,
		snap.ZkVM.TasksProved,
		snap.ZkVM.TasksExecuted,
		snap.ZkVM.TotalPoints,
		snap.ZkVM.Runtime.Round(time.Second),
		snap.System.CPUPct,
		humanize.IBytes(snap.System.RAMBytes),
		humanize.IBytes(snap.System.PeakRAMBytes),
	)
}
