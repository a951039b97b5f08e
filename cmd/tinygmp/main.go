// Command tinygmp is a demo harness for internal/sched: it resolves a
// processor-count policy, loads a named workload, runs the dispatch loop
// to termination, and prints a summary (and, optionally, the full debug
// trace).
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pokeyaro/tiny-gmp/internal/applog"
	"github.com/pokeyaro/tiny-gmp/internal/cpupolicy"
	"github.com/pokeyaro/tiny-gmp/internal/sched"
	"github.com/pokeyaro/tiny-gmp/internal/tasks"
)

var redf = color.New(color.FgRed, color.Bold).SprintfFunc()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		policyFlag  string
		procsFlag   int
		debugFlag   bool
		workload    string
		ticksBudget int
		printTrace  bool
	)

	cmd := &cobra.Command{
		Use:   "tinygmp",
		Short: "Run the tiny-gmp cooperative scheduler against a demo workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := applog.New(os.Stderr, debugFlag)

			fns, ok := tasks.Lookup(workload)
			if !ok {
				return configError(cmd.ErrOrStderr(), "unknown workload %q (known: %s)", workload, strings.Join(tasks.Names(), ", "))
			}
			if len(fns) == 0 {
				return configError(cmd.ErrOrStderr(), "workload %q registered with zero tasks", workload)
			}

			n, err := cpupolicy.Resolve(cpupolicy.Policy(policyFlag), procsFlag)
			if err != nil {
				return configError(cmd.ErrOrStderr(), "resolving processor policy %q: %v", policyFlag, err)
			}
			if n <= 0 {
				return configError(cmd.ErrOrStderr(), "processor policy %q resolved to %d processors", policyFlag, n)
			}

			log.Info("starting scheduler", "procs", n, "workload", workload, "debug", debugFlag)

			s := sched.Init(n, nil, debugFlag)
			var tracer *sched.CollectingTracer
			if debugFlag || printTrace {
				tracer = sched.NewCollectingTracer()
				s.SetTracer(tracer)
			}

			for _, fn := range fns {
				s.NewprocAuto(fn)
			}

			runWithBudget(s, ticksBudget)

			stats := s.Stats()
			s.Deinit()

			if printTrace && tracer != nil {
				for _, line := range tracer.Lines {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"dispatched=%d rounds=%d ticks=%d steals=%d/%d idle=%d global=%d live=%d\n",
				stats.Dispatched, stats.Rounds, stats.Ticks,
				stats.StealSuccesses, stats.StealAttempts,
				stats.NPidle, stats.GlobalQueueSize, stats.GoroutinesLive,
			)
			log.Info("scheduler terminated cleanly")
			return nil
		},
	}

	cmd.Flags().StringVar(&policyFlag, "policy", string(cpupolicy.OnePerCore), "processor count policy: one-per-core|half-cores|quarter-cores|double-cores|custom")
	cmd.Flags().IntVar(&procsFlag, "procs", 0, "explicit processor count, only consulted when --policy=custom")
	cmd.Flags().BoolVar(&debugFlag, "debug", true, "enable debug mode (invariant checks, debug trace collection)")
	cmd.Flags().StringVar(&workload, "workload", "hello", "named demo workload from internal/tasks")
	cmd.Flags().IntVar(&ticksBudget, "ticks-budget", 0, "safety cap on dispatch rounds for this run (0 = unbounded)")
	cmd.Flags().BoolVar(&printTrace, "print-trace", false, "print the captured debug trace before the summary line")

	return cmd
}

// runWithBudget runs the scheduler to termination, or until ticksBudget
// rounds have elapsed, whichever comes first. A budget of 0 means
// unbounded: Schedule is called directly and runs to its own
// termination invariant.
func runWithBudget(s *sched.Scheduler, ticksBudget int) {
	if ticksBudget <= 0 {
		s.Schedule()
		return
	}
	s.ScheduleBounded(uint64(ticksBudget))
}

// configError prints a red diagnostic to w and returns a plain error for
// cobra to propagate as a non-zero exit, without ever constructing the
// scheduler core.
func configError(w io.Writer, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, redf("tinygmp: %s", msg))
	return fmt.Errorf("tinygmp: %s", msg)
}
