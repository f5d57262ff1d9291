// Command eventuals-bench drives a small ForkJoin pipeline over a
// StaticThreadPool and reports how long it took. It exists to exercise the
// scheduler and fan-out/fan-in machinery end-to-end outside of tests.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.eventuals.dev/eventuals"
)

func main() {
	var (
		branches = flag.Int("branches", 8, "number of concurrent ForkJoin branches")
		workNS   = flag.Duration("work", 2*time.Millisecond, "simulated work duration per branch")
	)
	flag.Parse()

	if *branches <= 0 {
		fmt.Fprintln(os.Stderr, "eventuals-bench: -branches must be positive")
		os.Exit(1)
	}

	pool := eventuals.NewStaticThreadPool()
	defer func() {
		pool.Shutdown()
		pool.Wait()
	}()
	eventuals.SetDefaultScheduler(pool)

	pipeline := eventuals.Then(
		eventuals.Just(*branches),
		eventuals.ForkJoin("bench", *branches, func(index int, n int) eventuals.Eventual[eventuals.Unit, int] {
			return eventuals.Then(
				eventuals.Lazy(func() eventuals.Unit {
					time.Sleep(*workNS)
					return eventuals.Unit{}
				}),
				eventuals.Lazy(func() int { return index }),
			)
		}),
	)

	start := time.Now()
	results, err := eventuals.Dereference("eventuals-bench", pipeline)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventuals-bench: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ran %d branches on %d CPUs in %s\n", len(results), pool.Concurrency(), elapsed)
	fmt.Printf("branch order: %v\n", results)
}
