// Package tasks is a small named-workload registry supplying the
// scheduler demo harness with the "ordered non-empty sequence of
// parameterless synchronous callables" the core expects from its host.
package tasks

import "fmt"

// Workload is a named, ordered sequence of task functions.
type Workload struct {
	Name string
	Fns  []func()
}

var registry = map[string]Workload{}

func register(name string, fns []func()) {
	registry[name] = Workload{Name: name, Fns: fns}
}

// Register installs a named workload, overwriting any previous workload
// registered under the same name. It is exported so a host embedding
// this package can add its own demo workloads alongside the built-ins.
func Register(name string, fns []func()) {
	register(name, fns)
}

// Lookup returns the task functions registered under name, or
// (nil, false) if nothing is registered there.
func Lookup(name string) ([]func(), bool) {
	w, ok := registry[name]
	if !ok {
		return nil, false
	}
	return w.Fns, true
}

// Names returns every currently registered workload name, for CLI usage
// text and error messages.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

func init() {
	register("hello", helloWorkload())
	register("overflow", overflowWorkload())
	register("fanout", fanoutWorkload())
}

// helloWorkload is a single trivial goroutine, the smallest possible
// demo: one G, one P, no contention.
func helloWorkload() []func() {
	return []func(){
		func() { fmt.Println("hello from the scheduler") },
	}
}

// overflowWorkload produces 260 no-op goroutines, more than one local
// queue holds (capacity 256). Queued against a single processor they drive
// the local-queue overflow path and the resulting global-queue spill; the
// CLI harness spreads goroutines round-robin, so it takes that path only
// when it runs with one processor.
func overflowWorkload() []func() {
	fns := make([]func(), 260)
	for i := range fns {
		fns[i] = func() {}
	}
	return fns
}

// fanoutWorkload produces 200 no-op goroutines. Pinned to a single
// processor while the rest sit idle they drive the work-stealing path;
// the CLI harness does not pin them and spreads them round-robin across
// processors.
func fanoutWorkload() []func() {
	fns := make([]func(), 200)
	for i := range fns {
		fns[i] = func() {}
	}
	return fns
}
