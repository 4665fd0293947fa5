// Package cpufeature resolves the one-time, idempotent runtime dispatch
// decision the scan engine needs: whether the CPU profile favors the wider
// unrolled loop (Strategy AVX2, 8 vectors per main-loop iteration for one
// needle byte, 4 for two or three) or the baseline unroll the engine always
// supports (Strategy SSE2, 4 vectors for one needle byte, 2 for two or
// three).
//
// The probe runs once per process via the CPU feature flags exposed by
// golang.org/x/sys/cpu, exposed as an explicit, named strategy so callers
// never branch on a raw bool.
package cpufeature

import "golang.org/x/sys/cpu"

// Strategy names an unroll width the scan engine can run.
type Strategy int

const (
	// StrategySSE2 is the baseline: safe on every amd64 CPU and used as
	// the portable strategy on non-amd64 architectures too, since this
	// module has no architecture-specific assembly.
	StrategySSE2 Strategy = iota
	// StrategyAVX2 doubles the main-loop unroll factor when the process
	// detects AVX2 support, reducing loop-branch overhead on large
	// haystacks.
	StrategyAVX2
)

// current is resolved once at package initialization time: Go guarantees
// package-level var initializers run before any other code in the program
// observes them, which gives idempotent-once semantics without needing
// sync.Once or an atomic guard.
var current = detect()

func detect() Strategy {
	if cpu.X86.HasAVX2 {
		return StrategyAVX2
	}
	return StrategySSE2
}

// Current returns the dispatch decision made at process start. It never
// changes after initialization and is safe to call from any number of
// goroutines concurrently.
func Current() Strategy {
	return current
}
