// Package resource implements Controller, a governor for the memory,
// background-concurrency, and IO budgets that guard a process holding one
// or more Ontology instances.
//
// Controller tracks three resource types:
//
//   - Memory: the arena bytes a Builder.Freeze is willing to commit to
//     the resulting Ontology (fail-fast, non-blocking).
//   - Background concurrency: how many Subontology extractions may run
//     at once, so a caller fanning out subontology builds across an
//     enrichment or similarity workload doesn't oversubscribe CPU.
//   - IO: throttles binary export/import (SaveToFileThrottled,
//     LoadFromFileThrottled) so a large ontology dump doesn't starve
//     foreground queries sharing the same disk or network path.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                        Controller                            │
//	├─────────────────┬─────────────────┬─────────────────────────┤
//	│  Memory Budget  │  Background      │  IO Rate Limiter        │
//	│  (weighted sem) │  Workers (sem)   │  (token bucket)         │
//	├─────────────────┼─────────────────┼─────────────────────────┤
//	│  AcquireMemory  │  AcquireBack-    │  AcquireIO              │
//	│  TryAcquire-    │  ground          │  RateLimitedWriter      │
//	│  Memory         │  TryAcquire      │  RateLimitedReader      │
//	│  ReleaseMemory  │  Release         │                         │
//	└─────────────────┴─────────────────┴─────────────────────────┘
//
// # Memory Budget
//
// Memory tracking uses a weighted semaphore for the hard limit and an
// atomic counter for usage reporting. Builder.Freeze uses the non-blocking
// TryAcquireMemory: freeze is CPU-bound and allocation-light by contract,
// so a caller that would exceed the budget should fail immediately rather
// than wait for headroom that isn't coming:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB budget across held ontologies
//	})
//
//	ont, err := hpo.NewBuilder(hpo.WithResourceController(rc)).Freeze()
//	// err wraps resource.ErrMemoryLimitExceeded if the estimated arena
//	// size would exceed the budget.
//	defer ont.Close() // releases the reservation
//
// AcquireMemory is the blocking counterpart, for a caller willing to wait
// for another holder to release before proceeding:
//
//	if err := rc.AcquireMemory(ctx, 1024*1024); err != nil {
//	    return err // ctx canceled or deadline exceeded while waiting
//	}
//	defer rc.ReleaseMemory(1024 * 1024)
//
// # Background Concurrency
//
// Bounds concurrent Subontology extractions sharing a Controller:
//
//	rc := resource.NewController(resource.Config{
//	    MaxBackgroundWorkers: 4,
//	})
//
//	sub, err := ont.Subontology(rootID, hpo.SubontologyOptions{})
//	// Subontology calls TryAcquireBackground internally when the parent
//	// Ontology was built with WithResourceController; it returns
//	// resource.ErrBackgroundLimitExceeded once 4 extractions are in flight.
//
// # IO Rate Limiting
//
// Token bucket rate limiter for binary export/import IO:
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 * 1024 * 1024, // 100MB/s
//	})
//
//	err := ont.SaveToFileThrottled(ctx, "out.hpobin", rc)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use. The underlying
// implementations use atomic operations and sync primitives.
//
// # Nil Safety
//
// All methods handle a nil *Controller gracefully - they become no-ops
// (or, for Try* variants, report success). This lets Ontology and Builder
// thread an optional *Controller through without a nil check at every
// call site.
package resource
