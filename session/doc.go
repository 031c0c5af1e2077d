// Package session owns the mutable state of a SOM training run and drives it.
//
// Session holds {samples, weights, iteration, config, metrics} behind one
// mutex and exposes a single atomic Step: read weights → compute update →
// install new weights → evaluate error → append a MetricsRecord. Timer
// ticks, batch runs and external callers are therefore serialized, and
// consumers only ever receive deep-copied snapshots.
//
// Loop is the timer driver. While running it calls Step every
// (100 − speed) tick units (speed ∈ [0,90], unit 1ms by default). Stop
// ceases scheduling and waits for the driver goroutine to exit; a step is
// never interrupted mid-way. Loop.Reset stops first, then regenerates.
//
// Lifecycle:
//
//	s, _ := session.New(dataCfg, trainCfg, session.WithSeed(1))
//	s.Run(1000)                  // batch execution
//	loop := session.NewLoop(s, session.WithSpeed(50))
//	_ = loop.Start(ctx)          // timer execution
//	loop.Stop()
//	_ = loop.Reset()             // iteration 0, metrics cleared, new run ID
//
// Observability:
//
//	WithOnStep and WithOnReset hooks are called after the session lock is
//	released. A hook must not call Loop.Stop or Loop.Reset synchronously:
//	Stop waits for the driver goroutine that is running the hook.
package session
