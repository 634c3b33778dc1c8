// Package asyncx holds the small set of concurrency helpers the outreach
// client relies on.
//
// # Futures
//
// A [Future] represents a value computed on another goroutine. [Run] starts
// the work immediately; [Future.Await] blocks until it is ready and may be
// called any number of times. [Future.AwaitContext] bounds only the wait, not
// the work.
//
//	fut := asyncx.Run(func() (Outcome, error) {
//	    return send(ctx, req)
//	})
//
//	// ... keep serving other forms ...
//
//	outcome, err := fut.Await()
//
// # Timeout
//
// [WithTimeout] gives a call a hard deadline. It returns as soon as the
// deadline passes even if the callee never looks at its context, which is
// what keeps a hung provider from pinning a form in flight.
//
// # Once
//
// [Once] wraps a constructor so that concurrent callers share a single
// result.
package asyncx
