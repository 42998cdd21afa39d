// Package resilience provides retry and circuit breaking that report their
// failures through problem receivers.
//
// Retry hands every failed attempt to the configured receiver as a problem
// chain carrying an Attempt attachment, so a caller can collect partial
// failures or abort early on a critical one:
//
//	acc := &receiver.Accumulator{}
//	receiver.Critical[AuthError](acc)
//	cfg := resilience.DefaultRetryConfig()
//	cfg.Problems = acc
//	result, err := resilience.Retry(ctx, cfg, fetch)
//
// A CircuitBreaker is itself a receiver: it swallows problems while closed
// and escalates them once it trips:
//
//	cb := resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("upstream"))
//	for _, job := range jobs {
//	    if err := receiver.Give(cb, process(job)); err != nil {
//	        break
//	    }
//	}
package resilience
