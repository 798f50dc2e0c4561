// Package lowpass provides the exponential low-pass building blocks of the
// adaptive filter: the smoothing-factor calculator and the one-stage
// exponential moving average.
//
//   - [Alpha]:      smoothing factor from sampling rate and cutoff frequency
//   - [Filter]:     stateless scalar EMA step
//   - [FilterInto]: stateless per-dimension vector EMA step
//   - [State]:      seeded stateful stage folding each sample into the last output
//
// Every checked entry point has an explicit ...Unchecked twin that skips
// validation; the caller asserts the documented preconditions. The unchecked
// forms are intended for hot paths where parameters were validated once up
// front.
package lowpass
