// Package analysis summarizes finished wash-in runs.
//
// The package characterizes an uptake curve after the fact:
//
//   - [Ratio]: the FA/FI wash-in ratio over time
//   - [TimeToFraction]: when the ratio first reaches a threshold
//   - [Summarize]: a compact per-run summary for reports and comparisons
package analysis
