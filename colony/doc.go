// SPDX-License-Identifier: MIT

// Package colony runs one ant colony until it converges, hits its round cap,
// or gives up.
//
// Round structure:
//
//  1. Freeze a snapshot of the pheromone field.
//  2. Walk Config.AntsPerRound ants against it (in parallel when
//     Config.ParallelAnts > 1; each ant has its own random stream).
//  3. Score successful walks and keep the best path (strict >).
//  4. If more than half of the ants were lost, abort with an empty result.
//  5. Deposit pheromone from every scored walk, evaporate the rest.
//  6. metric = stddev(scores / mean(scores)); continue while
//     metric ≥ Config.ConvergenceThreshold and rounds ≤ Config.MaxRounds.
//
// A walk whose total cost is zero cannot be scored; it is counted as lost and
// contributes neither a deposit nor a score to the metric.
//
// Randomness: ant a of round r draws from rng.Derive(seed, r·AntsPerRound+a),
// so the same seed gives the same result for any ParallelAnts value.
//
// Observability: prometheus counters under the "antpath" namespace, one
// OpenTelemetry span per Run, and logrus fields from the context logger.
package colony
