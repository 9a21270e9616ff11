// SPDX-License-Identifier: MIT

// Package antpath searches multi-modal transport networks for cheap routes
// with ant colony optimization.
//
// A network is an M×C×C cost tensor: M transport modes over C cities, where
// cost[m][i][j] is the price of travelling from city i to city j by mode m
// and NaN marks a missing edge. Independent colonies lay pheromone over the
// same tensor shape, walk ants from a start city to a target city and keep
// the best-scoring route; an orchestrator runs several seeded colonies and
// picks the winner.
//
// Subpackages:
//
//	tensor/       dense M×C×C tensors and sparse transition counts
//	network/      graph model, YAML/JSON documents and validation
//	pheromone/    initialization, transition probabilities, sampling, evaporation
//	walk/         a single ant's walk with step budget and dead-end detection
//	score/        route cost, visited bonus and score
//	colony/       the round loop, convergence metric and abort rule
//	orchestrator/ multiple seeded colonies, selection and exact baseline
//	dijkstra/     exact shortest routes over the collapsed mode tensor
//	builder/      random network generation
//	rng/          seed derivation and deterministic random streams
//	pool/         bounded concurrent task execution
//	store/        run history (in-memory and SQLite)
//	config/       file and environment configuration
//	logging/      logrus setup and context-scoped loggers
//
// The antpath command (cmd/antpath) ties these together:
//
//	antpath generate -n 12 -o net.yaml
//	antpath solve net.yaml --from city0 --to city11 --colonies 4 --baseline
//	antpath runs list
package antpath
