package service

import "errors"

var (
	// ErrGatewayUnavailable means the gateway never passed its readiness
	// probe inside the retry budget. Nothing has been mutated at that point.
	ErrGatewayUnavailable = errors.New("gateway not ready before timeout")

	// ErrSeedPersistence means the seed transaction failed and was rolled
	// back; minted gateway keys may be orphaned until the next run's purge.
	ErrSeedPersistence = errors.New("seed transaction failed")
)
