package domain

import "errors"

var (
	// ErrDuplicateNode indicates a node id was added to a graph twice.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrUnknownNode indicates a node id is not present in the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrInvalidCost indicates a negative, NaN or infinite edge cost.
	ErrInvalidCost = errors.New("invalid edge cost")

	// ErrNotFound indicates the destination is unreachable from the source.
	ErrNotFound = errors.New("no path found")

	// ErrGraphSealed indicates a mutation after GraphBuilder.Build.
	ErrGraphSealed = errors.New("graph is sealed")
)
