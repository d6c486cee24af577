package graph

import (
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// QueryError means the store rejected the statement itself (syntax error,
// unknown identifier, missing parameter). The store's diagnostic message is
// carried unmodified so the caller can see what was wrong with the query.
type QueryError struct {
	Code    string
	Message string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query rejected by store: %s", e.Message)
}

// GatewayError means the store was unreachable, timed out, or failed while
// executing. Distinct from QueryError so callers can tell "your query is
// wrong" apart from "the backend is down".
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("graph store unavailable: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ClassifyError maps a driver error onto the gateway's error taxonomy. Server
// errors classified as client errors (Neo.ClientError.*) become QueryErrors;
// everything else, including transport failures and cancellations, becomes a
// GatewayError.
func ClassifyError(err error) error {
	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) && neoErr.Classification() == "ClientError" {
		return &QueryError{Code: neoErr.Code, Message: neoErr.Msg}
	}
	return &GatewayError{Err: err}
}
