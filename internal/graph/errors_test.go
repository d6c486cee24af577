package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyErrorClientErrorBecomesQueryError(t *testing.T) {
	storeErr := &neo4j.Neo4jError{
		Code: "Neo.ClientError.Statement.SyntaxError",
		Msg:  "Invalid input 'MACH'",
	}

	err := ClassifyError(storeErr)

	var queryErr *QueryError
	require.True(t, errors.As(err, &queryErr))
	assert.Equal(t, "Invalid input 'MACH'", queryErr.Message)
	assert.Contains(t, queryErr.Error(), "Invalid input 'MACH'")
}

func TestClassifyErrorServerErrorBecomesGatewayError(t *testing.T) {
	storeErr := &neo4j.Neo4jError{
		Code: "Neo.TransientError.General.DatabaseUnavailable",
		Msg:  "database is unavailable",
	}

	err := ClassifyError(storeErr)

	var gwErr *GatewayError
	assert.True(t, errors.As(err, &gwErr))
}

func TestClassifyErrorTransportFailureBecomesGatewayError(t *testing.T) {
	err := ClassifyError(context.DeadlineExceeded)

	var gwErr *GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
