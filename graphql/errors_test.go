package graphql_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"go.appointy.com/gqlcore/graphql"
)

func TestClientErrorIsSanitized(t *testing.T) {
	err := graphql.NewCodedClientError("NOT_FOUND", "user %q not found", "u1")
	require.Equal(t, `user "u1" not found`, err.Error())
	require.Equal(t, err.Error(), graphql.SanitizeError(err))
	require.Equal(t, "NOT_FOUND", err.Code)
}

func TestSafeErrorHidesInnerMessage(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	safe := graphql.WrapAsSafeError(inner, "could not reach the users service")

	require.Equal(t, "could not reach the users service", graphql.SanitizeError(safe))
	require.ErrorIs(t, safe, inner)
	require.NotContains(t, graphql.SanitizeError(safe), "connection refused")
}

func TestSanitizeErrorFallsBackForPlainErrors(t *testing.T) {
	require.Equal(t, "internal server error", graphql.SanitizeError(errors.New("boom")))
}

func TestNestFieldErrorBuildsPathOutermostFirst(t *testing.T) {
	err := errors.New("boom")
	nested := graphql.NestFieldError("id", err)
	nested = graphql.NestFieldError("user", nested)
	nested = graphql.NestFieldError("me", nested)

	payload := graphql.ToFieldErrorPayload(nested)
	require.Equal(t, []string{"me", "user", "id"}, payload.Path)
	require.Equal(t, "internal server error", payload.Message)
}

func TestNestFieldErrorStopsAtSanitizedError(t *testing.T) {
	client := graphql.NewClientError("invalid email")
	nested := graphql.NestFieldError("email", client)
	// A SanitizedError is returned unwrapped; it never gains a path.
	require.Equal(t, client, nested)

	payload := graphql.ToFieldErrorPayload(nested)
	require.Equal(t, "invalid email", payload.Message)
	require.Empty(t, payload.Path)
}

func TestNestFieldErrorNilIsNil(t *testing.T) {
	require.Nil(t, graphql.NestFieldError("x", nil))
}

func TestBuildErrorFormatsWithAndWithoutTypeName(t *testing.T) {
	named := graphql.NewBuildError("User", "missing field %q", "email")
	require.Equal(t, `User: missing field "email"`, named.Error())

	unnamed := graphql.NewBuildError("", "no query root registered")
	require.Equal(t, "no query root registered", unnamed.Error())
}
