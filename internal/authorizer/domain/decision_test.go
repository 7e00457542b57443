package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aussiebroadwan/authorizer/internal/authorizer/domain"
	"github.com/stretchr/testify/require"
)

const arn = "arn:aws:execute-api:ap-southeast-2:123456789012:api/prod/GET/orders"

func TestBuildDecision(t *testing.T) {
	identity, err := domain.NewIdentity("user:123", []string{"write", "read"})
	require.NoError(t, err)

	t.Run("allow", func(t *testing.T) {
		d := domain.BuildDecision(arn, identity, nil)
		require.Equal(t, domain.Allow, d.Effect)
		require.True(t, d.Allowed())
		require.Equal(t, arn, d.Resource)
		require.Equal(t, "user:123", d.Principal)
		require.NotNil(t, d.Context)
		require.Equal(t, identity, *d.Context)
	})

	t.Run("any error denies", func(t *testing.T) {
		for _, cause := range []error{errors.New("anything"), domain.ErrMalformedSubject, domain.ErrScopeDenied} {
			d := domain.BuildDecision(arn, identity, cause)
			require.Equal(t, domain.Deny, d.Effect)
			require.Equal(t, arn, d.Resource)
			require.Empty(t, d.Principal)
			require.Nil(t, d.Context)
		}
	})

	t.Run("incomplete identity denies", func(t *testing.T) {
		d := domain.BuildDecision(arn, domain.Identity{Namespace: "user"}, nil)
		require.Equal(t, domain.Deny, d.Effect)
		require.Empty(t, d.Principal)
	})
}

func TestDecision_JSON(t *testing.T) {
	identity, err := domain.NewIdentity("user:123", []string{"write", "read"})
	require.NoError(t, err)

	t.Run("allow", func(t *testing.T) {
		raw, err := json.Marshal(domain.BuildDecision(arn, identity, nil))
		require.NoError(t, err)
		require.JSONEq(t, `{
			"effect": "Allow",
			"resource": "`+arn+`",
			"principal": "user:123",
			"context": {"namespace":"user","id":"123","scopes":["read","write"]}
		}`, string(raw))
	})

	t.Run("deny has empty context", func(t *testing.T) {
		raw, err := json.Marshal(domain.BuildDecision(arn, domain.Identity{}, errors.New("nope")))
		require.NoError(t, err)
		require.JSONEq(t, `{"effect":"Deny","resource":"`+arn+`","principal":"","context":{}}`, string(raw))
	})

	t.Run("decodes both shapes", func(t *testing.T) {
		for _, d := range []domain.Decision{
			domain.BuildDecision(arn, identity, nil),
			domain.BuildDecision(arn, identity, errors.New("nope")),
		} {
			raw, err := json.Marshal(d)
			require.NoError(t, err)

			var back domain.Decision
			require.NoError(t, json.Unmarshal(raw, &back))
			require.Equal(t, d, back)
		}
	})
}

func TestDecision_Policy(t *testing.T) {
	identity, err := domain.NewIdentity("user:123", nil)
	require.NoError(t, err)

	p := domain.BuildDecision(arn, identity, nil).Policy()
	require.Equal(t, domain.PolicyVersion, p.Version)
	require.Len(t, p.Statement, 1)
	require.Equal(t, domain.ActionInvoke, p.Statement[0].Action)
	require.Equal(t, domain.Allow, p.Statement[0].Effect)
	require.Equal(t, []string{arn}, p.Statement[0].Resource)

	deny := domain.Decision{Effect: domain.Deny}.Policy()
	require.Equal(t, domain.Deny, deny.Statement[0].Effect)
	require.Equal(t, []string{"*"}, deny.Statement[0].Resource)
}
