package authorizer_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/authorizer/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

func tokenEvent(token string) authsdk.AuthorizeRequest {
	return authsdk.AuthorizeRequest{
		Type:               authsdk.EventTypeToken,
		AuthorizationToken: "Bearer " + token,
		MethodArn:          testArn,
	}
}

// TestAuthorize drives the full decision pipeline through the container.
func TestAuthorize(t *testing.T) {
	client := setupAuthorizerContainer(t)

	t.Run("valid token is allowed", func(t *testing.T) {
		resp, err := client.Authorize(t.Context(), tokenEvent(mintToken(t, "user:42", time.Minute, "write", "read")))
		require.NoError(t, err)
		require.True(t, resp.Allowed())
		require.Equal(t, "user:42", resp.PrincipalID)
		require.Equal(t, []string{testArn}, resp.PolicyDocument.Statement[0].Resource)

		require.NotNil(t, resp.Context)
		require.Equal(t, "user", resp.Context.Namespace)
		require.Equal(t, "42", resp.Context.ID)
		require.Equal(t, []string{"read", "write"}, resp.Context.Scopes)
	})

	t.Run("request event reads the authorization header", func(t *testing.T) {
		resp, err := client.Authorize(t.Context(), authsdk.AuthorizeRequest{
			Type:      authsdk.EventTypeRequest,
			MethodArn: testArn,
			Headers:   map[string]string{"authorization": "Bearer " + mintToken(t, "svc:billing", time.Minute)},
		})
		require.NoError(t, err)
		require.True(t, resp.Allowed())
	})

	t.Run("expired token is denied", func(t *testing.T) {
		resp, err := client.Authorize(t.Context(), tokenEvent(mintToken(t, "user:42", -5*time.Minute)))
		require.NoError(t, err)
		require.False(t, resp.Allowed())
		require.Empty(t, resp.PrincipalID)
		require.Nil(t, resp.Context)
	})

	t.Run("denied scope is denied", func(t *testing.T) {
		resp, err := client.Authorize(t.Context(), tokenEvent(mintToken(t, "user:42", time.Minute, "read", deniedScope)))
		require.NoError(t, err)
		require.False(t, resp.Allowed())
	})

	t.Run("garbage token is denied", func(t *testing.T) {
		resp, err := client.Authorize(t.Context(), tokenEvent("not-a-jwt"))
		require.NoError(t, err)
		require.False(t, resp.Allowed())
	})

	t.Run("missing resource is rejected", func(t *testing.T) {
		req := tokenEvent(mintToken(t, "user:42", time.Minute))
		req.MethodArn = ""

		_, err := client.Authorize(t.Context(), req)
		var apiErr *authsdk.APIError
		require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, authsdk.ErrorCodeMissingResource, apiErr.Code)
	})

	t.Run("decisions endpoint", func(t *testing.T) {
		resp, err := client.Decide(t.Context(), tokenEvent(mintToken(t, "user:42", time.Minute)))
		require.NoError(t, err)
		require.Equal(t, "Allow", resp.Effect)
		require.Equal(t, testArn, resp.Resource)
	})
}

// TestWhoAmI checks the guarded endpoint accepts allowed tokens only.
func TestWhoAmI(t *testing.T) {
	client := setupAuthorizerContainer(t)

	me, err := client.WhoAmI(t.Context(), mintToken(t, "user:7", time.Minute, "read"))
	require.NoError(t, err)
	require.Equal(t, "user:7", me.Principal)
	require.Equal(t, []string{"read"}, me.Scopes)

	_, err = client.WhoAmI(t.Context(), mintToken(t, "no-colon", time.Minute))
	var apiErr *authsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, authsdk.ErrorCodeInvalidToken, apiErr.Code)
}
