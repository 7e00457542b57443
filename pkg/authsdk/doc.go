/*
Package authsdk provides a client SDK and the shared wire types for the
authorizer service.

# Overview

The server writes the types defined here and the client reads them back, so
both sides agree on the shape of an authorizer event and its policy
response.

	client := authsdk.NewSDKClient("http://localhost:8080")

	resp, err := client.Authorize(ctx, authsdk.AuthorizeRequest{
		Type:               authsdk.EventTypeToken,
		AuthorizationToken: "Bearer " + token,
		MethodArn:          "arn:aws:execute-api:region:acct:api/stage/GET/orders",
	})
	if err != nil {
		// transport failure or an *APIError (e.g. missing_resource)
	}
	if resp.Allowed() {
		// resp.Context carries namespace, id and scopes
	}

# Errors

Non-2xx responses are returned as *APIError:

	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == authsdk.ErrorCodeMissingResource {
		// the event had no methodArn
	}

A Deny is not an error. It is a 200 response whose policy statement has
Effect "Deny" and whose context is empty.
*/
package authsdk
