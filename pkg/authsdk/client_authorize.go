package authsdk

import (
	"context"
	"net/http"
)

// Authorize submits an authorizer event and returns the policy response.
// A Deny is a successful call; check AuthorizerResponse.Allowed.
func (c *SDKClient) Authorize(ctx context.Context, req AuthorizeRequest) (*AuthorizerResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/authorize", req)
	if err != nil {
		return nil, err
	}

	var out AuthorizerResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// Decide is like Authorize but returns the bare decision.
func (c *SDKClient) Decide(ctx context.Context, req AuthorizeRequest) (*DecisionResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/decisions", req)
	if err != nil {
		return nil, err
	}

	var out DecisionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// WhoAmI calls the guarded identity endpoint with token as the bearer.
func (c *SDKClient) WhoAmI(ctx context.Context, token string) (*WhoAmIResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/whoami", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, err
	}

	var out WhoAmIResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
