// Package onboardingsdk is a Go client for the onboarding service HTTP API.
// It also defines the request and response types the service serves, so
// both sides share one wire format.
//
// Public endpoints are called on a Client directly. Endpoints that need an
// identity are called on the client returned by WithBearer:
//
//	c := onboardingsdk.NewClient("https://onboarding.example.com")
//	details, err := c.ValidateInvite(ctx, token)
//	...
//	orgID, err := c.WithBearer(accessToken).AcceptInvite(ctx, token)
package onboardingsdk
