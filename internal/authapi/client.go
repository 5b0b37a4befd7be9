// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

const signInPath = "/api/auth/google"

// FallbackMessage is shown when the server gives no structured error, or
// when the request never produced a parseable response at all.
const FallbackMessage = "Google sign-in failed. Please try again."

// User is the subset of the sign-in response the profile tab consumes.
type User struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// SignInError carries the message to surface in the UI. Transport and parse
// failures keep their cause for logging but all collapse to a displayable
// message; callers never see a raw error string from the stack.
type SignInError struct {
	Message string
	cause   error
}

func (e *SignInError) Error() string { return e.Message }

func (e *SignInError) Unwrap() error { return e.cause }

// Message extracts the displayable message from a sign-in failure.
func Message(err error) string {
	var sie *SignInError
	if errors.As(err, &sie) {
		return sie.Message
	}
	return FallbackMessage
}

// TokenSource provides an identity token for the sign-in request. The
// production source is an identity-provider flow; tests and the demo binary
// inject simpler ones.
type TokenSource interface {
	IdentityToken(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed token, typically from the environment.
type StaticTokenSource string

func (s StaticTokenSource) IdentityToken(context.Context) (string, error) {
	if s == "" {
		return "", errors.New("no identity token configured")
	}
	return string(s), nil
}

// Client talks to the authentication endpoint. A single best-effort round
// trip per call: no retry, no timeout beyond the caller's context.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the given base URL. A nil httpClient uses
// http.DefaultClient.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: base, http: httpClient}
}

type signInRequest struct {
	IDToken string `json:"id_token"`
}

type signInResponse struct {
	User *User `json:"user"`
}

type signInFailure struct {
	Error string `json:"error"`
}

// SignInWithGoogle posts the identity token for verification and returns the
// verified user. Every failure path returns a *SignInError whose Message is
// safe to display: the server's error field when present, FallbackMessage
// otherwise.
func (c *Client) SignInWithGoogle(ctx context.Context, idToken string) (*User, error) {
	body, err := json.Marshal(signInRequest{IDToken: idToken})
	if err != nil {
		return nil, &SignInError{Message: FallbackMessage, cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+signInPath, bytes.NewReader(body))
	if err != nil {
		return nil, &SignInError{Message: FallbackMessage, cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &SignInError{Message: FallbackMessage, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var failure signInFailure
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return nil, &SignInError{Message: failure.Error}
		}
		return nil, &SignInError{Message: FallbackMessage}
	}

	var success signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&success); err != nil {
		return nil, &SignInError{Message: FallbackMessage, cause: err}
	}
	if success.User == nil {
		return nil, &SignInError{Message: FallbackMessage}
	}
	return success.User, nil
}
