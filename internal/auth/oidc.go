package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Identity is what the identity provider hands us after a successful login.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// OIDCClient wraps the identity provider: builds the authorize redirect URL
// and exchanges the callback code for a verified identity.
type OIDCClient struct {
	provider     *oidc.Provider
	verifier     *oidc.IDTokenVerifier
	oauth2Config oauth2.Config
	httpClient   *http.Client
}

type NewOIDCClientParams struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// HTTPClient is used for all provider calls (discovery, token exchange,
	// key fetches); nil falls back to http.DefaultClient
	HTTPClient *http.Client
}

func NewOIDCClient(ctx context.Context, params NewOIDCClientParams) (*OIDCClient, error) {
	if params.HTTPClient != nil {
		ctx = oidc.ClientContext(ctx, params.HTTPClient)
	}

	provider, err := oidc.NewProvider(ctx, params.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("create oidc provider: %w", err)
	}

	return &OIDCClient{
		provider:   provider,
		httpClient: params.HTTPClient,
		verifier: provider.Verifier(&oidc.Config{ClientID: params.ClientID}),
		oauth2Config: oauth2.Config{
			ClientID:     params.ClientID,
			ClientSecret: params.ClientSecret,
			RedirectURL:  params.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

// AuthCodeURL returns the provider URL the client should be redirected to.
func (c *OIDCClient) AuthCodeURL(state string) string {
	return c.oauth2Config.AuthCodeURL(state)
}

// Exchange trades the authorization code for tokens, verifies the ID token,
// and extracts the identity claims.
func (c *OIDCClient) Exchange(ctx context.Context, code string) (*Identity, error) {
	if c.httpClient != nil {
		ctx = oidc.ClientContext(ctx, c.httpClient)
	}

	token, err := c.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("no id_token in token response")
	}

	idToken, err := c.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	var identity Identity
	if err := idToken.Claims(&identity); err != nil {
		return nil, fmt.Errorf("parse id token claims: %w", err)
	}
	if identity.Subject == "" || identity.Email == "" {
		return nil, errors.New("id token missing subject or email claim")
	}

	return &identity, nil
}
