/*
Copyright 2022 GramLabs, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// NOTE: Configuration JSON names in and below Server and Authorization use snake_case for compatibility with OAuth 2.0 specifications

// Config is the top level configuration structure for the Vizier client
type Config struct {
	// Servers is a named list of server configurations
	Servers []NamedServer `json:"servers,omitempty"`
	// Authorizations is a named list of authorizations configurations
	Authorizations []NamedAuthorization `json:"authorizations,omitempty"`
	// Contexts is a named list of context configurations
	Contexts []NamedContext `json:"contexts,omitempty"`
	// CurrentContext is the name of the default context
	CurrentContext string `json:"current-context,omitempty"`
}

// Server contains information about how to communicate with a Vizier API server
type Server struct {
	// Address is the base URL of the Vizier API server; it must not have any query or fragment components
	Address string `json:"address"`
	// RequestsPerSecond is the maximum sustained rate of requests sent to the server, zero for no limit
	RequestsPerSecond float64 `json:"requests_per_second,omitempty"`
	// Burst is the maximum number of requests sent at once when rate limiting is enabled
	Burst int `json:"burst,omitempty"`
	// Authorization contains the authorization server metadata necessary to access this server
	Authorization AuthorizationServer `json:"authorization"`
}

// AuthorizationServer is the authorization server metadata
type AuthorizationServer struct {
	// TokenEndpoint is the URL of the token endpoint
	TokenEndpoint string `json:"token_endpoint,omitempty"`
	// Audience is the optional audience requested when obtaining tokens
	Audience string `json:"audience,omitempty"`
}

// Authorization contains information about remote server authorizations
type Authorization struct {
	// Credential is the information that must be presented to prove authorization
	Credential Credential `json:"credential"`
}

// TokenCredential represents a token based credential
type TokenCredential struct {
	// AccessToken is presented to the service being authenticated to
	AccessToken string `json:"access_token"`
	// TokenType is the type of the access token (i.e. "bearer")
	TokenType string `json:"token_type,omitempty"`
	// RefreshToken is presented to the authorization server when the access token expires
	RefreshToken string `json:"refresh_token,omitempty"`
	// Expiry is the time at which the access token expires (or 0 if the token does not expire)
	Expiry time.Time `json:"expiry,omitempty"`
}

// ClientCredential represents a machine-to-machine credential
type ClientCredential struct {
	// ClientID is the client identifier
	ClientID string `json:"client_id"`
	// ClientSecret is the client secret
	ClientSecret string `json:"client_secret"`
	// Scope is the space delimited list of allowable scopes for the client
	Scope string `json:"scope,omitempty"`
}

// Context binds a server and authorization to the owner whose studies are being accessed
type Context struct {
	// Server is the name of the remote server to connect to
	Server string `json:"server,omitempty"`
	// Authorization is the name of authorization configuration to use
	Authorization string `json:"authorization,omitempty"`
	// Owner is the owner scope used to construct study names, e.g. `owners/{owner}/studies/{study}`
	Owner string `json:"owner,omitempty"`
}

// NamedServer associates a name to a server configuration
type NamedServer struct {
	// Name is the referencable name for the server
	Name string `json:"name"`
	// Server is the server configuration
	Server Server `json:"server"`
}

// NamedAuthorization associates a name to an authorization configuration
type NamedAuthorization struct {
	// Name is the referencable name for the authorization
	Name string `json:"name"`
	// Authorization is the authorization configuration
	Authorization Authorization `json:"authorization"`
}

// NamedContext associates a name to context configuration
type NamedContext struct {
	// Name is the referencable name for the context
	Name string `json:"name"`
	// Context is the context configuration
	Context Context `json:"context"`
}

// Credential is use to represent a credential
type Credential struct {
	// TokenCredential is used to prove authorization using a token that has already been obtained
	*TokenCredential
	// ClientCredential is used to obtain a new token for authorization using the credential information
	*ClientCredential
}

// UnmarshalJSON determines which type of credential is being used
func (c *Credential) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	switch {
	case len(m) == 0:
		return nil
	case m["access_token"] != nil:
		c.TokenCredential = &TokenCredential{}
		return json.Unmarshal(data, c.TokenCredential)
	case m["client_id"] != nil:
		c.ClientCredential = &ClientCredential{}
		return json.Unmarshal(data, c.ClientCredential)
	default:
		return fmt.Errorf("unknown credential")
	}
}

// MarshalJSON writes only the credential that is present
func (c Credential) MarshalJSON() ([]byte, error) {
	switch {
	case c.TokenCredential != nil:
		return json.Marshal(c.TokenCredential)
	case c.ClientCredential != nil:
		return json.Marshal(c.ClientCredential)
	}
	return []byte("{}"), nil
}

// MarshalJSON ensures token expiry is persisted in UTC
func (tc *TokenCredential) MarshalJSON() ([]byte, error) {
	type TC TokenCredential
	var expiry string
	if !tc.Expiry.IsZero() {
		expiry = tc.Expiry.UTC().Format(time.RFC3339)
	}
	return json.Marshal(&struct {
		*TC
		Expiry string `json:"expiry,omitempty"`
	}{TC: (*TC)(tc), Expiry: expiry})
}

// MarshalJSON omits empty structs
func (srv *Server) MarshalJSON() ([]byte, error) {
	type S Server
	as := &srv.Authorization
	if (AuthorizationServer{}) == srv.Authorization {
		as = nil
	}
	return json.Marshal(&struct {
		*S
		Authorization *AuthorizationServer `json:"authorization,omitempty"`
	}{S: (*S)(srv), Authorization: as})
}
