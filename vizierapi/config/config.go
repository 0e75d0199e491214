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

// Package config manages the client configuration used to reach a Vizier API server.
package config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/thestormforge/vizier-go/vizierapi"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

// Loader is used to initially populate a Vizier configuration
type Loader func(cfg *VizierConfig) error

// Change is used to apply a configuration change that should be persisted
type Change func(cfg *Config) error

var _ vizierapi.Config = &VizierConfig{}

// VizierConfig is the structure used to manage configuration data
type VizierConfig struct {
	// Filename is the path to the configuration file; if left blank, it will be populated using XDG base directory conventions on the next Load
	Filename string
	// Overrides to the standard configuration
	Overrides Overrides

	data        Config
	unpersisted []Change
}

// MarshalJSON ensures only the configuration data is marshalled
func (vc *VizierConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(vc.data)
}

// Load will populate the client configuration
func (vc *VizierConfig) Load(extra ...Loader) error {
	var loaders []Loader
	loaders = append(loaders, fileLoader)
	loaders = append(loaders, extra...)
	loaders = append(loaders, defaultLoader)
	for i := range loaders {
		if err := loaders[i](vc); err != nil {
			return err
		}
	}
	return nil
}

// Update will make a change to the configuration data that should be persisted on the next call to Write
func (vc *VizierConfig) Update(change Change) error {
	if err := change(&vc.data); err != nil {
		return err
	}
	vc.unpersisted = append(vc.unpersisted, change)
	return nil
}

// Write all unpersisted changes to disk
func (vc *VizierConfig) Write() error {
	if vc.Filename == "" || len(vc.unpersisted) == 0 {
		return nil
	}

	f := file{}
	if err := f.read(vc.Filename); err != nil {
		return err
	}

	for i := range vc.unpersisted {
		if err := vc.unpersisted[i](&f.data); err != nil {
			return err
		}
	}

	if err := f.write(vc.Filename); err != nil {
		return err
	}

	vc.unpersisted = nil
	return nil
}

// Merge combines the supplied data with what is already present in this client configuration; unlike Update, changes
// will not be persisted on the next write
func (vc *VizierConfig) Merge(data *Config) {
	mergeServers(&vc.data, data.Servers)
	mergeAuthorizations(&vc.data, data.Authorizations)
	mergeContexts(&vc.data, data.Contexts)
	mergeString(&vc.data.CurrentContext, data.CurrentContext)
}

// Reader returns a configuration reader for accessing information from the configuration
func (vc *VizierConfig) Reader() Reader {
	var r Reader = &defaultReader{cfg: &vc.data}
	if vc.Overrides != (Overrides{}) {
		r = &overrideReader{overrides: &vc.Overrides, delegate: r}
	}
	return r
}

// Endpoint returns the address of the current server
func (vc *VizierConfig) Endpoint() (string, error) {
	srv, err := CurrentServer(vc.Reader())
	if err != nil {
		return "", err
	}

	u, err := url.Parse(srv.Address)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", vizierapi.NewError(vizierapi.ErrInvalidIdentifier, err, "config: invalid server address %q", srv.Address)
	}
	return srv.Address, nil
}

// Owner returns the owner of the current context
func (vc *VizierConfig) Owner() (string, error) {
	ctx, err := CurrentContext(vc.Reader())
	if err != nil {
		return "", err
	}
	if ctx.Owner == "" {
		return "", vizierapi.NewError(vizierapi.ErrConfiguration, nil, "config: no owner for context '%s'", vc.Reader().ContextName())
	}
	return ctx.Owner, nil
}

// RateLimit returns the request rate limit of the current server
func (vc *VizierConfig) RateLimit() (rate.Limit, int, error) {
	srv, err := CurrentServer(vc.Reader())
	if err != nil {
		return 0, 0, err
	}
	return rate.Limit(srv.RequestsPerSecond), srv.Burst, nil
}

// Authorize configures the supplied transport
func (vc *VizierConfig) Authorize(ctx context.Context, transport http.RoundTripper) (http.RoundTripper, error) {
	// Get the token source and use it to wrap the transport
	src, err := vc.tokenSource(ctx)
	if err != nil {
		return nil, err
	}
	if src != nil {
		return &oauth2.Transport{Source: src, Base: transport}, nil
	}
	return transport, nil
}

func (vc *VizierConfig) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	r := vc.Reader()
	srv, err := CurrentServer(r)
	if err != nil {
		return nil, err
	}
	az, err := CurrentAuthorization(r)
	if err != nil {
		return nil, err
	}

	var params url.Values
	if srv.Authorization.Audience != "" {
		params = url.Values{"audience": {srv.Authorization.Audience}}
	}

	if az.Credential.ClientCredential != nil {
		cc := clientcredentials.Config{
			ClientID:       az.Credential.ClientID,
			ClientSecret:   az.Credential.ClientSecret,
			TokenURL:       srv.Authorization.TokenEndpoint,
			EndpointParams: params,
			AuthStyle:      oauth2.AuthStyleInParams,
		}
		cc.Scopes = strings.Fields(az.Credential.Scope)
		return cc.TokenSource(ctx), nil
	}

	if az.Credential.TokenCredential != nil {
		c := &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				TokenURL:  srv.Authorization.TokenEndpoint,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		}
		t := &oauth2.Token{
			AccessToken:  az.Credential.AccessToken,
			TokenType:    az.Credential.TokenType,
			RefreshToken: az.Credential.RefreshToken,
			Expiry:       az.Credential.Expiry,
		}
		return c.TokenSource(ctx, t), nil
	}

	return nil, nil
}
