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

// Overrides represent information which can be overridden in the configuration
type Overrides struct {
	// Context overrides the current context name
	Context string
	// ServerAddress overrides the current server's address; the token endpoint is re-derived from the new address
	ServerAddress string
	// Owner overrides the owner of the current context
	Owner string
	// Credential overrides the current authorization
	Credential ClientCredential
}

var _ Reader = &overrideReader{}

type overrideReader struct {
	overrides *Overrides
	delegate  Reader
}

func (o *overrideReader) ServerName(contextName string) (string, error) {
	return o.delegate.ServerName(contextName)
}

func (o *overrideReader) Server(name string) (Server, error) {
	srv, err := o.delegate.Server(name)
	if err != nil {
		return srv, err
	}

	if o.overrides.ServerAddress != "" {
		srv.Address = o.overrides.ServerAddress
		srv.Authorization.TokenEndpoint = ""
		if err := defaultServerEndpoints(&srv); err != nil {
			return Server{}, err
		}
	}

	return srv, nil
}

func (o *overrideReader) AuthorizationName(contextName string) (string, error) {
	return o.delegate.AuthorizationName(contextName)
}

func (o *overrideReader) Authorization(name string) (Authorization, error) {
	if o.overrides.Credential.ClientID != "" && o.overrides.Credential.ClientSecret != "" {
		cc := o.overrides.Credential
		return Authorization{Credential: Credential{ClientCredential: &cc}}, nil
	}

	return o.delegate.Authorization(name)
}

func (o *overrideReader) ContextName() string {
	if o.overrides.Context != "" {
		return o.overrides.Context
	}
	return o.delegate.ContextName()
}

func (o *overrideReader) Context(name string) (Context, error) {
	ctx, err := o.delegate.Context(name)
	if err == nil {
		mergeString(&ctx.Owner, o.overrides.Owner)
	}
	return ctx, err
}
