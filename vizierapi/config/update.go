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
	"golang.org/x/oauth2"
)

// SaveServer is a configuration change that persists the supplied server configuration. If the server exists,
// it is overwritten; otherwise a new named server is created.
func SaveServer(name string, srv *Server) Change {
	return func(cfg *Config) error {
		mergeServers(cfg, []NamedServer{{Name: name, Server: *srv}})
		mergeAuthorizations(cfg, []NamedAuthorization{{Name: name}})

		// Make sure we capture the current value of the default server address
		defaultString(&findServer(cfg.Servers, name).Address, DefaultServerAddress)
		return nil
	}
}

// SaveToken is a configuration change that persists the supplied token as a named authorization. If the authorization
// exists, it is overwritten; otherwise a new named authorization is created.
func SaveToken(name string, t *oauth2.Token) Change {
	return func(cfg *Config) error {
		az := findAuthorization(cfg.Authorizations, name)
		if az == nil {
			cfg.Authorizations = append(cfg.Authorizations, NamedAuthorization{Name: name})
			az = &cfg.Authorizations[len(cfg.Authorizations)-1].Authorization
		}

		az.Credential.ClientCredential = nil
		az.Credential.TokenCredential = &TokenCredential{
			AccessToken:  t.AccessToken,
			TokenType:    t.TokenType,
			RefreshToken: t.RefreshToken,
			Expiry:       t.Expiry,
		}
		return nil
	}
}

// SaveClientCredential is a configuration change that persists the supplied client credential as a named
// authorization, replacing any existing credential.
func SaveClientCredential(name string, cc *ClientCredential) Change {
	return func(cfg *Config) error {
		c := *cc
		mergeAuthorizations(cfg, []NamedAuthorization{{Name: name, Authorization: Authorization{Credential: Credential{ClientCredential: &c}}}})
		return nil
	}
}

// ApplyCurrentContext is a configuration change that updates the values of a context and sets that context as the
// current context. If the context exists, non-empty values will overwrite; otherwise a new named context is created.
func ApplyCurrentContext(contextName, serverName, authorizationName, owner string) Change {
	return func(cfg *Config) error {
		ctx := findContext(cfg.Contexts, contextName)
		if ctx == nil {
			cfg.Contexts = append(cfg.Contexts, NamedContext{Name: contextName})
			ctx = &cfg.Contexts[len(cfg.Contexts)-1].Context
		}

		mergeString(&cfg.CurrentContext, contextName)
		mergeString(&ctx.Server, serverName)
		mergeString(&ctx.Authorization, authorizationName)
		mergeString(&ctx.Owner, owner)
		return nil
	}
}
