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
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultServerAddress is the address of a Vizier server running locally
	DefaultServerAddress = "http://localhost:8080"
	// DefaultName is used for the objects created when the configuration is empty
	DefaultName = "default"
)

// The default loader must NEVER make changes via VizierConfig.Update or VizierConfig.unpersisted

func defaultLoader(cfg *VizierConfig) error {
	// NOTE: Any errors reported here are effectively fatal errors for a program that needs configuration since they will
	// not be able to load the configuration. Errors should be limited to unusable configurations.

	d := &defaults{cfg: &cfg.data}
	d.addDefaultObjects()
	if err := d.applyServerDefaults(); err != nil {
		return err
	}
	// No defaults for authorizations
	if err := d.applyContextDefaults(); err != nil {
		return err
	}
	return nil
}

// defaultServerEndpoints fills in the token endpoint relative to the server address
func defaultServerEndpoints(srv *Server) error {
	defaultString(&srv.Address, DefaultServerAddress)

	u, err := url.Parse(srv.Address)
	if err != nil {
		return fmt.Errorf("invalid server address %q: %w", srv.Address, err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid server address %q: query and fragment are not allowed", srv.Address)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/oauth/token"
	defaultString(&srv.Authorization.TokenEndpoint, u.String())
	return nil
}

type defaults struct {
	cfg *Config
}

func (d *defaults) addDefaultObjects() {
	if len(d.cfg.Servers) == 0 {
		d.cfg.Servers = append(d.cfg.Servers, NamedServer{Name: DefaultName})
	}

	if len(d.cfg.Authorizations) == 0 {
		d.cfg.Authorizations = append(d.cfg.Authorizations, NamedAuthorization{Name: DefaultName})
	}

	if len(d.cfg.Contexts) == 0 {
		d.cfg.Contexts = append(d.cfg.Contexts, NamedContext{Name: DefaultName})
	}
}

func (d *defaults) applyServerDefaults() error {
	for i := range d.cfg.Servers {
		if err := defaultServerEndpoints(&d.cfg.Servers[i].Server); err != nil {
			return err
		}
	}
	return nil
}

func (d *defaults) applyContextDefaults() error {
	for i := range d.cfg.Contexts {
		ctx := &d.cfg.Contexts[i].Context
		name := d.cfg.Contexts[i].Name

		if err := d.defaultServerName(&ctx.Server, name); err != nil {
			return err
		}

		if err := d.defaultAuthorizationName(&ctx.Authorization, name, ctx.Server); err != nil {
			return err
		}
	}

	return d.defaultContextName(&d.cfg.CurrentContext)
}

// Default name functions attempt to resolve a default name

func (d *defaults) defaultServerName(s *string, name string) error {
	if findServer(d.cfg.Servers, name) != nil {
		defaultString(s, name)
		return nil
	}
	if len(d.cfg.Servers) == 1 {
		defaultString(s, d.cfg.Servers[0].Name)
		return nil
	}
	if findServer(d.cfg.Servers, DefaultName) != nil {
		defaultString(s, DefaultName)
		return nil
	}
	if *s != "" {
		return nil
	}
	return fmt.Errorf("could not imply default server name for context: %s", name)
}

func (d *defaults) defaultAuthorizationName(s *string, name, server string) error {
	if findAuthorization(d.cfg.Authorizations, name) != nil {
		defaultString(s, name)
		return nil
	}
	if findAuthorization(d.cfg.Authorizations, server) != nil {
		defaultString(s, server)
		return nil
	}
	if len(d.cfg.Authorizations) == 1 {
		defaultString(s, d.cfg.Authorizations[0].Name)
		return nil
	}
	if findAuthorization(d.cfg.Authorizations, DefaultName) != nil {
		defaultString(s, DefaultName)
		return nil
	}
	if *s != "" {
		return nil
	}
	return fmt.Errorf("could not imply default authorization name for context: %s", name)
}

func (d *defaults) defaultContextName(s *string) error {
	if len(d.cfg.Contexts) == 1 {
		defaultString(s, d.cfg.Contexts[0].Name)
		return nil
	}
	if findContext(d.cfg.Contexts, DefaultName) != nil {
		defaultString(s, DefaultName)
		return nil
	}
	if *s != "" {
		return nil
	}
	return fmt.Errorf("could not imply default current context")
}
