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

package vizierapi

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"
)

// Config exposes the information for configuring a Vizier client
type Config interface {
	// Endpoint returns the base address of the Vizier API server
	Endpoint() (string, error)

	// Owner returns the owner scope used to construct study and trial names
	Owner() (string, error)

	// RateLimit returns the maximum sustained request rate and burst size; a zero limit disables rate limiting
	RateLimit() (rate.Limit, int, error)

	// Authorize returns a transport that applies the authorization defined by this configuration. The
	// supplied context is used for any additional requests necessary to perform authentication. If this
	// configuration does not define any authorization details, the supplied transport may be returned
	// directly.
	Authorize(ctx context.Context, transport http.RoundTripper) (http.RoundTripper, error)
}
