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

package v1

import (
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc/codes"
)

const (
	strategyBoundedRetry  = "bounded_retry"
	strategyFixedInterval = "fixed_interval"
)

var (
	// RequestsTotal is a Prometheus counter metric which holds the total number
	// of requests made to the Vizier service by operation and status code
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vizier_client_requests_total",
		Help: "Total number of requests made to the Vizier service",
	}, []string{"operation", "code"})

	// OperationPollsTotal is a Prometheus counter metric which holds the total number
	// of long-running operation fetches by polling strategy
	OperationPollsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vizier_client_operation_polls_total",
		Help: "Total number of long-running operation polls",
	}, []string{"strategy"})

	// OperationPollRetriesTotal is a Prometheus counter metric which holds the total number
	// of failed operation fetches that were retried
	OperationPollRetriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vizier_client_operation_poll_retries_total",
		Help: "Total number of retried long-running operation polls",
	})
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		OperationPollsTotal,
		OperationPollRetriesTotal,
	)
}

func observeRequest(operation string, code codes.Code) {
	RequestsTotal.WithLabelValues(operation, code.String()).Inc()
}
