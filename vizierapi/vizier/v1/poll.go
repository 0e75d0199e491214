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
	"context"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

const (
	// initialRetryDelay is the delay before the first retry of a failed operation fetch
	initialRetryDelay = 500 * time.Millisecond
	// pollInterval is the delay between fetches of an operation that is not done
	pollInterval = 100 * time.Millisecond
)

// WaitForOperation waits for the supplied operation to complete, retrying failed fetches up to `retries` times in
// total. The delay between consecutive failures starts at 500ms and doubles; it starts over once a fetch succeeds.
// An operation that is not done is fetched again immediately. The result is nil if the operation completed
// without a payload.
func (c *VizierClient) WaitForOperation(ctx context.Context, retries int, op Operation) (OperationResult, error) {
	remaining := retries
	for !op.Done {
		backoff := wait.Backoff{
			Duration: initialRetryDelay,
			Factor:   2,
			Steps:    remaining,
		}

		for {
			OperationPollsTotal.WithLabelValues(strategyBoundedRetry).Inc()
			next, err := c.api.GetOperation(ctx, GetOperationRequest{Name: op.Name})
			if err == nil {
				op = next
				break
			}

			if remaining <= 0 {
				return nil, err
			}
			remaining--

			delay := backoff.Step()
			OperationPollRetriesTotal.Inc()
			c.log.Info("Retrying operation", "operation", op.Name, "delay", delay.String(), "remaining", remaining, "error", err.Error())
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		c.log.V(1).Info("Fetched operation", "operation", op.Name, "done", op.Done)
	}

	return op.Result(), nil
}

// GetOperation fetches the named operation once, the result is nil if it is not done
func (c *VizierClient) GetOperation(ctx context.Context, name string) (OperationResult, error) {
	op, err := c.api.GetOperation(ctx, GetOperationRequest{Name: name})
	if err != nil {
		return nil, err
	}
	return op.Result(), nil
}

// pollOperation fetches the named operation at a fixed interval until it is done; any failure is returned
// immediately and there is no limit on the number of fetches
func (c *VizierClient) pollOperation(ctx context.Context, name string) (OperationResult, error) {
	for {
		OperationPollsTotal.WithLabelValues(strategyFixedInterval).Inc()
		op, err := c.api.GetOperation(ctx, GetOperationRequest{Name: name})
		if err != nil {
			return nil, err
		}

		if op.Done {
			return op.Result(), nil
		}

		c.log.V(1).Info("Waiting for operation", "operation", name)
		if err := c.sleep(ctx, pollInterval); err != nil {
			return nil, err
		}
	}
}

// sleepContext pauses for the specified duration or until the context is done
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
