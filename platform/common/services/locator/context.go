/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locator

import (
	"context"

	"github.com/hyperledger-labs/service-locator/pkg/utils/errors"
)

type locatorKeyType string

const locatorKey locatorKeyType = "service-locator"

// ErrNoLocator is returned by FromContext when the context carries no locator.
var ErrNoLocator = errors.New("locator not found in context")

// WithLocator adds a locator to the context and returns a new context
func WithLocator(ctx context.Context, l *ServiceLocator) context.Context {
	return context.WithValue(ctx, locatorKey, l)
}

// FromContext returns the locator from the context
func FromContext(ctx context.Context) (*ServiceLocator, error) {
	l, ok := ctx.Value(locatorKey).(*ServiceLocator)
	if !ok || l == nil {
		return nil, ErrNoLocator
	}
	return l, nil
}
