/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/hyperledger-labs/service-locator/platform/common/services/locator"
	"github.com/hyperledger-labs/service-locator/platform/common/services/logging"
	"go.uber.org/dig"
)

var logger = logging.MustGetLogger("dig-utils")

type invoker interface {
	Invoke(function interface{}, opts ...dig.InvokeOption) error
}

func Visualize(c *dig.Container) string {
	var w bytes.Buffer
	if err := dig.Visualize(c, &w); err != nil {
		return fmt.Sprintf("could not visualize: [%v]", err)
	}
	return (&w).String()
}

// Register resolves the locator and a T from the container and stores the T
// in the locator under T.
func Register[T any](c invoker) error {
	err := c.Invoke(func(l *locator.ServiceLocator, service T) {
		locator.Register(l, service)
	})
	if err != nil {
		return fmt.Errorf("failed registering type %s: %w", locator.KeyOf[T](), err)
	}
	return nil
}

// RegisterOptional is like Register but skips T when the container does not
// provide it or provides a nil.
func RegisterOptional[T any](c invoker) error {
	err := c.Invoke(func(in struct {
		dig.In
		Locator *locator.ServiceLocator
		Service T `optional:"true"`
	}) {
		if isNil(in.Service) {
			logger.Warnf("Skipping registration of optional dependency [%s]", locator.KeyOf[T]())
			return
		}
		locator.Register(in.Locator, in.Service)
	})
	if err != nil {
		return fmt.Errorf("failed registering type %s: %w", locator.KeyOf[T](), err)
	}
	return nil
}

func ProvideAll(c *dig.Container, constructors ...interface{}) error {
	errs := make([]error, len(constructors))
	for i, constructor := range constructors {
		errs[i] = c.Provide(constructor)
	}
	return errors.Join(errs...)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
