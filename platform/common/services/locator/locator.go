/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locator

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/hyperledger-labs/service-locator/pkg/utils/errors"
	"github.com/hyperledger-labs/service-locator/platform/common/services"
	"github.com/hyperledger-labs/service-locator/platform/common/services/logging"
	"go.uber.org/zap/zapcore"
)

var (
	// ErrServiceNotFound is returned by the error-returning lookups when no entry matches.
	ErrServiceNotFound = errors.New("service not found")
	// ErrInvalidService is returned by RegisterService for an untyped nil.
	ErrInvalidService = errors.New("invalid service")

	logger = logging.MustGetLogger("locator")
)

var _ services.Registry = (*ServiceLocator)(nil)

// ServiceLocator holds at most one service per type.
// It is safe for concurrent use. Use New to create one.
type ServiceLocator struct {
	services map[Key]any
	lock     sync.RWMutex
	logger   logging.Logger
}

// New returns an empty locator.
func New() *ServiceLocator {
	return NewWithLogger(logger)
}

// NewWithLogger returns an empty locator that logs to l.
func NewWithLogger(l logging.Logger) *ServiceLocator {
	return &ServiceLocator{
		services: map[Key]any{},
		logger:   l,
	}
}

// Register stores service under the nominal type T, replacing any previous
// entry for T.
//
//	locator.Register[Greeter](l, &EnglishGreeter{})
func Register[T any](l *ServiceLocator, service T) {
	l.put(KeyOf[T](), service)
}

// Provide returns the service registered under T.
// The boolean is false if nothing is registered for T.
func Provide[T any](l *ServiceLocator) (T, bool) {
	s, ok := l.get(KeyOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	if s == nil {
		// a nil interface value registered under an interface type
		var zero T
		return zero, true
	}
	t, ok := s.(T)
	return t, ok
}

// GetService is like Provide but reports a missing service as an error
// wrapping ErrServiceNotFound.
func GetService[T any](l *ServiceLocator) (T, error) {
	t, ok := Provide[T](l)
	if !ok {
		return t, errors.Wrapf(ErrServiceNotFound, "service [%s]", KeyOf[T]())
	}
	return t, nil
}

// MustProvide returns the service registered under T.
// It panics if no instance is found.
func MustProvide[T any](l *ServiceLocator) T {
	t, err := GetService[T](l)
	if err != nil {
		panic(err)
	}
	return t
}

// RegisterService stores service under its dynamic type.
// Use Register to store a value under an interface type.
func (l *ServiceLocator) RegisterService(service any) error {
	k := KeyFor(service)
	if k.IsZero() {
		return errors.Wrapf(ErrInvalidService, "cannot register untyped nil")
	}
	l.put(k, service)
	return nil
}

// GetService returns the service registered under the type designated by v.
// v is either a reflect.Type, a Key, or a typed nil pointer whose element
// type is requested, i.e. (*T)(nil) asks for T. Any other value asks for
// its own dynamic type.
func (l *ServiceLocator) GetService(v any) (any, error) {
	k := keyFromArg(v)
	s, ok := l.get(k)
	if !ok {
		if l.logger.IsEnabledFor(zapcore.DebugLevel) {
			return nil, errors.Wrapf(ErrServiceNotFound, "service [%s] not found in [%s]", k, l)
		}
		return nil, errors.Wrapf(ErrServiceNotFound, "service [%s]", k)
	}
	return s, nil
}

// Len returns the number of registered services.
func (l *ServiceLocator) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return len(l.services)
}

// Keys returns the registered keys sorted by their string form.
func (l *ServiceLocator) Keys() []Key {
	l.lock.RLock()
	keys := make([]Key, 0, len(l.services))
	for k := range l.services {
		keys = append(keys, k)
	}
	l.lock.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func (l *ServiceLocator) String() string {
	keys := l.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return "services [" + strings.Join(names, ", ") + "]"
}

func (l *ServiceLocator) put(k Key, service any) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.services[k]; ok {
		l.logger.Debugf("replace service [%s]", k)
	} else {
		l.logger.Debugf("register service [%s], known [%s]", k, logging.Keys(l.services))
	}
	l.services[k] = service
}

func (l *ServiceLocator) get(k Key) (any, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	s, ok := l.services[k]
	return s, ok
}

func keyFromArg(v any) Key {
	switch t := v.(type) {
	case Key:
		return t
	case reflect.Type:
		return KeyOfType(t)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return KeyOfType(rv.Type().Elem())
	}
	return KeyFor(v)
}
