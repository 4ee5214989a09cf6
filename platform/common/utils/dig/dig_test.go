/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package utils

import (
	"testing"

	"github.com/hyperledger-labs/service-locator/platform/common/services/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
)

type Greeter interface {
	Greet() string
}

type englishGreeter struct{}

func (g *englishGreeter) Greet() string { return "hello" }

func newGreeter() Greeter { return &englishGreeter{} }

type clock struct{}

func newContainer(t *testing.T, constructors ...interface{}) (*dig.Container, *locator.ServiceLocator) {
	l := locator.New()
	c := dig.New()
	require.NoError(t, c.Provide(func() *locator.ServiceLocator { return l }))
	require.NoError(t, ProvideAll(c, constructors...))
	return c, l
}

func TestRegister(t *testing.T) {
	c, l := newContainer(t, newGreeter)

	require.NoError(t, Register[Greeter](c))

	g, ok := locator.Provide[Greeter](l)
	require.True(t, ok)
	assert.Equal(t, "hello", g.Greet())
}

func TestRegisterMissing(t *testing.T) {
	c, l := newContainer(t)

	err := Register[Greeter](c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed registering type")
	assert.Equal(t, 0, l.Len())
}

func TestRegisterOptional(t *testing.T) {
	c, l := newContainer(t, newGreeter)

	require.NoError(t, RegisterOptional[Greeter](c))
	require.NoError(t, RegisterOptional[*clock](c))

	_, ok := locator.Provide[Greeter](l)
	assert.True(t, ok)
	_, ok = locator.Provide[*clock](l)
	assert.False(t, ok)
	assert.Equal(t, 1, l.Len())
}

func TestProvideAll(t *testing.T) {
	c := dig.New()
	err := ProvideAll(c, newGreeter, newGreeter, func() *clock { return &clock{} })
	require.Error(t, err, "providing Greeter twice must fail")

	out := Visualize(c)
	assert.Contains(t, out, "digraph")
}
