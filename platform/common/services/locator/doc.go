/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package locator implements a service locator: a registry holding at most
// one instance per type, looked up later by that type.
//
// Entries are keyed by the Go type named at the call site:
//
//	l := locator.New()
//	locator.Register[Greeter](l, &EnglishGreeter{})
//	g, ok := locator.Provide[Greeter](l)
//
// Registering again under the same type replaces the previous entry. A
// missing entry is not an error for Provide; GetService and the untyped
// (*ServiceLocator).GetService report it as ErrServiceNotFound.
//
// Keys match exactly. A value registered under its concrete type is not
// found when an interface it implements is requested, and vice versa.
//
// Locators are independent of each other; there is no package-level
// instance. Pass one explicitly or through a context with WithLocator.
package locator
