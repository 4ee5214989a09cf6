/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locator

import (
	"reflect"
	"strings"
)

// Key identifies a registry entry by type.
// Two keys are equal iff they were derived from the same Go type.
type Key struct {
	typ reflect.Type
}

// KeyOf returns the key of the nominal type T, as written at the call site.
// For an interface type the key is the interface itself, not the type of
// whatever value later implements it.
func KeyOf[T any]() Key {
	return Key{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// KeyFor returns the key of the dynamic type of v.
// An untyped nil yields the zero key.
func KeyFor(v any) Key {
	return Key{typ: reflect.TypeOf(v)}
}

// KeyOfType wraps an already computed reflect.Type.
func KeyOfType(t reflect.Type) Key {
	return Key{typ: t}
}

// IsZero reports whether the key carries no type.
func (k Key) IsZero() bool { return k.typ == nil }

// Type returns the underlying reflect.Type, nil for the zero key.
func (k Key) Type() reflect.Type { return k.typ }

// String returns "pkgpath/Name" prefixed by one '*' per pointer level.
// Unnamed types fall back to their Go syntax.
func (k Key) String() string {
	if k.typ == nil {
		return "<nil>"
	}
	t := k.typ
	var sb strings.Builder
	for t.Kind() == reflect.Ptr {
		sb.WriteByte('*')
		t = t.Elem()
	}
	if t.Name() == "" {
		sb.WriteString(t.String())
		return sb.String()
	}
	if t.PkgPath() != "" {
		sb.WriteString(t.PkgPath())
		sb.WriteByte('/')
	}
	sb.WriteString(t.Name())
	return sb.String()
}
