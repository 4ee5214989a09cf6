/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
)

// Keys logs lazily the keys of a map, sorted by their string form
func Keys[K comparable, V any](m map[K]V) fmt.Stringer {
	return keys[K, V](m)
}

type keys[K comparable, V any] map[K]V

func (k keys[K, V]) String() string {
	s := make([]string, 0, len(k))
	for key := range k {
		s = append(s, fmt.Sprint(key))
	}
	sort.Strings(s)
	return strings.Join(s, ", ")
}
