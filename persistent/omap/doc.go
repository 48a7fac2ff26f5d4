/*
Package omap implements a persistent (immutable) ordered map.

An ordered map is a finger tree of key/value entries, sorted by key. Every node of
the tree is annotated with the greatest key below it and with the number of
entries, which allows locating a key, an entry's rank and ranges of keys in
logarithmic time.

Like all persistent structures of this module, maps share most of their memory
between incarnations and are safe for concurrent readers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package omap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fingertree.omap'.
func tracer() tracing.Trace {
	return tracing.Select("fingertree.omap")
}
