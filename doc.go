// Package ormgen turns diagram snapshots of a data schema into
// decorator-annotated TypeScript source for a MikroORM-style persistence
// framework.
//
// The diagram model lives in the schema package, snapshot decoding in
// compiler/load, and the generator itself in compiler/gen. This package
// holds the pieces shared across those layers, such as the Cache used to
// memoize generation results.
package ormgen
