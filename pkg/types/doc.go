// Package types defines the record entities (Child, Pet, Link), the RowStore
// adapter contract, configuration, and standard errors shared by the
// Home Friends storage layers.
package types
