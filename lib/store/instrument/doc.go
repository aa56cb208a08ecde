// Package instrument provides a store decorator that counts operations and
// read hit/miss rates. It adds no behavior of its own; every call is
// forwarded to the wrapped store.
package instrument
