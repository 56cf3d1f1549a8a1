package transport

import (
	"net/http"
)

// RoundTripDecorator wraps an http.RoundTripper into another one.
type RoundTripDecorator func(http.RoundTripper) http.RoundTripper

// RoundTripChain is an ordered collection of RoundTripDecorator. The first
// decorator of the chain is the outermost one.
type RoundTripChain []RoundTripDecorator

// Apply wraps base with every decorator of the chain, last one first.
func (c RoundTripChain) Apply(base http.RoundTripper) http.RoundTripper {
	for x := len(c) - 1; x >= 0; x-- {
		base = c[x](base)
	}
	return base
}
