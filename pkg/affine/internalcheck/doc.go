// Package internalcheck provides internal validation and testing utilities.
//
// This package holds static-analysis guard tests for the affine cipher
// library: randomness must flow through the injected reader rather than
// math/rand, and key material must never be formatted into strings or logs.
// It is not intended for external use and the API may change without notice.
package internalcheck
