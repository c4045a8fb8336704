// Package deployment resolves UTC times from deployment directory names using a table of deployment prefixes
// and time zones, and provides helpers for working with deployment request identifiers.
package deployment
