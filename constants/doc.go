// Package constant defines shared error codes, detail keys, and response
// defaults used across the portal commons library.
package constant
