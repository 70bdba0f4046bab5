// Package http provides shared HTTP helpers for the customer portal:
// upstream response checks, the JSON error envelope, and request validation.
package http
