// Package api contains the HTTP handlers, request/response models and the
// mapping of service outcomes to HTTP status codes.
package api
