// Package store defines the persistence interfaces and shared persistence
// plumbing (transactions, sentinel errors) used by the service layer.
package store
