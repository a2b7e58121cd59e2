// Package service implements the business operations of the API, composing
// the store interfaces into transactional units of work.
package service
