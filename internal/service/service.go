// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// Handlers hold a service, never a repository.
package service
