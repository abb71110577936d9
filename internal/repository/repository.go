// Package repository holds the storage behind the service layer.
//
// Storage is process memory only: everything is lost on restart.
package repository
