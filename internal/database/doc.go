// Package database provides the storage layer of the reference names API.
//
//	database/
//	├── database.go  # Connection setup and migrations
//	└── names/       # Name CRUD operations
//
// The board itself never touches this package; it only talks to the API
// over HTTP.
//
//	db, err := database.NewDatabase("./names.db")
//	repo := names.NewRepository(db.DB)
//	all, err := repo.List()
package database
