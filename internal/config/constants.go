package config

const (
	// DefaultDatabasePath is where the reference names API keeps its data
	DefaultDatabasePath = "./names.db"

	// DefaultNamesAPIURL is the names collection the board talks to
	DefaultNamesAPIURL = "http://localhost:5000/names"
)
