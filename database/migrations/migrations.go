// Package migrations contains the schema migrations of the seed loader.
// Each migration file uses init() to call migration.Register(); the CLI
// imports this package for its side effects.
package migrations
