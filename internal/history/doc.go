// Package history persists the conversions performed from the command line
// in SQLite so they can be listed again later.
//
// The engine itself is stateless; this log lives entirely at the CLI edge.
// Each entry gets a UUID and stores units by symbol, so reordering or
// extending the registry never invalidates old rows. Schema changes bump the
// version in schema.go; users clear the history to adopt the new schema.
//
// Pruning takes an exclusive file lock next to the database so that two CLI
// processes trimming at the same time do not race each other.
package history
