// Package repo holds the ent-generated data access layer.
//
// The generated code is not committed; run `go generate ./...` to
// produce it from the schemas in internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/lock ../schema
