package main

import (
	"testing"
)

func TestMigrationsDir_Default(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	if got := migrationsDir(); got != "db/migrations" {
		t.Fatalf("got %q, want db/migrations", got)
	}
}

func TestMigrationsDir_Override(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/tmp/custom")
	if got := migrationsDir(); got != "/tmp/custom" {
		t.Fatalf("got %q, want /tmp/custom", got)
	}
}
