package db

import (
	"strconv"
	"strings"
	"testing"

	"promptlab/internal/domain"
	"promptlab/internal/sqlinline"
)

func TestStatements(t *testing.T) {
	stmts := Statements()
	if len(stmts) != 4 {
		t.Fatalf("len(Statements()) = %d, want 4", len(stmts))
	}
	for _, s := range stmts {
		if !strings.Contains(s, "if not exists") {
			t.Fatalf("statement is not idempotent: %s", s)
		}
	}
	if !strings.HasPrefix(stmts[0], "create table if not exists artworks") {
		t.Fatalf("first statement = %q", stmts[0])
	}
}

func TestSeedArgsMatchPlaceholders(t *testing.T) {
	args := seedArgs(domain.SeedArtworks()[0])
	if !strings.Contains(sqlinline.QSeedArtwork, "$"+strconv.Itoa(len(args))+"::") {
		t.Fatalf("seed query has no placeholder $%d", len(args))
	}
	if strings.Contains(sqlinline.QSeedArtwork, "$"+strconv.Itoa(len(args)+1)) {
		t.Fatalf("seed query expects more than %d args", len(args))
	}
	if args[0] != int64(1) {
		t.Fatalf("first arg = %#v, want id 1", args[0])
	}
}
