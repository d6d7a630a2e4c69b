package yamlfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderjulianmartinez/tablecheck/internal/source"
	"github.com/alexanderjulianmartinez/tablecheck/pkg/types"
)

const usersSnapshot = `
name: users
columns:
  - name: name
    values: [Alice, Bob, Charlie, ~]
  - name: age
    values: [25, 30, 35, 22]
  - name: score
    values: [1.5, "2.5", null, true]
`

func TestParse_Kinds(t *testing.T) {
	snap, err := Parse([]byte(usersSnapshot))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if snap.Name != "users" {
		t.Fatalf("expected name users, got %q", snap.Name)
	}
	if snap.Table.NumRows() != 4 {
		t.Fatalf("expected 4 rows, got %d", snap.Table.NumRows())
	}

	name, _ := snap.Table.Column("name")
	if name.Values[0] != types.NewString("Alice") || !name.Values[3].IsMissing() {
		t.Fatalf("unexpected name values: %v", name.Values)
	}

	age, _ := snap.Table.Column("age")
	for i, v := range age.Values {
		if v.Kind() != types.KindInteger {
			t.Fatalf("age row %d: expected integer, got %s", i, v.Kind())
		}
	}

	score, _ := snap.Table.Column("score")
	want := []types.Kind{types.KindFloat, types.KindString, types.KindMissing, types.KindBoolean}
	for i, k := range want {
		if score.Values[i].Kind() != k {
			t.Fatalf("score row %d: expected %s, got %s", i, k, score.Values[i].Kind())
		}
	}
}

func TestParse_RejectsNestedCells(t *testing.T) {
	_, err := Parse([]byte("columns:\n  - name: a\n    values: [[1, 2]]\n"))
	if err == nil {
		t.Fatalf("expected error for nested cell")
	}
}

func TestParse_RaggedColumns(t *testing.T) {
	doc := "columns:\n  - name: a\n    values: [1]\n  - name: b\n    values: [1, 2]\n"
	_, err := Parse([]byte(doc))
	if !errors.Is(err, source.ErrRaggedColumns) {
		t.Fatalf("expected ErrRaggedColumns, got %v", err)
	}
}

func TestParse_NoColumns(t *testing.T) {
	if _, err := Parse([]byte("name: empty\n")); err == nil {
		t.Fatalf("expected error for snapshot without columns")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	if err := os.WriteFile(path, []byte(usersSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}
	snap, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(snap.Table.Columns()) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(snap.Table.Columns()))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParse_NaNIsMissing(t *testing.T) {
	snap, err := Parse([]byte("columns:\n  - name: x\n    values: [.nan, .NaN, 1.5]\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	x, _ := snap.Table.Column("x")
	if !x.Values[0].IsMissing() || !x.Values[1].IsMissing() {
		t.Fatalf("expected NaN cells to load as missing, got %v", x.Values)
	}
	if x.Values[2] != types.NewFloat(1.5) {
		t.Fatalf("expected float 1.5, got %v", x.Values[2])
	}
}

func TestParse_TimestampsAsStrings(t *testing.T) {
	snap, err := Parse([]byte("columns:\n  - name: signup\n    values: [2024-01-01, 2024-02-29T10:00:00Z, ~]\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	signup, _ := snap.Table.Column("signup")
	if signup.Values[0] != types.NewString("2024-01-01") {
		t.Fatalf("expected date kept as string, got %v (%s)", signup.Values[0], signup.Values[0].Kind())
	}
	if signup.Values[1] != types.NewString("2024-02-29T10:00:00Z") {
		t.Fatalf("expected timestamp kept as string, got %v", signup.Values[1])
	}
	if !signup.Values[2].IsMissing() {
		t.Fatalf("expected missing cell, got %v", signup.Values[2])
	}
}
