package level

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dop251/goja"
)

func TestBuiltinPack(t *testing.T) {
	p, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if p.Len() != 16 {
		t.Fatalf("expected 16 levels, got %d", p.Len())
	}
	first, _ := p.At(0)
	if len(first.Spools) != 2 || first.Spools[0] != (Circle{460, 207, 70}) {
		t.Errorf("level 1 spools: got %v", first.Spools)
	}
	if first.Start != (Point{50, 360}) || first.Finish != (Point{1230, 360}) || first.End != (Point{110, 360}) {
		t.Errorf("level 1 terminals: got %v %v %v", first.Start, first.Finish, first.End)
	}
	if first.Name != "Level 1" {
		t.Errorf("expected default name, got %q", first.Name)
	}
	if len(first.Hint) != 3 {
		t.Errorf("expected tutorial hint on level 1, got %v", first.Hint)
	}
	third, _ := p.At(2)
	if len(third.Isolators) != 2 || len(third.Blocks) != 3 || len(third.Hint) != 1 {
		t.Errorf("level 3: unexpected contents %+v", third)
	}
	if _, err := p.At(16); err == nil {
		t.Error("expected out of range error")
	}
}

func TestEvalPrintAndName(t *testing.T) {
	src := `
print("building", 1);
var levels = [{
	name: "tiny",
	spools: [[100, 100, 20]],
	isolators: [],
	blocks: [],
	start: [10, 10], finish: [300, 10], end: [20, 10],
}];`
	var out []string
	p, err := Eval(context.Background(), "tiny", src, func(msg string) { out = append(out, msg) })
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != "building 1" {
		t.Errorf("print: got %q", out)
	}
	if p.Levels[0].Name != "tiny" || p.Name != "tiny" {
		t.Errorf("names: got pack %q level %q", p.Name, p.Levels[0].Name)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"no levels var", `var x = 1;`, ErrNoLevels},
		{"empty", `var levels = [];`, ErrNoLevels},
		{"not an array", `var levels = 5;`, ErrInvalid},
		{"short point", `var levels = [{spools: [], isolators: [], blocks: [], start: [1], finish: [2, 2], end: [3, 3]}];`, ErrInvalid},
		{"zero radius", `var levels = [{spools: [[10, 10, 0]], isolators: [], blocks: [], start: [1, 1], finish: [2, 2], end: [3, 3]}];`, ErrInvalid},
		{"outside", `var levels = [{spools: [], isolators: [], blocks: [[5000, 10, 5]], start: [1, 1], finish: [2, 2], end: [3, 3]}];`, ErrInvalid},
		{"terminal outside", `var levels = [{spools: [], isolators: [], blocks: [], start: [-1, 1], finish: [2, 2], end: [3, 3]}];`, ErrInvalid},
	}
	for _, tc := range tests {
		_, err := Eval(context.Background(), tc.name, tc.src, nil)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestEvalSyntaxError(t *testing.T) {
	_, err := Eval(context.Background(), "broken", `var levels = [;`, nil)
	if err == nil || !strings.Contains(err.Error(), "broken") {
		t.Errorf("expected evaluation error naming the pack, got %v", err)
	}
}

func TestEvalInterrupted(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := Eval(ctx, "spin", `for (;;) {}`, nil)
	var ie *goja.InterruptedError
	if !errors.As(err, &ie) {
		t.Fatalf("expected interrupted error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.js")
	src := `var levels = [{spools: [], isolators: [], blocks: [], start: [1, 1], finish: [2, 2], end: [3, 3]}];`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "mine" || p.Len() != 1 {
		t.Errorf("expected pack mine with 1 level, got %q with %d", p.Name, p.Len())
	}
	if _, err := LoadFile(context.Background(), filepath.Join(dir, "missing.js"), nil); err == nil {
		t.Error("expected error for missing file")
	}
}
