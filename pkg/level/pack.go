package level

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dop251/goja"
)

//go:embed builtin.js
var builtinSource string

// BuiltinName is the pack name of the embedded levels.
const BuiltinName = "builtin"

// Pack is an ordered list of levels.
type Pack struct {
	Name   string
	Levels []Level
}

// Len returns the number of levels.
func (p *Pack) Len() int { return len(p.Levels) }

// At returns level i (0-based).
func (p *Pack) At(i int) (Level, error) {
	if i < 0 || i >= len(p.Levels) {
		return Level{}, fmt.Errorf("level %d out of range (pack has %d)", i+1, len(p.Levels))
	}
	return p.Levels[i], nil
}

// PrintFunc receives the output of print() calls in a pack script.
type PrintFunc func(msg string)

// Builtin evaluates the embedded level pack.
func Builtin() (*Pack, error) {
	return Eval(context.Background(), BuiltinName, builtinSource, nil)
}

// LoadFile reads and evaluates the pack at path.
func LoadFile(ctx context.Context, path string, onPrint PrintFunc) (*Pack, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level pack: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Eval(ctx, name, string(src), onPrint)
}

// Eval runs a pack script and collects its levels. The script is
// interrupted when ctx is done, so packs with runaway loops cannot hang
// the caller. Every level is validated.
func Eval(ctx context.Context, name, src string, onPrint PrintFunc) (*Pack, error) {
	vm := goja.New()

	vm.Set("print", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		if onPrint != nil {
			onPrint(strings.Join(parts, " "))
		}
		return goja.Undefined()
	})

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	if _, err := vm.RunScript(name, src); err != nil {
		return nil, fmt.Errorf("evaluate level pack %s: %w", name, err)
	}

	levels := vm.Get("levels")
	if levels == nil || goja.IsUndefined(levels) || goja.IsNull(levels) {
		return nil, fmt.Errorf("%s: %w", name, ErrNoLevels)
	}

	encoded, err := vm.RunString("JSON.stringify(levels)")
	if err != nil {
		return nil, fmt.Errorf("encode levels of %s: %w", name, err)
	}

	var parsed []Level
	if err := json.Unmarshal([]byte(encoded.String()), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoLevels)
	}

	for i := range parsed {
		if parsed[i].Name == "" {
			parsed[i].Name = fmt.Sprintf("Level %d", i+1)
		}
		if err := parsed[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s level %d: %w", name, i+1, err)
		}
	}

	return &Pack{Name: name, Levels: parsed}, nil
}
