package cfg

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression over a statement.
//
// The expression environment exposes three string variables:
//
//	kind   "command", "bind", or "setting"
//	key    the statement key
//	value  the statement payload (empty for commands)
//
// For example, `kind == "setting" && key startsWith "cl_"`.
type Filter struct {
	src  string
	prog *vm.Program
}

// CompileFilter compiles src into a statement filter. A compilation failure
// returns an error wrapping [ErrFilterCompile].
func CompileFilter(src string) (*Filter, error) {
	prog, err := expr.Compile(src,
		expr.Env(filterEnv(Statement{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrFilterCompile.Wrap(err).
			With(slog.String("filter", src))
	}

	return &Filter{src: src, prog: prog}, nil
}

// String returns the filter's source expression.
func (f *Filter) String() string { return f.src }

// Match evaluates the filter against one statement. An evaluation failure
// returns an error wrapping [ErrFilterEval].
func (f *Filter) Match(st Statement) (bool, error) {
	out, err := expr.Run(f.prog, filterEnv(st))
	if err != nil {
		return false, ErrFilterEval.Wrap(err).
			With(slog.String("filter", f.src)).
			With(slog.Any("statement", st))
	}

	match, ok := out.(bool)
	if !ok {
		return false, ErrFilterEval.
			With(slog.String("filter", f.src)).
			With(slog.Any("result", out))
	}

	return match, nil
}

func filterEnv(st Statement) map[string]any {
	return map[string]any{
		"kind":  st.Kind.String(),
		"key":   st.Key,
		"value": st.Val,
	}
}
