package environment

import (
	"context"
	"strings"
)

// Environment names the deployment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Normalize maps short aliases ("dev", "stage", "prod") and mixed case to
// the canonical constants. Unknown values are returned lowercased.
func (e Environment) Normalize() Environment {
	v := Environment(strings.ToLower(strings.TrimSpace(string(e))))
	switch v {
	case "dev", "local", "":
		return Development
	case "stage":
		return Staging
	case "prod":
		return Production
	}
	return v
}

func (e Environment) IsProduction() bool  { return e.Normalize() == Production }
func (e Environment) IsDevelopment() bool { return e.Normalize() == Development }

type contextKey struct{}

func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" if none was set.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool {
	env := FromContext(ctx)
	return env != "" && env.IsProduction()
}

func IsDevelopment(ctx context.Context) bool {
	env := FromContext(ctx)
	return env != "" && env.IsDevelopment()
}
