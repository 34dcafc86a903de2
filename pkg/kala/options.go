package kala

import "context"

type OptionKey string

const (
	FatalPolicyOptionKey OptionKey = "fatal_policy_options"
)

type FatalPolicyOptions struct {
	Policy FatalPolicy
}

// WithFatalPolicy returns a context whose RunContext calls classify panics with
// policy. A nil policy captures every panic.
func WithFatalPolicy(ctx context.Context, policy FatalPolicy) context.Context {
	return context.WithValue(ctx, FatalPolicyOptionKey, FatalPolicyOptions{Policy: policy})
}

func GetFatalPolicy(ctx context.Context, defaultPolicy FatalPolicy) FatalPolicy {
	options, ok := ctx.Value(FatalPolicyOptionKey).(FatalPolicyOptions)
	if ok {
		return options.Policy
	}
	return defaultPolicy
}
