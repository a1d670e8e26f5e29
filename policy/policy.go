package policy

import (
	"context"
	"strings"
)

// Execution modes
const (
	ModeAsk  = "ask"  // ask before every action
	ModeAuto = "auto" // execute automatically (default)
	ModeDeny = "deny" // block execution
)

// AskFunc is invoked when Mode==ask. Returning true approves the action.
type AskFunc func(ctx context.Context, action string, input interface{}, p *Policy) bool

// Policy controls which actions ("service.method") may be executed.
type Policy struct {
	Mode      string
	AllowList []string
	BlockList []string
	Ask       AskFunc
}

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// Validate checks mode name
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch strings.ToLower(c.Mode) {
	case "", ModeAuto, ModeDeny, ModeAsk:
		return nil
	}
	return &ModeError{Mode: c.Mode}
}

// ModeError reports an unsupported mode
type ModeError struct {
	Mode string
}

func (e *ModeError) Error() string {
	return "policy: unsupported mode " + e.Mode
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      p.Mode,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
}

// FromConfig converts a Config to a runtime Policy (without AskFunc).
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      c.Mode,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// IsAllowed evaluates AllowList / BlockList by case-insensitive comparison of
// the fully-qualified action name "service.method".
func (p *Policy) IsAllowed(action string) bool {
	if p == nil {
		return true
	}
	for _, b := range p.BlockList {
		if strings.EqualFold(action, b) {
			return false
		}
	}
	if len(p.AllowList) == 0 {
		return true
	}
	for _, a := range p.AllowList {
		if strings.EqualFold(action, a) {
			return true
		}
	}
	return false
}

// Approve combines Mode with the allow and block lists.
func (p *Policy) Approve(ctx context.Context, action string, input interface{}) bool {
	if p == nil {
		return true
	}
	if !p.IsAllowed(action) {
		return false
	}
	switch strings.ToLower(p.Mode) {
	case ModeDeny:
		return false
	case ModeAsk:
		if p.Ask == nil {
			return false
		}
		return p.Ask(ctx, action, input, p)
	}
	return true
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy, nil when absent.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
