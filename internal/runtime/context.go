package runtime

import (
	"context"

	"seedrepo.dev/seedrepo/internal/bootstrap"
	"seedrepo.dev/seedrepo/internal/config"
	"seedrepo.dev/seedrepo/internal/tui"
)

// Context provides access to shared dependencies for commands
type Context struct {
	context.Context
	Splog     *tui.Splog
	Config    *config.UserConfig
	Diagnoser bootstrap.Diagnoser
}

// NewContext creates a context with an empty config and no diagnoser
func NewContext(ctx context.Context, splog *tui.Splog) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Context{
		Context: ctx,
		Splog:   splog,
		Config:  &config.UserConfig{},
	}
}
