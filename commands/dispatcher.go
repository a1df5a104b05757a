package commands

import (
	"fmt"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"

	convertcmd "github.com/goliatone/go-md2adf/internal/commands/convert"
)

// GoCommandDispatcher subscribes convert handlers to the go-command global
// dispatcher so hosts can issue commands with dispatcher.Dispatch.
type GoCommandDispatcher struct{}

var _ CommandDispatcher = GoCommandDispatcher{}

// RegisterCommand subscribes handler for its message type.
func (GoCommandDispatcher) RegisterCommand(handler any) (CommandSubscription, error) {
	switch h := handler.(type) {
	case command.Commander[convertcmd.ConvertFileCommand]:
		return dispatcher.SubscribeCommand(h), nil
	case command.Commander[convertcmd.ConvertDirectoryCommand]:
		return dispatcher.SubscribeCommand(h), nil
	default:
		return nil, fmt.Errorf("commands: unsupported handler %T", handler)
	}
}
