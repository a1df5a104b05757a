package commands

import (
	"errors"
	"io"

	convertcmd "github.com/goliatone/go-md2adf/internal/commands/convert"
	"github.com/goliatone/go-md2adf/internal/di"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

// ErrMarkdownServiceRequired is returned when the container has file
// conversion disabled, leaving no service for the convert handlers.
var ErrMarkdownServiceRequired = errors.New("no command handlers registered; enable Files in the configuration")

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
	// Stdout receives documents written to the "-" target. Defaults to os.Stdout.
	Stdout io.Writer
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// Unsubscribe tears down every dispatcher subscription.
func (r *RegistrationResult) Unsubscribe() {
	if r == nil {
		return
	}
	for _, sub := range r.Subscriptions {
		sub.Unsubscribe()
	}
	r.Subscriptions = nil
}

// RegisterContainerCommands builds the convert handlers backed by the
// container's Markdown service and optionally registers them with
// registry and dispatcher integrations.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	service := container.MarkdownService()
	if service == nil {
		return &RegistrationResult{}, ErrMarkdownServiceRequired
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0, 2),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	handlerOpts := []convertcmd.Option{}
	if opts.Stdout != nil {
		handlerOpts = append(handlerOpts, convertcmd.WithStdout(opts.Stdout))
	}

	set, err := convertcmd.RegisterConvertCommands(nil, service, provider, handlerOpts...)
	if err != nil {
		return result, err
	}
	register(set.File)
	register(set.Directory)

	return result, errs
}
