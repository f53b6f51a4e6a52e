package cli

import (
	"context"
	"errors"

	"presensicheck/internal/domain"
	"presensicheck/internal/ports/input"
)

// CommandCleanup selects the destructive mode; anything else verifies.
const CommandCleanup = "cleanup"

// Options carries the values only used for operator hints.
type Options struct {
	Program    string
	DBUser     string
	DBName     string
	APIBaseURL string
}

// App dispatches the command line to the test data use case.
type App struct {
	useCase input.TestDataUseCase
	console *Console
	opts    Options
}

func NewApp(useCase input.TestDataUseCase, console *Console, opts Options) *App {
	return &App{useCase: useCase, console: console, opts: opts}
}

// Run executes verify or cleanup depending on args (without the program name).
// A missing test event is reported but is not an error.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == CommandCleanup {
		return a.cleanup(ctx)
	}
	err := a.verify(ctx)
	a.console.CleanupHint(a.opts.Program)
	return err
}

func (a *App) verify(ctx context.Context) error {
	a.console.Header()

	report, err := a.useCase.Verify(ctx)
	if errors.Is(err, domain.ErrEventNotFound) {
		a.console.NotFound(a.opts.DBUser, a.opts.DBName)
		return nil
	}
	if err != nil {
		a.console.Error(err)
		return err
	}

	a.console.VerifyReport(report, a.opts.APIBaseURL)
	return nil
}

func (a *App) cleanup(ctx context.Context) error {
	result, err := a.useCase.Cleanup(ctx, a.console)
	if errors.Is(err, domain.ErrEventNotFound) {
		a.console.CleanupNotFound()
		return nil
	}
	if err != nil {
		a.console.Error(err)
		return err
	}

	a.console.CleanupResult(result)
	return nil
}
