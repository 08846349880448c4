package cli

import (
	"context"
	"errors"

	"kickitup/internal/api"
)

// performMutation runs a single write against the backend and reports the
// outcome through the notification queue. On success it enqueues msg and then
// runs each refetch; a failed refetch is logged but does not undo the success
// report, the write already happened.
func (a *App) performMutation(ctx context.Context, run func(context.Context) error, msg string, refetch ...func(context.Context) error) error {
	if err := run(ctx); err != nil {
		a.notes.Error(failureMessage(err))
		return err
	}
	a.notes.Success(msg)
	for _, fn := range refetch {
		if fn == nil {
			continue
		}
		if err := fn(ctx); err != nil {
			a.log.Warn(ctx, "refresh after mutation failed", "error", err)
		}
	}
	return nil
}

// failureMessage maps an error to the text shown to the user. Backend
// messages pass through verbatim so business rules read as the server wrote
// them; transport failures get a generic line.
func failureMessage(err error) string {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, api.ErrUnauthorized):
		return "your session has expired, please log in again"
	case errors.Is(err, api.ErrUnavailable):
		return "the server is unavailable, please try again later"
	}
	return err.Error()
}
