package errors

import "fmt"

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage.
//
// The wrapped error preserves the original error chain, so errors.Is()
// checks keep working:
//
//	if err := launcher.Deploy(ctx, backend, frontend, id); err != nil {
//	    return errors.Wrap(err, "failed to deploy generated backend")
//	}
//
// Callers can still check for sentinel errors:
//
//	if errors.Is(err, errors.ErrDeployFailed) {
//	    // Handle the deploy-specific failure
//	}
//
// Only wrap at package boundaries to avoid overly nested messages.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage.
//
// Useful when the context message needs variable interpolation:
//
//	return errors.Wrapf(err, "failed to stop project %s", projectID)
//
// Like Wrap, the wrapped error preserves the original error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}
