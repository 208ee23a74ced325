package cli

import (
	stderrors "errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat(OutputText))
	assert.True(t, IsValidOutputFormat(OutputJSON))
	assert.False(t, IsValidOutputFormat(""))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat("JSON"))
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "generic error", err: stderrors.New("boom"), want: ExitError},
		{name: "invalid output format", err: errors.ErrInvalidOutputFormat, want: ExitInvalidInput},
		{name: "wrapped invalid output format", err: errors.Wrap(errors.ErrInvalidOutputFormat, "got yaml"), want: ExitInvalidInput},
		{name: "empty requirement", err: errors.ErrEmptyRequirement, want: ExitInvalidInput},
		{name: "cobra unknown flag", err: stderrors.New(`unknown flag: --bogus`), want: ExitInvalidInput},
		{name: "cobra unknown command", err: stderrors.New(`unknown command "frob" for "pocbuilder"`), want: ExitInvalidInput},
		{name: "cobra arg count", err: stderrors.New("accepts at least 1 arg(s), received 0"), want: ExitInvalidInput},
		{name: "missing api key", err: errors.ErrMissingAPIKey, want: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestAddGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	flags := &GlobalFlags{}
	AddGlobalFlags(cmd, flags)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("output"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("quiet"))
	assert.Equal(t, OutputText, flags.Output)
}

func TestAddGlobalFlags_VerboseQuietExclusive(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := &cobra.Command{
		Use:  "test",
		RunE: func(*cobra.Command, []string) error { return nil },
	}
	AddGlobalFlags(cmd, flags)
	cmd.SetArgs([]string{"-v", "-q"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}
