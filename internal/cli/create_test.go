package cli

import (
	"os"
	"path/filepath"
	"testing"

	clierrors "github.com/noterhq/noter/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCmd(t *testing.T) {
	dir := writeProject(t, nil)

	out, err := runCLI(t, "create", "PROJ-9", "feature", "  Add exports  ", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "PROJ-9.feature")

	data, err := os.ReadFile(filepath.Join(dir, "release_notes", "PROJ-9.feature"))
	require.NoError(t, err)
	assert.Equal(t, "Add exports\n", string(data))
}

func TestCreateCmd_HiddenContentNeedsNoMessage(t *testing.T) {
	dir := writeProject(t, nil)

	_, err := runCLI(t, "create", "PROJ-10", "misc", "--config", dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "release_notes", "PROJ-10.misc"))
	assert.NoError(t, err)
}

func TestCreateCmd_Errors(t *testing.T) {
	tests := map[string]struct {
		existing map[string]string
		args     []string
		wantCode int
		wantMsg  string
	}{
		"unknown extension": {
			args:     []string{"create", "A", "feat", "x"},
			wantCode: clierrors.ExitArgument,
			wantMsg:  "unknown variant extension: feat",
		},
		"missing message": {
			args:     []string{"create", "A", "feature"},
			wantCode: clierrors.ExitArgument,
			wantMsg:  "a message is required for Features",
		},
		"already exists": {
			existing: map[string]string{"A.feature": "old"},
			args:     []string{"create", "A", "feature", "new"},
			wantCode: clierrors.ExitArgument,
			wantMsg:  "fragment already exists",
		},
		"too many args": {
			args:     []string{"create", "A", "feature", "x", "y"},
			wantCode: clierrors.ExitArgument,
			wantMsg:  "accepts between 2 and 3 arg(s)",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := writeProject(t, tt.existing)

			_, err := runCLI(t, append(tt.args, "--config", dir)...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, clierrors.ExitCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("existing fragment untouched", func(t *testing.T) {
		dir := writeProject(t, map[string]string{"A.feature": "old"})
		_, err := runCLI(t, "create", "A", "feature", "new", "--config", dir)
		require.Error(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "release_notes", "A.feature"))
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	})
}
