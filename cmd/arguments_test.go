package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveArguments_NoArguments(t *testing.T) {
	request, err := ResolveArguments(nil)

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, ErrNotEnoughArguments))
}

func TestResolveArguments_PathAndStyle(t *testing.T) {
	dir := t.TempDir()

	request, err := ResolveArguments([]string{dir, "PY"})

	require.NoError(t, err)
	assert.Equal(t, dir, request.Path)
	assert.Equal(t, models.PythonStyle, request.Style)
}

func TestResolveArguments_LastArgumentIsStyle(t *testing.T) {
	dir := t.TempDir()

	request, err := ResolveArguments([]string{dir, "python", "ignored", "lisp"})

	require.NoError(t, err)
	assert.Equal(t, models.LispStyle, request.Style)
}

func TestResolveArguments_SingleArgumentServesAsStyle(t *testing.T) {
	dir := t.TempDir()

	request, err := ResolveArguments([]string{dir})

	require.NoError(t, err)
	assert.Equal(t, dir, request.Path)
	assert.Equal(t, models.DefaultStyle, request.Style)
}

func TestResolveArguments_MissingPath(t *testing.T) {
	request, err := ResolveArguments([]string{filepath.Join(t.TempDir(), "missing"), "c"})

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, ErrPathNotExist))
}
