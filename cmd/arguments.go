package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
)

var (
	ErrNotEnoughArguments = errors.New("not enough arguments passed")
	ErrPathNotExist       = errors.New("path does not exist")
)

// ScanRequest is the resolved target of one run.
type ScanRequest struct {
	Path  string
	Style models.CommentStyle
}

// ResolveArguments turns positional arguments into a ScanRequest.
// The first argument is the path and the last one is the style token, so a
// single argument serves as both.
func ResolveArguments(args []string) (*ScanRequest, error) {
	if len(args) == 0 {
		return nil, ErrNotEnoughArguments
	}

	request := &ScanRequest{
		Path:  args[0],
		Style: models.ParseCommentStyle(args[len(args)-1]),
	}

	// any stat failure counts as a missing path
	if _, err := os.Stat(request.Path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotExist, request.Path)
	}

	return request, nil
}
