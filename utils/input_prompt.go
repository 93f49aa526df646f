package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/meysamhadeli/cmtscan/constants/lipgloss"
)

// ConfirmPrompt asks a yes/no question and reports whether the answer was y or yes.
// End of input counts as no.
func ConfirmPrompt(out io.Writer, question string, reader *bufio.Reader) (bool, error) {
	fmt.Fprint(out, lipgloss.Yellow.Render(question)+" (y/N): ")

	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("error reading input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
