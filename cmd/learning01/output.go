package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/AndNovian/learning01/internal/tracker"
	"github.com/spf13/cobra"
)

// BannerResponse is the JSON form of the banner.
type BannerResponse struct {
	Banner string `json:"banner"`
}

func (b BannerResponse) String() string {
	return b.Banner
}

// ErrorResponse is the JSON form of a rejected user input.
type ErrorResponse struct {
	Error string `json:"error"`
}

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// emit prints a result as its message, or as JSON with --json.
func emit(cmd *cobra.Command, result fmt.Stringer) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, result)
	}
	_, err := fmt.Fprintln(out, result.String())
	return err
}

// report prints a command's outcome. Input errors are printed like results and
// do not fail the command; anything else is returned as fatal.
func report(cmd *cobra.Command, result fmt.Stringer, err error) error {
	if err == nil {
		return emit(cmd, result)
	}

	var inputErr *tracker.InputError
	if !errors.As(err, &inputErr) {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, ErrorResponse{Error: inputErr.Message})
	}
	_, werr := fmt.Fprintln(out, inputErr.Message)
	return werr
}
