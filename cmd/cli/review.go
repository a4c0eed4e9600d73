package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/coderadar/internal/client"
)

var (
	outputFormat  string
	rawOutput     bool
	reviewTimeout time.Duration
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgWhite)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Submit a file or stdin for an AI code review",
	Long: `Submit source code to the CodeRadar backend and print the review.

The code is read from the given file, or from stdin when the file is "-" or omitted.

Examples:
  coderadar-cli review main.go
  cat handler.js | coderadar-cli review
  coderadar-cli review --format json main.go`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&outputFormat, "format", "f", formatMarkdown, "Output format: markdown, json or yaml")
	reviewCmd.Flags().BoolVar(&rawOutput, "raw", false, "Print the markdown review without terminal rendering")
	reviewCmd.Flags().DurationVar(&reviewTimeout, "timeout", client.DefaultReviewTimeout, "How long to wait for the review")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	if !validFormat(outputFormat) {
		return fmt.Errorf("unknown format %q, expected one of markdown, json, yaml", outputFormat)
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	code, err := readSource(source, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if strings.TrimSpace(code) == "" {
		return errors.New("nothing to review: the input is empty")
	}

	c := newClient(client.WithReviewTimeout(reviewTimeout))

	if outputFormat == formatMarkdown {
		titleColor.Println("🔍 CodeRadar - Code Review")
		dimColor.Printf("   Source: %s (%d characters)\n", sourceName(source), len([]rune(code)))
		dimColor.Println("   ⏳ Reviewing your code...")
	}

	resp, err := c.Review(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("failed to get review: %w", err)
	}

	return printReview(cmd.OutOrStdout(), resp, outputFormat, rawOutput)
}

func readSource(source string, stdin io.Reader) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", source, err)
	}
	return string(data), nil
}

func sourceName(source string) string {
	if source == "-" {
		return "stdin"
	}
	return source
}
