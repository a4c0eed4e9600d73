package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/coderadar/internal/core"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatYAML     = "yaml"

	wordWrap = 100
)

var headerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("51")).
	Bold(true).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("51")).
	Padding(0, 2)

func validFormat(f string) bool {
	switch f {
	case formatMarkdown, formatJSON, formatYAML:
		return true
	default:
		return false
	}
}

// printReview writes resp to w in the requested format.
func printReview(w io.Writer, resp *core.ReviewResponse, format string, raw bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode review as YAML: %w", err)
		}
		return enc.Close()
	}

	body := resp.Review
	if !raw {
		rendered, err := renderMarkdown(resp.Review)
		if err != nil {
			return err
		}
		body = rendered
	}

	if _, err := fmt.Fprintln(w, headerStyle.Render("📋 REVIEW")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, body); err != nil {
		return err
	}
	if resp.Metadata != nil {
		successColor.Fprintf(w, "✓ Processed in %s\n", resp.Metadata.ProcessingTime)
	}
	return nil
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render review: %w", err)
	}
	return out, nil
}
