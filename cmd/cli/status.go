package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/coderadar/internal/client"
)

var outputJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Checks whether the CodeRadar backend is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := newClient()
		report := c.CheckStatus(cmd.Context())

		if outputJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(statusJSON(report)); err != nil {
				return err
			}
		} else {
			printStatus(c.BaseURL(), report)
		}
		return statusError(report)
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	statusCmd.Flags().BoolVar(&outputJSON, "json", false, "Output status as JSON")
	rootCmd.AddCommand(statusCmd)
}

// statusError makes the exit code reflect reachability in every output mode.
func statusError(r *client.StatusReport) error {
	if r.State != client.StateConnected {
		return fmt.Errorf("backend is %s", r.State)
	}
	return nil
}

type statusOutput struct {
	State   string `json:"state"`
	Version string `json:"version,omitempty"`
	Model   string `json:"model,omitempty"`
	Error   string `json:"error,omitempty"`
}

func statusJSON(r *client.StatusReport) statusOutput {
	out := statusOutput{State: string(r.State)}
	if r.Info != nil {
		out.Version = r.Info.Version
	}
	if r.Health != nil {
		out.Model = r.Health.Model
	}
	if r.InfoErr != nil {
		out.Error = r.InfoErr.Error()
	}
	return out
}

func printStatus(baseURL string, r *client.StatusReport) {
	titleColor.Println("📡 CodeRadar backend status")
	dimColor.Printf("   Server: %s\n\n", baseURL)

	switch r.State {
	case client.StateConnected:
		successColor.Println("✅ Connected")
	case client.StateError:
		warnColor.Println("⚠️  Backend answered with an error")
	default:
		errorColor.Println("❌ Disconnected")
	}

	if r.Info != nil {
		infoColor.Printf("   Version: %s\n", r.Info.Version)
	}
	if r.Health != nil {
		infoColor.Printf("   Model:   %s\n", r.Health.Model)
	}
	if r.InfoErr != nil {
		dimColor.Printf("   %s\n", r.InfoErr)
	} else if r.HealthErr != nil {
		dimColor.Printf("   AI health: %s\n", r.HealthErr)
	}
}
