package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(seasonsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [username] [password]",
	Short: "Log in and print a bearer token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]string{"username": args[0], "password": args[1]})
		if err != nil {
			return err
		}
		return performRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the league",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List the seasons",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/seasons")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List recorded matches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings [lifetime|season/<id>|date/<YYYY-MM-DD>]",
	Short: "Get the rankings for a scope (defaults to lifetime)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope := "lifetime"
		if len(args) == 1 {
			scope = args[0]
		}
		return performGetRequest("/rankings/" + scope)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint, nil)
}

func performRequest(method, endpoint string, body io.Reader) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	if cacheStatus := resp.Header.Get("X-Cache"); cacheStatus != "" {
		fmt.Printf("Cache: %s (%s)\n", cacheStatus, resp.Header.Get("X-Cache-Key"))
	}
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
