package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cashflow-cli",
		Short: "Cashflow CLI tool",
		Long:  `A command line interface for interacting with the Cashflow API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Cashflow API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Forecast commands
	var (
		start  string
		end    string
		asOf   string
		method string
	)

	forecastCmd := &cobra.Command{
		Use:   "forecast",
		Short: "Compute a balance forecast",
		Run: func(cmd *cobra.Command, args []string) {
			runForecast(start, end, asOf, method)
		},
	}

	forecastCmd.Flags().StringVar(&start, "start", "", "Window start (YYYY-MM-DD)")
	forecastCmd.Flags().StringVar(&end, "end", "", "Window end (YYYY-MM-DD)")
	forecastCmd.Flags().StringVar(&asOf, "as-of", "", "Forecast anchor date (YYYY-MM-DD, default today)")
	forecastCmd.Flags().StringVar(&method, "method", "", "Merge method (sum or override)")
	rootCmd.AddCommand(forecastCmd)

	// Obligation commands
	obligationsCmd := &cobra.Command{
		Use:   "obligations",
		Short: "Obligation operations",
	}

	listRecurringCmd := &cobra.Command{
		Use:   "list-recurring",
		Short: "List recurring obligations",
		Run: func(cmd *cobra.Command, args []string) {
			listRecurring()
		},
	}

	obligationsCmd.AddCommand(listRecurringCmd)
	rootCmd.AddCommand(obligationsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runForecast(start, end, asOf, method string) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)
	if asOf != "" {
		params.Set("as_of", asOf)
	}
	if method != "" {
		params.Set("method", method)
	}

	body, ok := getJSON("/api/v1/forecast?" + params.Encode())
	if !ok {
		os.Exit(1)
	}

	var result struct {
		Start    string `json:"start"`
		End      string `json:"end"`
		Method   string `json:"method"`
		Accounts map[string][]struct {
			Date    string `json:"date"`
			Balance string `json:"balance"`
		} `json:"accounts"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Forecast %s to %s (%s)\n", result.Start, result.End, result.Method)
	for account, points := range result.Accounts {
		fmt.Printf("\n%s\n", account)
		for _, p := range points {
			fmt.Printf("  %s  %s\n", p.Date, p.Balance)
		}
	}
}

func listRecurring() {
	body, ok := getJSON("/api/v1/obligations/recurring")
	if !ok {
		os.Exit(1)
	}

	var result struct {
		Obligations []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Amount string `json:"amount"`
			Period string `json:"period"`
		} `json:"obligations"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, o := range result.Obligations {
		fmt.Printf("%s  %-24s %10s  %s\n", o.ID, o.Name, o.Amount, o.Period)
	}
}

func getJSON(path string) ([]byte, bool) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		return nil, false
	}

	return body, true
}
