package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"lgsmfleet/integration/scenario"
)

const defaultSpoke = "http://localhost:49950"

func main() {
	list := flag.Bool("list", false, "list available scenarios and exit")
	scenarioName := flag.String("scenario", "", "scenario to run (or pass as positional arg, or \"all\")")
	spoke := flag.String("spoke", "", "agent base URL (default: http://localhost:49950 or SPOKE_URL env)")
	spokeKey := flag.String("spoke-key", "", "agent API key (default: SPOKE_API_KEY env)")
	hub := flag.String("hub", "", "hub base URL (default: HUB_URL env)")
	hubKey := flag.String("hub-key", "", "hub API key (default: HUB_API_KEY env)")
	flag.Parse()

	if *list {
		for _, name := range scenario.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	cfg := &scenario.Config{
		SpokeURL:    strings.TrimRight(firstNonEmpty(*spoke, os.Getenv("SPOKE_URL"), defaultSpoke), "/"),
		SpokeAPIKey: firstNonEmpty(*spokeKey, os.Getenv("SPOKE_API_KEY")),
		HubURL:      strings.TrimRight(firstNonEmpty(*hub, os.Getenv("HUB_URL")), "/"),
		HubAPIKey:   firstNonEmpty(*hubKey, os.Getenv("HUB_API_KEY")),
	}
	if cfg.SpokeAPIKey == "" {
		fmt.Fprintln(os.Stderr, "error: --spoke-key or SPOKE_API_KEY is required")
		os.Exit(2)
	}

	name := *scenarioName
	if name == "" && flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: integration [--list] [--scenario=NAME|all] [--spoke=URL] [--spoke-key=KEY] [--hub=URL] [--hub-key=KEY] [scenario_name]")
		fmt.Fprintln(os.Stderr, "  use --list to list scenarios")
		os.Exit(2)
	}

	names := []string{name}
	if name == "all" {
		names = scenario.Names()
	}

	failed := 0
	for _, n := range names {
		if !runOne(n, cfg) {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runOne(name string, cfg *scenario.Config) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	err := scenario.Run(name, ctx, cfg)

	fmt.Println("\n=== Scenario Result ===")
	fmt.Printf("Scenario: %s\n", name)
	defer fmt.Println("=====================")

	var unknown *scenario.UnknownScenarioError
	switch {
	case err == nil:
		fmt.Printf("Status: PASSED\n")
		return true
	case errors.Is(err, scenario.ErrHubNotConfigured):
		fmt.Printf("Status: SKIPPED (%v)\n", err)
		return true
	case errors.As(err, &unknown):
		fmt.Printf("Status: FAILED\n")
		fmt.Printf("Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "\navailable scenarios: %s\n", strings.Join(scenario.Names(), ", "))
		return false
	default:
		fmt.Printf("Status: FAILED\n")
		fmt.Printf("Error: %v\n", err)
		return false
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
