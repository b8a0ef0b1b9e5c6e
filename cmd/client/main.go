package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"HealthKeeper/internal/cli/api"
	"HealthKeeper/internal/cli/fs"
	"HealthKeeper/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	os.Exit(run(cfg, flag.Args()))
}

func run(cfg *config.Config, args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	store := fs.TokenStore{Path: cfg.TokenFile}

	switch args[0] {
	case "health":
		_, body, err := api.Get(cfg.ServerURL+"/api/health", "")
		return report(body, err)

	case "login":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: login <email> <password>")
			return 2
		}
		resp, body, err := api.PostJSON(cfg.ServerURL+"/api/login", map[string]string{
			"email":    args[1],
			"password": args[2],
		}, "")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return 1
		}
		if resp.StatusCode != http.StatusOK {
			fmt.Fprintln(os.Stderr, string(body))
			return 1
		}
		var lr struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(body, &lr); err != nil || lr.Token == "" {
			fmt.Fprintln(os.Stderr, "no token in response")
			return 1
		}
		if err := store.Save(lr.Token); err != nil {
			fmt.Fprintln(os.Stderr, "failed to save token:", err)
			return 1
		}
		fmt.Println("logged in")
		return 0

	case "records":
		token, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "not logged in:", err)
			return 1
		}
		_, body, err := api.Get(cfg.ServerURL+"/api/records", token)
		return report(body, err)

	case "record-add":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: record-add <title> [json-data]")
			return 2
		}
		token, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "not logged in:", err)
			return 1
		}
		data := json.RawMessage(`{}`)
		if len(args) > 2 {
			data = json.RawMessage(args[2])
		}
		_, body, err := api.PostJSON(cfg.ServerURL+"/api/records", map[string]any{
			"title": args[1],
			"data":  data,
		}, token)
		return report(body, err)

	default:
		usage()
		return 2
	}
}

func report(body []byte, err error) int {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	fmt.Println(string(body))
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "commands: health | login <email> <password> | records | record-add <title> [json-data]")
}

func printVersion() {
	fmt.Printf("HealthKeeper CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
