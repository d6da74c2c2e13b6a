package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nidhi-labs/nidhi/internal/api"
	"github.com/nidhi-labs/nidhi/internal/config"
	"github.com/nidhi-labs/nidhi/internal/linkflow"
	"github.com/nidhi-labs/nidhi/internal/secrets"
	"github.com/nidhi-labs/nidhi/internal/store"
	"github.com/nidhi-labs/nidhi/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "login":
			runLogin(cfg)
			return
		case "register":
			runRegister(cfg)
			return
		case "logout":
			if err := secrets.DeleteToken(); err != nil {
				log.Fatalf("logout: %v", err)
			}
			fmt.Println("Logged out.")
			return
		}
	}

	token, err := secrets.FetchToken()
	if err != nil {
		if errors.Is(err, secrets.ErrNoToken) {
			fmt.Println("No session found. Run `nidhi login` first.")
			os.Exit(1)
		}
		log.Fatalf("session: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Data.Path), 0o755); err != nil {
		log.Fatalf("mkdir data dir: %v", err)
	}
	snapshots, err := store.Open(cfg.Data.Path)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer snapshots.Close()

	if os.Getenv("NIDHI_DEBUG") != "" {
		f, err := tea.LogToFile("nidhi-debug.log", "nidhi")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, func() string { return token })
	provider := linkProvider(cfg.Provider.Mode)

	p := tea.NewProgram(tui.New(client, provider, snapshots, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func linkProvider(mode string) linkflow.Provider {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "hosted":
		log.Printf("warn: hosted link provider not implemented, using sandbox")
		return linkflow.NewSandbox()
	default:
		return linkflow.NewSandbox()
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("read %s: %v", strings.ToLower(strings.TrimSuffix(label, ": ")), err)
	}
	return strings.TrimSpace(line)
}

func runLogin(cfg config.Config) {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	email := prompt(reader, "Email: ")
	password := prompt(reader, "Password: ")

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, func() string { return "" })
	creds, err := client.Login(ctx, email, password)
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	saveSession(ctx, cfg, creds)
	fmt.Printf("Logged in as %s.\n", creds.User.Email)
}

func runRegister(cfg config.Config) {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	email := prompt(reader, "Email: ")
	password := prompt(reader, "Password: ")
	company := prompt(reader, "Company name: ")
	industry := prompt(reader, "Industry: ")

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, func() string { return "" })
	creds, err := client.Register(ctx, email, password, company, industry)
	if err != nil {
		log.Fatalf("register: %v", err)
	}
	saveSession(ctx, cfg, creds)
	fmt.Printf("Registered %s.\n", creds.User.Email)
}

func saveSession(ctx context.Context, cfg config.Config, creds api.Credentials) {
	if err := secrets.StoreToken(creds.AccessToken); err != nil {
		log.Fatalf("store session: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Data.Path), 0o755); err == nil {
		if snapshots, serr := store.Open(cfg.Data.Path); serr == nil {
			if perr := snapshots.SaveProfile(ctx, creds.User); perr != nil {
				log.Printf("warn: profile snapshot: %v", perr)
			}
			snapshots.Close()
		}
	}
}
