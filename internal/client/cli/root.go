package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/ragctl/internal/common"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.session.CurrentUser(); user != nil {
		s = user.Username + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the REPL. Session initialization completes (restoring a
// persisted token or performing demo auto-login) before the first prompt is
// shown, so commands never observe a half-initialized session.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to ragctl (type 'help' for commands)")

	a.session.Initialize(ctx)
	if user := a.session.CurrentUser(); user != nil {
		log.Printf("Logged in as %s", user.Username)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("ragctl %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		if !a.exec(ctx, scanner.Text()) {
			return
		}
	}
}

// exec dispatches one REPL line. It returns false when the loop should exit.
func (a *App) exec(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Println("Available commands: chat, search, upload, process, info, health, formats, history, clear, sources, whoami, logout, exit")
		} else {
			fmt.Println("Available commands: login, health, exit")
		}

	case "login":
		if err := a.Login(ctx); err != nil {
			log.Printf("error: %v", err)
		}
	case "logout":
		a.Logout(ctx)
	case "whoami":
		a.WhoAmI()

	case "chat":
		if !a.requireLogin() {
			return true
		}
		a.Chat(ctx, strings.Join(args, " "))
	case "sources":
		a.ToggleSources()
	case "search":
		if !a.requireLogin() {
			return true
		}
		a.Search(ctx, strings.Join(args, " "))
	case "upload":
		if !a.requireLogin() {
			return true
		}
		if len(args) != 1 {
			fmt.Println("Usage: upload <path>")
			return true
		}
		a.Upload(ctx, args[0])
	case "process":
		if !a.requireLogin() {
			return true
		}
		path, clearExisting := parseProcessArgs(args)
		a.Process(ctx, path, clearExisting)
	case "history":
		if !a.requireLogin() {
			return true
		}
		a.History(ctx)
	case "clear":
		if !a.requireLogin() {
			return true
		}
		a.Clear(ctx)
	case "info":
		if !a.requireLogin() {
			return true
		}
		a.Info(ctx)
	case "formats":
		if !a.requireLogin() {
			return true
		}
		a.Formats(ctx)
	case "health":
		a.Health(ctx)

	case "exit", "quit":
		fmt.Println("Bye!")
		return false

	default:
		fmt.Println("Unknown command:", cmd)
	}

	return true
}

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Printf("%s (use 'login')\n", common.ErrNotAuthenticated)
	return false
}

func parseProcessArgs(args []string) (path string, clearExisting bool) {
	for _, arg := range args {
		if arg == "--clear" {
			clearExisting = true
			continue
		}
		if path == "" {
			path = arg
		}
	}
	return path, clearExisting
}
