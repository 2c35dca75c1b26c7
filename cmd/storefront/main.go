package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/slicelab/storefront/config"
	"github.com/slicelab/storefront/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

func main() {
	if len(os.Args) < 2 {
		logger := bootstrap.InitLogger("info")
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		logger := bootstrap.InitLogger("info")
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		bootstrap.InitLogger("info").Error("load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	logger := bootstrap.InitLogger(cfg.LogLevel)

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Sign in via the configured identity provider",
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Sign out and delete the stored identity",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the signed-in identity, if any",
			run:         runWhoami,
		},
		"catalog": {
			name:        "catalog",
			description: "List the pizza catalog",
			run:         runCatalog,
		},
		"cart": {
			name:        "cart",
			description: "Show the current cart and total",
			run:         runCart,
		},
		"cart-add": {
			name:        "cart-add",
			description: "Add a pizza from the catalog to the cart",
			run:         runCartAdd,
		},
		"cart-remove": {
			name:        "cart-remove",
			description: "Remove some or all of a cart line",
			run:         runCartRemove,
		},
		"shop": {
			name:        "shop",
			description: "Show catalog and cart side by side",
			run:         runShop,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: storefront <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(os.Stdout, "  %-14s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
