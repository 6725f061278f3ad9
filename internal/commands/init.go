package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/payapp-dev/payapp/internal/config"
	"github.com/payapp-dev/payapp/internal/gitops"
	"github.com/payapp-dev/payapp/internal/header"
	"github.com/payapp-dev/payapp/internal/items"
	"github.com/payapp-dev/payapp/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new pay application workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	// Create directory structure.
	dirs := []string{
		store.DataDir,
		"inbox",
		"exports",
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write payapp.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, ConfigFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write empty default datasets: header files with no data row and
	// a header-only items seed.
	dataDir := filepath.Join(dir, store.DataDir)
	if err := os.WriteFile(filepath.Join(dataDir, store.HeaderFile), []byte(header.Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing header seed: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, store.ItemsSeedFile), []byte(items.Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing items seed: %w", err)
	}

	// Write .gitignore.
	gitignore := "exports/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write inbox/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "inbox", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	// Initialize git and create the initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized pay application workspace at %s (%s)\n", dir, hash)
	return nil
}
