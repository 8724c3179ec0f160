/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package initialize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/marknote/internal/config"
	"github.com/Paintersrp/marknote/internal/state"
)

// askVault prompts for the vault directory. Tests replace it.
var askVault = func() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("a vault directory argument is required")
	}
	input := textinput.New("Where should your notes live?")
	input.Placeholder = "~/notes"
	return input.RunPrompt()
}

func NewCmdInit(s *state.State) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "init [vault]",
		Aliases: []string{"i", "initialize"},
		Short:   "Set up marknote with a vault directory.",
		Long: heredoc.Doc(`
			Writes the marknote config file and points the active workspace
			at a vault directory, creating the directory when needed. With
			--name the vault is added as a new workspace and made current.
			Without an argument the vault is asked for.
		`),
		Example: heredoc.Doc(`
			marknote init ~/notes
			marknote init ~/work-notes --name work
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vault := ""
			if len(args) == 1 {
				vault = args[0]
			} else {
				answer, err := askVault()
				if err != nil {
					return err
				}
				vault = answer
			}
			return run(cmd, s, vault, name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Add the vault as a new named workspace.")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, vault, name string) error {
	home := s.Home
	if home == "" {
		var err error
		if home, err = state.GetHomeDir(); err != nil {
			return err
		}
	}

	vault, err := expandVault(home, vault)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(vault, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}

	var initErr *config.ConfigInitError
	if err := config.EnsureConfigExists(home); err != nil && !errors.As(err, &initErr) {
		return err
	}

	cfg, err := config.Load(home)
	if err != nil {
		return err
	}

	if name = strings.TrimSpace(name); name != "" {
		if err := cfg.AddWorkspace(name, config.NewWorkspace(vault), true); err != nil {
			return err
		}
	} else if err := cfg.Set("vaultdir", vault); err != nil {
		return err
	}

	fmt.Fprintf(
		cmd.OutOrStdout(),
		"Workspace %q now uses %s\nConfig written to %s\n",
		cfg.CurrentWorkspace,
		vault,
		config.GetConfigPath(home),
	)
	return nil
}

func expandVault(home, vault string) (string, error) {
	vault = strings.TrimSpace(vault)
	if vault == "" {
		return "", errors.New("vault directory cannot be empty")
	}
	if vault == "~" || strings.HasPrefix(vault, "~/") {
		vault = filepath.Join(home, strings.TrimPrefix(vault, "~"))
	}
	return filepath.Abs(vault)
}
