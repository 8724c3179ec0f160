package state

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/Paintersrp/marknote/internal/config"
	"github.com/Paintersrp/marknote/internal/constants"
	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/logging"
)

type State struct {
	Config        *config.Config
	Workspace     *config.Workspace
	WorkspaceName string
	Handler       *handler.FileHandler
	Home          string
	Vault         string
	Logger        *slog.Logger

	watcher   *VaultWatcher
	logCloser io.Closer
}

func NewState(workspaceOverride string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	if workspaceOverride != "" {
		if err := cfg.ActivateWorkspace(workspaceOverride); err != nil {
			return nil, err
		}
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return nil, err
	}

	level := logging.LevelFromFlags(
		viper.GetBool("verbose"),
		false,
		logging.ParseLevel(os.Getenv(constants.LogLevelEnv)),
	)
	logger, closer, err := logging.Setup(config.GetLogPath(home), level)
	if err != nil {
		logger, closer = logging.Discard(), nil
	}

	logger.Debug("state loaded", "workspace", cfg.CurrentWorkspace, "vault", ws.VaultDir)

	return &State{
		Config:        cfg,
		Workspace:     ws,
		WorkspaceName: cfg.CurrentWorkspace,
		Handler:       handler.NewFileHandler(ws.VaultDir),
		Home:          home,
		Vault:         ws.VaultDir,
		Logger:        logger,
		logCloser:     closer,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	_ = viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}

// Watcher starts the vault watcher on first use.
func (s *State) Watcher() (*VaultWatcher, error) {
	if s.watcher != nil {
		return s.watcher, nil
	}

	w, err := NewVaultWatcher(s.Vault)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault watcher: %w", err)
	}
	w.OnChange(func(rel string) {
		s.Logger.Debug("vault change", "path", rel)
	})
	s.watcher = w
	return w, nil
}

// Close releases the vault watcher and the log file.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.watcher = nil
	}
	if s.logCloser != nil {
		if err := s.logCloser.Close(); err != nil {
			errs = append(errs, err)
		}
		s.logCloser = nil
	}

	return errors.Join(errs...)
}
