package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Workspace is one vault together with the editor settings used for it.
type Workspace struct {
	VaultDir        string `yaml:"vaultdir"         json:"vault_dir"`
	Preview         bool   `yaml:"preview"          json:"preview"`
	AutosaveSeconds int    `yaml:"autosave_seconds" json:"autosave_seconds"`
	Theme           string `yaml:"theme"            json:"theme"`
	GlamourStyle    string `yaml:"glamour_style"    json:"glamour_style"`
	ExportDir       string `yaml:"export_dir"       json:"export_dir"`
	HistoryLimit    int    `yaml:"history_limit"    json:"history_limit"`
	previewSet      bool   `yaml:"-"`
}

func (ws *Workspace) UnmarshalYAML(value *yaml.Node) error {
	type plain Workspace
	var raw plain
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*ws = Workspace(raw)
	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content); i += 2 {
			if strings.EqualFold(value.Content[i].Value, "preview") {
				ws.previewSet = true
				break
			}
		}
	}
	return nil
}

type Config struct {
	Workspaces       map[string]*Workspace `yaml:"workspaces"        json:"workspaces"`
	CurrentWorkspace string                `yaml:"current_workspace" json:"current_workspace"`

	path   string     `yaml:"-"`
	active *Workspace `yaml:"-"`
}

const (
	defaultWorkspaceName = "default"
	defaultTheme         = "dark"
	defaultGlamourStyle  = "dark"
	defaultExportDir     = "exports"
	defaultHistoryLimit  = 500
)

var ValidThemes = map[string]bool{
	"dark":  true,
	"light": true,
}

var validStyleNames = []string{"ascii", "dark", "dracula", "light", "notty", "auto"}

var ValidGlamourStyles = func() map[string]bool {
	styles := make(map[string]bool, len(validStyleNames))
	for _, name := range validStyleNames {
		styles[name] = true
	}
	return styles
}()

// SettingKeys lists the workspace settings that Set understands.
var SettingKeys = []string{
	"vaultdir",
	"preview",
	"autosave_seconds",
	"theme",
	"glamour_style",
	"export_dir",
	"history_limit",
}

func ValidateGlamourStyle(style string) error {
	if ValidGlamourStyles[style] {
		return nil
	}
	return fmt.Errorf(
		"invalid glamour style: %q. Please choose from %s.",
		style,
		quotedList(validStyleNames),
	)
}

func quotedList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

func NewWorkspace(vaultDir string) *Workspace {
	ws := &Workspace{VaultDir: vaultDir}
	ws.ensureDefaults()
	return ws
}

func (ws *Workspace) ensureDefaults() {
	if !ws.previewSet && !ws.Preview {
		ws.Preview = true
		ws.previewSet = true
	}
	if ws.Theme == "" {
		ws.Theme = defaultTheme
	}
	if ws.GlamourStyle == "" {
		ws.GlamourStyle = defaultGlamourStyle
	}
	if ws.ExportDir == "" {
		ws.ExportDir = defaultExportDir
	}
	if ws.HistoryLimit == 0 {
		ws.HistoryLimit = defaultHistoryLimit
	}
	if ws.AutosaveSeconds < 0 {
		ws.AutosaveSeconds = 0
	}
}

func (ws *Workspace) validate() error {
	if !ValidThemes[ws.Theme] {
		return fmt.Errorf("invalid theme: %q. Please choose from 'dark' or 'light'.", ws.Theme)
	}
	return ValidateGlamourStyle(ws.GlamourStyle)
}

// Load reads the config file under home. An empty file yields a default
// workspace with no vault configured.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.path = path

	if err := cfg.ensureInitialized(); err != nil {
		return nil, err
	}

	for name, ws := range cfg.Workspaces {
		if err := ws.validate(); err != nil {
			return nil, fmt.Errorf("workspace %q: %w", name, err)
		}
	}

	return cfg, nil
}

func (cfg *Config) ensureInitialized() error {
	if cfg.Workspaces == nil {
		cfg.Workspaces = make(map[string]*Workspace)
	}

	if cfg.CurrentWorkspace == "" {
		if len(cfg.Workspaces) == 0 {
			cfg.Workspaces[defaultWorkspaceName] = NewWorkspace("")
			cfg.CurrentWorkspace = defaultWorkspaceName
		} else {
			cfg.CurrentWorkspace = cfg.WorkspaceNames()[0]
		}
	}

	return cfg.setActiveWorkspace(cfg.CurrentWorkspace)
}

func (cfg *Config) setActiveWorkspace(name string) error {
	if name == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}
	ws, ok := cfg.Workspaces[name]
	if !ok {
		return fmt.Errorf("workspace %q does not exist", name)
	}
	if ws == nil {
		ws = NewWorkspace("")
		cfg.Workspaces[name] = ws
	}

	ws.ensureDefaults()
	cfg.CurrentWorkspace = name
	cfg.active = ws

	syncWorkspaceWithViper(ws)

	return nil
}

func syncWorkspaceWithViper(ws *Workspace) {
	viper.Set("vaultdir", ws.VaultDir)
	viper.Set("preview", ws.Preview)
	viper.Set("autosave_seconds", ws.AutosaveSeconds)
	viper.Set("theme", ws.Theme)
	viper.Set("glamour_style", ws.GlamourStyle)
	viper.Set("export_dir", ws.ExportDir)
	viper.Set("history_limit", ws.HistoryLimit)
}

func (cfg *Config) ActiveWorkspace() (*Workspace, error) {
	if cfg.active != nil {
		return cfg.active, nil
	}

	if cfg.CurrentWorkspace == "" {
		return nil, fmt.Errorf("no workspace is currently selected")
	}

	if err := cfg.setActiveWorkspace(cfg.CurrentWorkspace); err != nil {
		return nil, err
	}

	return cfg.active, nil
}

func (cfg *Config) MustWorkspace() *Workspace {
	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		panic(err)
	}
	return ws
}

func (cfg *Config) WorkspaceNames() []string {
	names := make([]string, 0, len(cfg.Workspaces))
	for name := range cfg.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (cfg *Config) ActivateWorkspace(name string) error {
	return cfg.setActiveWorkspace(name)
}

func (cfg *Config) SwitchWorkspace(name string) error {
	if err := cfg.setActiveWorkspace(name); err != nil {
		return err
	}
	return cfg.Save()
}

func (cfg *Config) AddWorkspace(name string, ws *Workspace, makeCurrent bool) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}

	if cfg.Workspaces == nil {
		cfg.Workspaces = make(map[string]*Workspace)
	}

	if existing, exists := cfg.Workspaces[trimmed]; exists && existing != nil && existing.VaultDir != "" {
		return fmt.Errorf("workspace %q already exists", trimmed)
	}

	if ws == nil {
		ws = NewWorkspace("")
	}
	ws.ensureDefaults()
	cfg.Workspaces[trimmed] = ws

	if cfg.CurrentWorkspace == "" || cfg.CurrentWorkspace == trimmed || makeCurrent {
		if err := cfg.setActiveWorkspace(trimmed); err != nil {
			return err
		}
	}

	return cfg.Save()
}

// Set updates one setting on the active workspace and saves the file.
func (cfg *Config) Set(key, value string) error {
	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return err
	}

	next := *ws
	value = strings.TrimSpace(value)
	switch strings.ToLower(key) {
	case "vaultdir", "vault":
		if value == "" {
			return fmt.Errorf("vaultdir cannot be empty")
		}
		next.VaultDir = value
	case "preview":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("preview must be true or false: %w", err)
		}
		next.Preview = b
	case "autosave_seconds", "autosave":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("autosave_seconds must be a non-negative integer, got %q", value)
		}
		next.AutosaveSeconds = n
	case "theme":
		next.Theme = value
	case "glamour_style", "style":
		next.GlamourStyle = value
	case "export_dir":
		if value == "" {
			return fmt.Errorf("export_dir cannot be empty")
		}
		next.ExportDir = value
	case "history_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("history_limit must be an integer, got %q", value)
		}
		next.HistoryLimit = n
	default:
		return fmt.Errorf("unknown setting %q: expected one of %s", key, strings.Join(SettingKeys, ", "))
	}

	if err := next.validate(); err != nil {
		return err
	}

	*ws = next
	syncWorkspaceWithViper(ws)
	return cfg.Save()
}

// Get returns the string form of one setting on the active workspace.
func (cfg *Config) Get(key string) (string, error) {
	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return "", err
	}

	switch strings.ToLower(key) {
	case "vaultdir", "vault":
		return ws.VaultDir, nil
	case "preview":
		return strconv.FormatBool(ws.Preview), nil
	case "autosave_seconds", "autosave":
		return strconv.Itoa(ws.AutosaveSeconds), nil
	case "theme":
		return ws.Theme, nil
	case "glamour_style", "style":
		return ws.GlamourStyle, nil
	case "export_dir":
		return ws.ExportDir, nil
	case "history_limit":
		return strconv.Itoa(ws.HistoryLimit), nil
	}
	return "", fmt.Errorf("unknown setting %q: expected one of %s", key, strings.Join(SettingKeys, ", "))
}

func (cfg *Config) Save() error {
	path := cfg.path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		path = GetConfigPath(home)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
