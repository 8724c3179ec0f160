package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.marknote/`
	LogFile        = `marknote.log`
	LogLevelEnv    = `MARKNOTE_LOG_LEVEL`
	NoteExt        = `.md`
)
