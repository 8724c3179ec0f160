package config

// ConfigInitError reports a config file that exists but is not usable yet.
// Commands treat it as a prompt to run "marknote init".
type ConfigInitError struct {
	msg string
}

func (e *ConfigInitError) Error() string {
	return e.msg
}
