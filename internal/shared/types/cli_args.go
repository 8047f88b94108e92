package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	EnvFile    string
	LogFormat  string
	Addr       string
	RunNow     bool
	Date       string
	Preset     string
	From       string
	To         string
	Kinds      []string
	Formats    []string
	Dir        string
}
