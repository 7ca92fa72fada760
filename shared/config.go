package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                   // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                  // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "../dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "../dev/secrets.dev.jsonc" // Path to config.json in development environment
)

type Config struct {
	Secrets     Secrets    `json:"-"`
	LogFile     string     `json:"log_file"`
	LogLevel    string     `json:"log_level"`
	ServicePort uint       `json:"service_port"`
	DbDir       string     `json:"db_dir"`
	Owner       string     `json:"owner"`
	Automation  Automation `json:"automation"`
}

// Automation holds the decision loop's thresholds and hourly/daily budgets.
type Automation struct {
	Enabled             bool `json:"enabled"`               // When false, only the API surface runs
	DaysLimit           int  `json:"days_limit"`            // Follow requests older than this get resolved
	MutualLimit         int  `json:"mutual_limit"`          // Minimum mutual connections before we follow someone
	UpdateDaysLimit     int  `json:"update_days_limit"`     // Profile snapshots older than this get refreshed
	ViewsPerHour        int  `json:"views_per_hour"`        // Profile visits per hour
	InteractionsPerHour int  `json:"interactions_per_hour"` // Follows + unfollows per hour
	InteractionsPerDay  int  `json:"interactions_per_day"`  // Follows + unfollows per day
	LoginsPerDay        int  `json:"logins_per_day"`        // Fresh logins per day
	LoopPauseSec        int  `json:"loop_pause_sec"`        // Pause between automation cycles
	ActionPauseMinMs    int  `json:"action_pause_min_ms"`   // Shortest pause between visible actions
	ActionPauseMaxMs    int  `json:"action_pause_max_ms"`   // Longest pause; zero disables pausing
}

type Secrets struct {
	SessionId   string   `json:"ig_session_id"`
	CsrfToken   string   `json:"ig_csrf_token"`
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
