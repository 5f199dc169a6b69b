package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/listwarden/models"
)

// Store backend names
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

const (
	DefaultDataDir      = "/app/data"
	DefaultPrefix       = "!"
	DefaultPollDuration = 10 * time.Minute
	DefaultHTTPAddr     = ":3318"
)

type Config struct {
	Token   string
	OwnerID string
	Prefix  string

	DataDir      string
	StoreBackend string
	DatabaseURL  string
	RedisURL     string
	SeedLists    bool

	PollDuration time.Duration
	HTTPAddr     string
	LogLevel     string
	LogFormat    string

	ConfigFile         string
	Catalog            models.Catalog
	KickWhitelistUsers []string
	KickWhitelistRoles []string
}

// FileConfig is the optional YAML file named by -config or LISTS_CONFIG.
type FileConfig struct {
	OwnerID       string           `yaml:"owner_id"`
	Lists         []models.ListDef `yaml:"lists"`
	KickWhitelist struct {
		Users []string `yaml:"users"`
		Roles []string `yaml:"roles"`
	} `yaml:"kick_whitelist"`
}

// ParseFlags reads flags, then environment variables, then the optional
// YAML file, then defaults. Earlier sources win.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var seed, users, roles, pollDuration string

	fs := flag.NewFlagSet("listwarden", flag.ContinueOnError)

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.Token, "token", "", "Discord bot token (prefer env)")
	fs.StringVar(&cfg.OwnerID, "owner", "", "Owner user ID")

	fs.StringVar(&cfg.Prefix, "prefix", "", "Command prefix")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Directory holding lists.json")
	fs.StringVar(&cfg.StoreBackend, "store", "", "Store backend (file, sqlite, postgres, redis)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite/postgres backends")
	fs.StringVar(&cfg.RedisURL, "redis-url", "", "Redis URL for the redis backend")
	fs.StringVar(&seed, "seed", "", "Seed lists from the bundled dataset when empty (true/false)")
	fs.StringVar(&pollDuration, "poll-duration", "", "Vote window, e.g. 10m")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", "", "Health and metrics listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text, json)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML file with lists and kick whitelist")
	fs.StringVar(&users, "kick-whitelist-users", "", "Comma separated user IDs that can never be kicked")
	fs.StringVar(&roles, "kick-whitelist-roles", "", "Comma separated role IDs that can never be kicked")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	fallback(&cfg.Token, "DISCORD_TOKEN")
	fallback(&cfg.OwnerID, "OWNER_ID")
	fallback(&cfg.Prefix, "COMMAND_PREFIX")
	fallback(&cfg.DataDir, "DATA_DIR")
	fallback(&cfg.StoreBackend, "STORE_BACKEND")
	fallback(&cfg.DatabaseURL, "DATABASE_URL")
	fallback(&cfg.RedisURL, "REDIS_URL")
	fallback(&seed, "SEED_LISTS")
	fallback(&pollDuration, "POLL_DURATION")
	fallback(&cfg.HTTPAddr, "HTTP_ADDR")
	fallback(&cfg.LogLevel, "LOG_LEVEL")
	fallback(&cfg.LogFormat, "LOG_FORMAT")
	fallback(&cfg.ConfigFile, "LISTS_CONFIG")
	fallback(&users, "KICK_WHITELIST_USER_IDS")
	fallback(&roles, "KICK_WHITELIST_ROLE_IDS")

	cfg.SeedLists = seed == "true"
	cfg.KickWhitelistUsers = splitIDs(users)
	cfg.KickWhitelistRoles = splitIDs(roles)

	if cfg.ConfigFile != "" {
		fc, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		if cfg.OwnerID == "" {
			cfg.OwnerID = fc.OwnerID
		}
		if len(fc.Lists) > 0 {
			cfg.Catalog = fc.Lists
		}
		if users == "" {
			cfg.KickWhitelistUsers = fc.KickWhitelist.Users
		}
		if roles == "" {
			cfg.KickWhitelistRoles = fc.KickWhitelist.Roles
		}
	}

	// Defaults
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = BackendFile
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = DefaultHTTPAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = models.DefaultCatalog()
	}

	cfg.PollDuration = DefaultPollDuration
	if pollDuration != "" {
		d, err := time.ParseDuration(pollDuration)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid POLL_DURATION")
		}
		cfg.PollDuration = d
	}

	// Secrets - MUST be provided
	if cfg.Token == "" {
		return Config{}, errors.New("DISCORD_TOKEN required")
	}
	if !isSnowflake(cfg.OwnerID) {
		return Config{}, errors.New("missing or invalid OWNER_ID")
	}

	if err := ValidateStore(cfg); err != nil {
		return Config{}, err
	}

	catalog, err := CleanCatalog(cfg.Catalog)
	if err != nil {
		return Config{}, err
	}
	cfg.Catalog = catalog

	return cfg, nil
}

// ValidateStore checks the backend name and the settings it needs.
func ValidateStore(cfg Config) error {
	switch cfg.StoreBackend {
	case BackendFile, BackendSQLite:
		return nil
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return errors.New("database URL required for postgres backend (use -d or DATABASE_URL env)")
		}
		return nil
	case BackendRedis:
		if cfg.RedisURL == "" {
			return errors.New("REDIS_URL required for redis backend")
		}
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// LoadFile reads the YAML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

// CleanCatalog lower-cases and trims list names and rejects empty or
// duplicate entries.
func CleanCatalog(in models.Catalog) (models.Catalog, error) {
	out := make(models.Catalog, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, def := range in {
		name := strings.ToLower(strings.TrimSpace(def.Name))
		if name == "" {
			return nil, errors.New("list name cannot be empty")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate list name %q", name)
		}
		emoji := strings.TrimSpace(def.Emoji)
		if emoji == "" {
			emoji = models.DefaultEmoji
		}
		seen[name] = true
		out = append(out, models.ListDef{Name: name, Emoji: emoji})
	}
	return out, nil
}

func fallback(dst *string, env string) {
	if *dst == "" {
		*dst = os.Getenv(env)
	}
}

func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func isSnowflake(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}
