package main

import (
	"fmt"
	"os"

	"github.com/iabdulin/pr-access-control/entity"
	"github.com/iabdulin/pr-access-control/gateway"
	"github.com/iabdulin/pr-access-control/repo"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the daemon configuration, loaded once per process
// lifetime from a YAML file and the environment.
type Config struct {
	Addr     string `yaml:"addr" env:"BOT_ADDR" env-default:":8080"`
	LogLevel string `yaml:"log_level" env:"BOT_LOG_LEVEL" env-default:"info"`

	WebhookSecret string `yaml:"webhook_secret" env:"WEBHOOK_SECRET" env-required:"true"`

	AppID          int64  `yaml:"app_id" env:"GITHUB_APP_ID" env-required:"true"`
	PrivateKeyPath string `yaml:"private_key_path" env:"GITHUB_APP_PRIVATE_KEY" env-required:"true"`

	MergeMethod string `yaml:"merge_method" env:"MERGE_METHOD" env-default:"squash"`

	// Repos restricts the bot to the listed owner/name repositories.
	// Empty means every repository the installation grants.
	Repos []string `yaml:"repos" env:"BOT_REPOS"`

	TeamAName string   `yaml:"team_a_name" env:"TEAM_A_NAME" env-default:"Team A"`
	TeamA     []string `yaml:"team_a" env:"TEAM_A" env-required:"true"`
	TeamBName string   `yaml:"team_b_name" env:"TEAM_B_NAME" env-default:"Team B"`
	TeamB     []string `yaml:"team_b" env:"TEAM_B" env-required:"true"`
}

// Load reads the configuration. A .env file is honored if present;
// path may be empty to read the environment only.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	cfg := &Config{}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %v: %v", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %v", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.WebhookSecret == "" {
		return fmt.Errorf("webhook secret must be set")
	}

	switch gateway.MergeMethod(c.MergeMethod) {
	case gateway.MergeSquash, gateway.MergeMerge, gateway.MergeRebase:
	default:
		return fmt.Errorf(
			"merge method must be one of squash, merge, rebase; got %q", c.MergeMethod)
	}

	if len(c.TeamA) == 0 {
		return fmt.Errorf("roster %q has no members", c.TeamAName)
	}
	if len(c.TeamB) == 0 {
		return fmt.Errorf("roster %q has no members", c.TeamBName)
	}
	return nil
}

// AllowedRepos parses the configured repository allowlist.
func (c *Config) AllowedRepos() ([]*entity.Repo, error) {
	repos := make([]*entity.Repo, 0, len(c.Repos))
	for _, value := range c.Repos {
		r, err := repo.Parse(value)
		if err != nil {
			return nil, err
		}
		repos = append(repos, r)
	}
	return repos, nil
}

// TeamARoster returns the first configured roster.
func (c *Config) TeamARoster() entity.Roster {
	return entity.Roster{Name: c.TeamAName, Members: c.TeamA}
}

// TeamBRoster returns the second configured roster.
func (c *Config) TeamBRoster() entity.Roster {
	return entity.Roster{Name: c.TeamBName, Members: c.TeamB}
}
