package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/adamwoolhether/crmtext"
	"github.com/adamwoolhether/crmtext/client"
)

const envPrefix = "CRMTEXT"

var errUnknownOutput = errors.New("unknown output format")

// config is the resolved CLI configuration.
type config struct {
	Endpoint string
	Token    string
	Username string
	Password string
	Keyword  string
	Timeout  time.Duration
	Output   string
	Verbose  bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("endpoint", crmtext.DefaultEndpoint)
	v.SetDefault("timeout", client.DefaultTimeout)
	v.SetDefault("output", "xml")

	return v
}

// loadEnv loads the given dotenv files, skipping the ones that don't exist.
// Variables already set in the environment win.
func loadEnv(files ...string) error {
	for _, file := range files {
		if strings.HasPrefix(file, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			file = strings.Replace(file, "~", home, 1)
		}

		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading env file[%s]: %w", file, err)
		}
	}

	return nil
}

// loadConfig reads the optional config file into v and resolves the settings.
func loadConfig(v *viper.Viper) (config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := config{
		Endpoint: v.GetString("endpoint"),
		Token:    v.GetString("token"),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
		Keyword:  v.GetString("keyword"),
		Timeout:  v.GetDuration("timeout"),
		Output:   strings.ToLower(v.GetString("output")),
		Verbose:  v.GetBool("verbose"),
	}

	switch cfg.Output {
	case "xml", "json", "yaml":
	default:
		return config{}, fmt.Errorf("%w: %q", errUnknownOutput, cfg.Output)
	}

	return cfg, nil
}

func (cfg config) logger() *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (cfg config) connect(logger *slog.Logger) (*crmtext.Conn, error) {
	return crmtext.Connect(
		crmtext.WithAuthToken(cfg.Token),
		crmtext.WithCredentials(cfg.Username, cfg.Password, cfg.Keyword),
		crmtext.WithEndpoint(cfg.Endpoint),
		crmtext.WithLogger(logger),
		crmtext.WithClientOptions(
			client.WithTimeout(cfg.Timeout),
			client.WithUserAgent("crmtext-cli/"+client.Version),
		),
	)
}
