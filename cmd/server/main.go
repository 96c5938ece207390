package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prodinfra/infrademo/internal/server"
	"github.com/prodinfra/infrademo/internal/version"
)

const (
	envPrefix      = "APP"
	configFileName = "config"
	systemConfDir  = "/etc/infrademo"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "server",
		Short:   "Production infrastructure demo server",
		Version: version.Detailed(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}

			// config is valid, usage output is noise from here on
			cmd.SilenceUsage = true

			logs, err := setupLogging(cfg, os.Stdout)
			if err != nil {
				return err
			}
			defer logs.Close()
			slog.SetDefault(logs.Default)

			srv, err := server.New(cfg, logs.App)
			if err != nil {
				return err
			}

			defer slog.Info("Bye!")
			return srv.Start(cmd.Context())
		},
	}

	cmd.SetVersionTemplate(version.DetailedWithApp() + "\n")
	cmd.Flags().SortFlags = false
	cmd.Flags().StringP("bind", "b", server.DefaultAddr, "Address to bind the server")
	cmd.Flags().String("cert", "", "Path to the TLS certificate file")
	cmd.Flags().String("key", "", "Path to the TLS key file")
	cmd.Flags().String("rate-limit", "", "Per-client rate limit, e.g. 100-M (empty disables)")
	cmd.Flags().String("log-file", server.DefaultLogFile, "Append-only log file (empty disables)")
	cmd.Flags().String("log-level", server.DefaultLogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().StringP("config", "f", "", "Config file (yaml or json)")

	return cmd
}

func loadConfig(cmd *cobra.Command, v *viper.Viper) (*server.Config, error) {
	defaults := server.DefaultConfig()
	v.SetDefault("http.addr", defaults.HTTP.Addr)
	v.SetDefault("http.cert_file", defaults.HTTP.CertFile)
	v.SetDefault("http.key_file", defaults.HTTP.KeyFile)
	v.SetDefault("http.rate_limit", defaults.HTTP.RateLimit)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)

	if cmd.Flag("config").Changed {
		configFilePath, _ := cmd.Flags().GetString("config")
		v.SetConfigFile(configFilePath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(systemConfDir)
		v.SetConfigName(configFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		enoent := errors.Is(err, os.ErrNotExist)
		var notFound viper.ConfigFileNotFoundError
		if cmd.Flag("config").Changed || (!enoent && !errors.As(err, &notFound)) {
			return nil, fmt.Errorf("config read '%s': %w", v.ConfigFileUsed(), err)
		}
	}

	for key, flag := range map[string]string{
		"http.addr":       "bind",
		"http.cert_file":  "cert",
		"http.key_file":   "key",
		"http.rate_limit": "rate-limit",
		"log.file":        "log-file",
		"log.level":       "log-level",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// APP_LOG_FILE= must be able to turn the file sink off
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	var cfg server.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	// .env is optional; deployments pass real environment variables
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
