package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".qqbot"
	envPrefix  = "QQBOT"

	logLevelKey       = "log_level"
	dataDirKey        = "data_dir"
	sessionsPathKey   = "sessions.path"
	secretsPathKey    = "secrets.path"
	httpIPKey         = "http_server.ip"
	httpPortKey       = "http_server.port"
	httpCNameKey      = "http_server.cname"
	emailAccountKey   = "email.account"
	emailNameKey      = "email.name"
	emailSMTPKey      = "email.smtp_addr"
	emailIMAPKey      = "email.imap_addr"
	emailPasswordKey  = "email.password"
	emailPasswordRef  = "email.password_ref"
	metricsListenKey  = "metrics.listen"
	pollQueueSizeKey  = "poll.queue_size"
	defaultHTTPPort   = 8080
	defaultQueueSize  = 64
	defaultEmailName  = "QQBot"
	defaultLogLevel   = "info"
	sessionsDirectory = "sessions"
	secretsDirectory  = "secrets"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	LogLevel     slog.Level
	DataDir      string
	SessionsPath string
	SecretsPath  string
	HTTPServer   HTTPServer
	Email        Email
	// MetricsListen is empty when the metrics endpoint is disabled.
	MetricsListen string
	QueueSize     int
}

// HTTPServer is set when QR codes should be served over HTTP.
type HTTPServer struct {
	IP    string
	Port  int
	CName string
}

func (h HTTPServer) Enabled() bool {
	return h.IP != ""
}

func (h HTTPServer) Addr() string {
	return net.JoinHostPort(h.IP, strconv.Itoa(h.Port))
}

// Email is set when QR codes should be mailed. Password wins over
// PasswordRef, which names a secret store key.
type Email struct {
	Account     string
	Name        string
	SMTPAddr    string
	IMAPAddr    string
	Password    string
	PasswordRef string
}

func (e Email) Enabled() bool {
	return e.Account != "" && e.SMTPAddr != ""
}

// Load reads ~/.qqbot/config.toml when present and QQBOT_* environment
// variables, which take precedence.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(dataDirKey, filepath.Join(homeDir, configDir))
	v.SetDefault(httpPortKey, defaultHTTPPort)
	v.SetDefault(emailNameKey, defaultEmailName)
	v.SetDefault(pollQueueSizeKey, defaultQueueSize)
	for _, key := range []string{
		sessionsPathKey, secretsPathKey, httpIPKey, httpCNameKey,
		emailAccountKey, emailSMTPKey, emailIMAPKey, emailPasswordKey, emailPasswordRef,
		metricsListenKey,
	} {
		v.SetDefault(key, "")
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	level, err := ParseLevel(v.GetString(logLevelKey))
	if err != nil {
		return Config{}, err
	}

	dataDir, err := normalizePath(homeDir, v.GetString(dataDirKey))
	if err != nil {
		return Config{}, err
	}

	sessionsPath := v.GetString(sessionsPathKey)
	if sessionsPath == "" {
		sessionsPath = filepath.Join(dataDir, sessionsDirectory)
	}
	if sessionsPath, err = normalizePath(homeDir, sessionsPath); err != nil {
		return Config{}, err
	}

	secretsPath := v.GetString(secretsPathKey)
	if secretsPath == "" {
		secretsPath = filepath.Join(dataDir, secretsDirectory)
	}
	if secretsPath, err = normalizePath(homeDir, secretsPath); err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogLevel:     level,
		DataDir:      dataDir,
		SessionsPath: sessionsPath,
		SecretsPath:  secretsPath,
		HTTPServer: HTTPServer{
			IP:    v.GetString(httpIPKey),
			Port:  v.GetInt(httpPortKey),
			CName: v.GetString(httpCNameKey),
		},
		Email: Email{
			Account:     v.GetString(emailAccountKey),
			Name:        v.GetString(emailNameKey),
			SMTPAddr:    v.GetString(emailSMTPKey),
			IMAPAddr:    v.GetString(emailIMAPKey),
			Password:    v.GetString(emailPasswordKey),
			PasswordRef: v.GetString(emailPasswordRef),
		},
		MetricsListen: v.GetString(metricsListenKey),
		QueueSize:     v.GetInt(pollQueueSizeKey),
	}
	if cfg.HTTPServer.CName == "" {
		cfg.HTTPServer.CName = cfg.HTTPServer.IP
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.HTTPServer.Enabled() && (c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535) {
		return fmt.Errorf("%w: %s %d out of range", ErrInvalidConfig, httpPortKey, c.HTTPServer.Port)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, pollQueueSizeKey)
	}
	if c.Email.Account != "" && c.Email.SMTPAddr == "" {
		return fmt.Errorf("%w: %s is required with %s", ErrInvalidConfig, emailSMTPKey, emailAccountKey)
	}
	return nil
}

func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidConfig, logLevelKey, raw)
	}
}

func normalizePath(homeDir, path string) (string, error) {
	if path == "~" {
		path = homeDir
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}

	return filepath.Clean(absPath), nil
}
