// Package config loads the client's settings from a YAML file, environment
// variables, and defaults, using viper the way the teacher's cmd/root.go
// wires it: SetDefault per field, a config-file search path, and an
// INFER_-style env prefix (TG_ here).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	gotenv "github.com/subosito/gotenv"

	"github.com/paul-nameless/tg/internal/fmtutil"
	"github.com/paul-nameless/tg/internal/logger"
)

// Config is the full set of client settings from spec §6, plus the
// ambient logging/cache knobs this implementation adds.
type Config struct {
	APIID  int32
	APIHash string
	Phone   string
	EncKey  string

	// BotToken authenticates the illustrative go-telegram/bot binding
	// (internal/mp/telegram). A real TDLib binding would use
	// APIID/APIHash/Phone instead; this client ships the Bot API
	// adapter, so BotToken is what Login actually consumes.
	BotToken string

	FilesDir    string
	DownloadDir string
	LogPath     string
	LogLevel    string

	MaxDownloadSize int64 // bytes, parsed from a human size string

	VoiceRecordCmd string
	LongMsgCmd     string
	Editor         string
	DefaultOpen    string
	CopyCmd        string
	NotifyCmd      string
	IconPath       string
	URLView        string
	FZF            string
	FilePickerCmd  string
	ViewTextCmd    string

	UsersColors []string
	KeepMedia   bool

	ChatFlags string
	MsgFlags  string

	TDLibVerbosity int
	TDLibPath      string

	RedisAddr string
	RedisDB   int
}

// Load builds a *viper.Viper bound to defaults, a config file (if any is
// found on the search path), and TG_-prefixed environment variables, then
// decodes it into a Config.
func Load(configPath string) (*Config, error) {
	loadDotEnv()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tg")
	}
	v.SetEnvPrefix("TG")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
		logger.Debug("config: no config file found, using defaults and env")
	}

	cfg := &Config{
		APIID:           int32(v.GetInt("api_id")),
		APIHash:         v.GetString("api_hash"),
		Phone:           v.GetString("phone"),
		EncKey:          v.GetString("enc_key"),
		BotToken:        v.GetString("bot_token"),
		FilesDir:        v.GetString("files_dir"),
		DownloadDir:     v.GetString("download_dir"),
		LogPath:         v.GetString("log_path"),
		LogLevel:        v.GetString("log_level"),
		VoiceRecordCmd:  v.GetString("voice_record_cmd"),
		LongMsgCmd:      v.GetString("long_msg_cmd"),
		Editor:          v.GetString("editor"),
		DefaultOpen:     v.GetString("default_open"),
		CopyCmd:         v.GetString("copy_cmd"),
		NotifyCmd:       v.GetString("notify_cmd"),
		IconPath:        v.GetString("icon_path"),
		URLView:         v.GetString("url_view"),
		FZF:             v.GetString("fzf"),
		FilePickerCmd:   v.GetString("file_picker_cmd"),
		ViewTextCmd:     v.GetString("view_text_cmd"),
		UsersColors:     v.GetStringSlice("users_colors"),
		KeepMedia:       v.GetBool("keep_media"),
		ChatFlags:       v.GetString("chat_flags"),
		MsgFlags:        v.GetString("msg_flags"),
		TDLibVerbosity:  v.GetInt("tdlib_verbosity"),
		TDLibPath:       v.GetString("tdlib_path"),
		RedisAddr:       v.GetString("redis_addr"),
		RedisDB:         v.GetInt("redis_db"),
	}

	size, err := fmtutil.ParseSize(v.GetString("max_download_size"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid max_download_size: %w", err)
	}
	cfg.MaxDownloadSize = size

	return cfg, nil
}

// loadDotEnv loads a .env file from the working directory, if present,
// into the process environment before viper's AutomaticEnv reads it —
// the same "read a local .env, log what was loaded" pattern as the
// teacher's agent manager uses gotenv for.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return
	}
	env, err := gotenv.Read(path)
	if err != nil {
		logger.Debug("config: failed to read .env file", "path", path, "error", err)
		return
	}
	for k, v := range env {
		if _, set := os.LookupEnv(k); !set {
			os.Setenv(k, v)
		}
	}
	logger.Debug("config: loaded .env file", "path", path, "vars", len(env))
}

func setDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()

	v.SetDefault("files_dir", filepath.Join(home, ".cache", "tg"))
	v.SetDefault("download_dir", filepath.Join(home, "Downloads"))
	v.SetDefault("log_path", filepath.Join(home, ".cache", "tg", "tg.log"))
	v.SetDefault("log_level", "info")
	v.SetDefault("max_download_size", "10MB")
	v.SetDefault("editor", envOr("EDITOR", "vi"))
	v.SetDefault("default_open", "xdg-open %s")
	v.SetDefault("view_text_cmd", "less %s")
	v.SetDefault("users_colors", []string{"1", "2", "3", "4", "5", "6", "9", "10", "11", "12", "13", "14"})
	v.SetDefault("keep_media", true)
	v.SetDefault("chat_flags", "🔇📌")
	v.SetDefault("msg_flags", "✓✓✓")
	v.SetDefault("tdlib_verbosity", 1)
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_db", 0)
}

// GetLogDir implements logger.ConfigProvider.
func (c *Config) GetLogDir() string {
	return filepath.Dir(c.LogPath)
}

// IsDebugMode implements logger.ConfigProvider.
func (c *Config) IsDebugMode() bool {
	return c.LogLevel == "debug"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
