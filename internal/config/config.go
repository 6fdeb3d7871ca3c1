package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Transcription
	ASR
	PostgreSQL
	S3
	HTTP
}

// App configures the inbox pipeline. An empty WatchDirectory disables it.
type App struct {
	WatchDirectory        string
	ReportsDirectory      string
	DirectoryScanInterval time.Duration
}

type Transcription struct {
	KeywordsPath  string
	MaxFileSizeMB int64
	FFmpegBinary  string
}

type ASR struct {
	Endpoint string
	APIKey   string
	Model    string
	Language string
	Timeout  time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// S3 configures the raw audio archive. An empty Bucket disables it.
type S3 struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Prefix          string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Dashboard struct {
	HTTP
	BackendURL     string
	HealthTimeout  time.Duration
	RequestTimeout time.Duration
}

type Image struct {
	Layout         string
	ContextDir     string
	BaseImage      string
	SystemPackages []string
	Publish        string
	Export         string
	HistoryPath    string
	CheckBaseImage bool
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			WatchDirectory:        cmd.String("watch-dir"),
			ReportsDirectory:      cmd.String("reports-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
		},
		Transcription: Transcription{
			KeywordsPath:  cmd.String("keywords-path"),
			MaxFileSizeMB: cmd.Int64("max-file-size-mb"),
			FFmpegBinary:  cmd.String("ffmpeg"),
		},
		ASR: ASR{
			Endpoint: cmd.String("asr-endpoint"),
			APIKey:   cmd.String("asr-api-key"),
			Model:    cmd.String("asr-model"),
			Language: cmd.String("asr-language"),
			Timeout:  cmd.Duration("asr-timeout"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		S3: S3{
			Endpoint:        cmd.String("s3-endpoint"),
			Region:          cmd.String("s3-region"),
			AccessKeyID:     cmd.String("s3-access-key-id"),
			SecretAccessKey: cmd.String("s3-secret-access-key"),
			Bucket:          cmd.String("s3-bucket"),
			Prefix:          cmd.String("s3-prefix"),
		},
		HTTP: loadHTTP(cmd),
	}
}

func LoadDashboard(cmd *cli.Command) *Dashboard {
	return &Dashboard{
		HTTP:           loadHTTP(cmd),
		BackendURL:     cmd.String("backend-url"),
		HealthTimeout:  cmd.Duration("health-timeout"),
		RequestTimeout: cmd.Duration("request-timeout"),
	}
}

func LoadImage(cmd *cli.Command) *Image {
	return &Image{
		Layout:         cmd.String("layout"),
		ContextDir:     cmd.String("context"),
		BaseImage:      cmd.String("base-image"),
		SystemPackages: cmd.StringSlice("system-package"),
		Publish:        cmd.String("publish"),
		Export:         cmd.String("export"),
		HistoryPath:    cmd.String("history"),
		CheckBaseImage: cmd.Bool("check-base-image"),
	}
}

func loadHTTP(cmd *cli.Command) HTTP {
	return HTTP{
		Host:         cmd.String("http-host"),
		Port:         cmd.String("http-port"),
		IdleTimeout:  cmd.Duration("http-idle-timeout"),
		ReadTimeout:  cmd.Duration("http-read-timeout"),
		WriteTimeout: cmd.Duration("http-write-timeout"),
	}
}
