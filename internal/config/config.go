// Package config loads the runner configuration. Environment variables
// override the JSON file, which overrides the defaults.
package config

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "GODICOM"

	DefaultMaxGoroutines = 50
	DefaultDriver        = "sqlserver"
	DefaultListenAddress = "127.0.0.1:8000"
	DefaultLocalAET      = "GODICOM"
)

type Config struct {
	MaxGoroutines int    `mapstructure:"max_goroutines"`
	RootDirectory string `mapstructure:"root_directory"`
	ConnString    string `mapstructure:"connString"`
	// Driver is the database/sql driver name, sqlserver or sqlite3.
	Driver string `mapstructure:"driver"`
	// InstituteFilter lists accepted institution names separated by "|".
	InstituteFilter string `mapstructure:"institute_filter"`
	ListenAddress   string `mapstructure:"listen_address"`
	LogDir          string `mapstructure:"log_dir"`
	Verbose         bool   `mapstructure:"verbose"`

	// Accepted files are forwarded with C-STORE when DicomServer is set.
	DicomServer          string `mapstructure:"dicom_server"`
	DicomServerPort      int    `mapstructure:"dicom_server_port"`
	DicomServerLocalAET  string `mapstructure:"dicom_server_local_aet"`
	DicomServerRemoteAET string `mapstructure:"dicom_server_remote_aet"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max_goroutines", DefaultMaxGoroutines)
	v.SetDefault("root_directory", ".")
	v.SetDefault("connString", "")
	v.SetDefault("driver", DefaultDriver)
	v.SetDefault("institute_filter", "")
	v.SetDefault("listen_address", DefaultListenAddress)
	v.SetDefault("log_dir", "")
	v.SetDefault("verbose", false)
	v.SetDefault("dicom_server", "")
	v.SetDefault("dicom_server_port", 104)
	v.SetDefault("dicom_server_local_aet", DefaultLocalAET)
	v.SetDefault("dicom_server_remote_aet", "")
}

// New returns a viper instance with defaults and GODICOM_ environment
// overrides, reading file when it is not empty.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file == "" {
		return v, nil
	}
	path, err := homedir.Expand(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand %s", file)
	}
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to decode config")
	}
	for _, p := range []*string{&cfg.RootDirectory, &cfg.LogDir} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return cfg, errors.Wrapf(err, "failed to expand %s", *p)
		}
		*p = expanded
	}
	if cfg.MaxGoroutines < 1 {
		return cfg, errors.Errorf("max_goroutines must be positive, got %d", cfg.MaxGoroutines)
	}
	switch cfg.Driver {
	case "sqlserver", "sqlite3":
	default:
		return cfg, errors.Errorf("unsupported driver %q", cfg.Driver)
	}
	if cfg.DicomServer != "" && cfg.DicomServerRemoteAET == "" {
		return cfg, errors.New("dicom_server_remote_aet is required when dicom_server is set")
	}
	return cfg, nil
}

// LoadFile is New followed by Load.
func LoadFile(file string) (Config, error) {
	v, err := New(file)
	if err != nil {
		return Config{}, err
	}
	return Load(v)
}
