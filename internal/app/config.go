package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/registry-ingest/internal/db"
	"github.com/yungbote/registry-ingest/internal/ingest"
	"github.com/yungbote/registry-ingest/internal/platform/envutil"
)

const DefaultConfigPath = "config.yaml"

// Duration lets config files spell durations as "2m" / "90s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

type InputConfig struct {
	Dir       string `yaml:"dir"`
	Recursive bool   `yaml:"recursive"`
}

type OutputConfig struct {
	CSV  string `yaml:"csv"`
	XLSX string `yaml:"xlsx"`
}

type LogConfig struct {
	Mode string `yaml:"mode"`
	File string `yaml:"file"`
}

type Config struct {
	Database   db.Config    `yaml:"database"`
	Input      InputConfig  `yaml:"input"`
	Output     OutputConfig `yaml:"output"`
	Workers    int          `yaml:"workers"`
	DocTimeout Duration     `yaml:"doc_timeout"`
	Log        LogConfig    `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		Database: db.Config{
			Driver:     db.DriverSQLite,
			SQLitePath: "registry.sqlite",
		},
		Input: InputConfig{Dir: "xml_files"},
		Output: OutputConfig{
			CSV:  "output/restrict_records.csv",
			XLSX: "output/restrict_records.xlsx",
		},
		Workers:    ingest.DefaultWorkers,
		DocTimeout: Duration(ingest.DefaultDocTimeout),
		Log:        LogConfig{Mode: "dev", File: "parser.log"},
	}
}

// LoadConfig reads the YAML config at path, then applies environment
// overrides on top. A missing file is only tolerated for the default path,
// where the built-in defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultConfigPath:
		// run on defaults
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.Database.Driver = envutil.String("REGISTRY_DB_DRIVER", cfg.Database.Driver)
	cfg.Database.SQLitePath = envutil.String("REGISTRY_DB_SQLITE_PATH", cfg.Database.SQLitePath)
	cfg.Database.Host = envutil.String("REGISTRY_DB_HOST", cfg.Database.Host)
	cfg.Database.Port = envutil.String("REGISTRY_DB_PORT", cfg.Database.Port)
	cfg.Database.User = envutil.String("REGISTRY_DB_USER", cfg.Database.User)
	cfg.Database.Password = envutil.String("REGISTRY_DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = envutil.String("REGISTRY_DB_NAME", cfg.Database.Name)

	cfg.Input.Dir = envutil.String("REGISTRY_INPUT_DIR", cfg.Input.Dir)
	cfg.Input.Recursive = envutil.Bool("REGISTRY_INPUT_RECURSIVE", cfg.Input.Recursive)

	cfg.Output.CSV = envutil.String("REGISTRY_OUTPUT_CSV", cfg.Output.CSV)
	cfg.Output.XLSX = envutil.String("REGISTRY_OUTPUT_XLSX", cfg.Output.XLSX)

	cfg.Workers = envutil.Int("REGISTRY_WORKERS", cfg.Workers)
	cfg.DocTimeout = Duration(envutil.Duration("REGISTRY_DOC_TIMEOUT", time.Duration(cfg.DocTimeout)))

	cfg.Log.Mode = envutil.String("REGISTRY_LOG_MODE", cfg.Log.Mode)
	cfg.Log.File = envutil.String("REGISTRY_LOG_FILE", cfg.Log.File)
}
