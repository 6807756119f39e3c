package config

import (
    "errors"
    "fmt"
    "io/fs"
    "os"
    "path/filepath"
    "reflect"
    "strconv"
    "time"

    "github.com/joho/godotenv"
    "gopkg.in/yaml.v3"
)

// Environment overrides, applied after the file.
const (
    EnvSession  = "WIKITUI_SESSION"
    EnvLogLevel = "WIKITUI_LOG_LEVEL"
    EnvLogFile  = "WIKITUI_LOG_FILE"
)

type Config struct {
    Search  SearchConfig  `yaml:"search"`
    HTTP    HTTPConfig    `yaml:"http"`
    Logging LoggingConfig `yaml:"logging"`
    Theme   ThemeConfig   `yaml:"theme"`
}

type SearchConfig struct {
    Debounce    time.Duration `yaml:"debounce" default:"200ms"`
    SnippetSize int           `yaml:"snippet_size" default:"4"`
    Limit       int           `yaml:"limit" default:"3"`
    // First ordinal handed to result items.
    OrdinalBase int `yaml:"ordinal_base" default:"1"`
}

type HTTPConfig struct {
    Timeout   time.Duration `yaml:"timeout" default:"15s"`
    Session   string        `yaml:"session"`
    UserAgent string        `yaml:"user_agent" default:"wikitui"`
}

type LoggingConfig struct {
    Level string `yaml:"level" default:"info"`
    File  string `yaml:"file"`
}

type ThemeConfig struct {
    Syntax string `yaml:"syntax" default:"monokai"`
}

// DefaultPath is $XDG_CONFIG_HOME/wikitui/config.yaml, or the platform
// equivalent.
func DefaultPath() string {
    dir, err := os.UserConfigDir()
    if err != nil {
        return "config.yaml"
    }
    return filepath.Join(dir, "wikitui", "config.yaml")
}

// Load reads the YAML file at path over the defaults, then applies .env and
// environment overrides. An empty path means DefaultPath, which may be absent;
// an explicit path must exist.
func Load(path string) (*Config, error) {
    c := Default()

    if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
        return nil, fmt.Errorf("load .env: %w", err)
    }

    explicit := path != ""
    if !explicit {
        path = DefaultPath()
    }
    data, err := os.ReadFile(path)
    switch {
    case err == nil:
        if err := yaml.Unmarshal(data, c); err != nil {
            return nil, fmt.Errorf("parse config YAML: %w", err)
        }
    case !explicit && errors.Is(err, fs.ErrNotExist):
    default:
        return nil, fmt.Errorf("read config: %w", err)
    }

    applyEnv(c)
    if err := c.Validate(); err != nil {
        return nil, err
    }
    return c, nil
}

// Default returns a config holding only default values.
func Default() *Config {
    c := &Config{}
    applyDefaults(c)
    return c
}

func (c *Config) Validate() error {
    if c.Search.Debounce < 0 {
        return fmt.Errorf("search.debounce must not be negative")
    }
    if c.Search.Limit <= 0 {
        return fmt.Errorf("search.limit must be positive")
    }
    if c.Search.SnippetSize < 0 {
        return fmt.Errorf("search.snippet_size must not be negative")
    }
    if c.Search.OrdinalBase != 0 && c.Search.OrdinalBase != 1 {
        return fmt.Errorf("search.ordinal_base must be 0 or 1")
    }
    if c.HTTP.Timeout <= 0 {
        return fmt.Errorf("http.timeout must be positive")
    }
    return nil
}

func applyEnv(c *Config) {
    if v, ok := os.LookupEnv(EnvSession); ok {
        c.HTTP.Session = v
    }
    if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
        c.Logging.Level = v
    }
    if v, ok := os.LookupEnv(EnvLogFile); ok {
        c.Logging.File = v
    }
}

var durationType = reflect.TypeOf(time.Duration(0))

// applyDefaults fills fields from their `default` struct tags, recursing into
// nested structs.
func applyDefaults(v any) {
    rv := reflect.ValueOf(v)
    if rv.Kind() == reflect.Ptr {
        rv = rv.Elem()
    }
    if rv.Kind() != reflect.Struct {
        return
    }
    t := rv.Type()
    for i := 0; i < rv.NumField(); i++ {
        field := rv.Field(i)
        if !field.CanSet() {
            continue
        }
        if field.Kind() == reflect.Struct {
            applyDefaults(field.Addr().Interface())
            continue
        }
        def := t.Field(i).Tag.Get("default")
        if def == "" {
            continue
        }
        switch {
        case field.Type() == durationType:
            if d, err := time.ParseDuration(def); err == nil {
                field.SetInt(int64(d))
            }
        case field.Kind() == reflect.String:
            field.SetString(def)
        case field.Kind() == reflect.Int:
            if n, err := strconv.Atoi(def); err == nil {
                field.SetInt(int64(n))
            }
        case field.Kind() == reflect.Bool:
            if b, err := strconv.ParseBool(def); err == nil {
                field.SetBool(b)
            }
        }
    }
}
