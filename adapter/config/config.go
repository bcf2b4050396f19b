// Package config contains the default [domain.ConfigStore] implementation,
// which keeps the configuration in a JSON file beside the executable.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

const (
	// FileName is the name of the configuration file.
	FileName = "engine.config.json"
	// DefaultDBDir is the default database directory, relative to the
	// configuration directory.
	DefaultDBDir = "databases"
	// DefaultLogsDir is the default log directory, relative to the
	// configuration directory.
	DefaultLogsDir = "logs"
)

// Keys lists every configuration key.
var Keys = []string{domain.KeyDBDirPath, domain.KeyLogsDirPath}

// Store implements [domain.ConfigStore].
type Store struct {
	dir string
}

// NewStore returns a new implementation of [domain.ConfigStore]. Unless
// [WithDir] is given, the file is kept in the directory of the running
// executable.
func NewStore(options ...Option) (domain.ConfigStore, error) {
	var s Store
	for _, option := range options {
		option(&s)
	}
	if s.dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}
		s.dir = filepath.Dir(exe)
	}
	dir, err := filepath.Abs(s.dir)
	if err != nil {
		return nil, err
	}
	s.dir = dir
	return &s, nil
}

// Path returns the path of the configuration file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Load implements [domain.ConfigStore].
func (s *Store) Load() (domain.Config, error) {
	v, err := s.read()
	if err != nil {
		return domain.Config{}, err
	}
	var c domain.Config
	if err := v.Unmarshal(&c); err != nil {
		return domain.Config{}, err
	}
	for _, key := range Keys {
		if err := validate(key, v.GetString(key)); err != nil {
			return domain.Config{}, err
		}
	}
	return c, nil
}

// Get implements [domain.ConfigStore].
func (s *Store) Get(key string) (string, error) {
	if !known(key) {
		return "", domain.ErrUnknownConfigKey{Key: key}
	}
	v, err := s.read()
	if err != nil {
		return "", err
	}
	return v.GetString(key), nil
}

// Set implements [domain.ConfigStore].
func (s *Store) Set(key string, value string) error {
	if !known(key) {
		return domain.ErrUnknownConfigKey{Key: key}
	}
	if err := validate(key, value); err != nil {
		return err
	}
	v, err := s.read()
	if err != nil {
		return err
	}
	v.Set(key, filepath.Clean(value))
	return v.WriteConfigAs(s.Path())
}

// read loads the file, writing it with default values first if missing.
func (s *Store) read() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(s.Path())
	v.SetConfigType("json")
	v.SetDefault(domain.KeyDBDirPath, filepath.Join(s.dir, DefaultDBDir))
	v.SetDefault(domain.KeyLogsDirPath, filepath.Join(s.dir, DefaultLogsDir))

	if _, err := os.Stat(s.Path()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err := v.WriteConfigAs(s.Path()); err != nil {
			return nil, err
		}
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}

func known(key string) bool {
	return slices.Contains(Keys, key)
}

func validate(key string, path string) error {
	if !filepath.IsAbs(path) {
		return domain.ErrRelativePath{Key: key, Path: path}
	}
	return nil
}
