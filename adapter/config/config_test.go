package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

type ConfigTestSuite struct {
	suite.Suite
	store *Store
	dir   string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	store, err := NewStore(WithDir(s.dir))
	s.Require().NoError(err)
	s.store = store.(*Store)
}

func (s *ConfigTestSuite) fileContent() map[string]string {
	b, err := os.ReadFile(filepath.Join(s.dir, FileName))
	s.Require().NoError(err)
	m := map[string]string{}
	s.Require().NoError(json.Unmarshal(b, &m))
	return m
}

func (s *ConfigTestSuite) TestLoadCreatesDefaults() {
	s.NoFileExists(s.store.Path())

	c, err := s.store.Load()
	s.NoError(err)
	s.Equal(domain.Config{
		DBDirPath:   filepath.Join(s.dir, DefaultDBDir),
		LogsDirPath: filepath.Join(s.dir, DefaultLogsDir),
	}, c)

	s.Equal(map[string]string{
		domain.KeyDBDirPath:   filepath.Join(s.dir, DefaultDBDir),
		domain.KeyLogsDirPath: filepath.Join(s.dir, DefaultLogsDir),
	}, s.fileContent())
}

func (s *ConfigTestSuite) TestSetGet() {
	dbDir := filepath.Join(s.T().TempDir(), "dbs")

	s.NoError(s.store.Set(domain.KeyDBDirPath, dbDir))

	v, err := s.store.Get(domain.KeyDBDirPath)
	s.NoError(err)
	s.Equal(dbDir, v)

	v, err = s.store.Get(domain.KeyLogsDirPath)
	s.NoError(err)
	s.Equal(filepath.Join(s.dir, DefaultLogsDir), v)

	c, err := s.store.Load()
	s.NoError(err)
	s.Equal(dbDir, c.DBDirPath)
	s.Equal(dbDir, s.fileContent()[domain.KeyDBDirPath])
}

func (s *ConfigTestSuite) TestSetRelativePath() {
	err := s.store.Set(domain.KeyLogsDirPath, "relative/logs")
	s.Equal(domain.ErrRelativePath{Key: domain.KeyLogsDirPath, Path: "relative/logs"}, err)
	s.NoFileExists(s.store.Path())
}

func (s *ConfigTestSuite) TestUnknownKey() {
	s.Equal(domain.ErrUnknownConfigKey{Key: "port"}, s.store.Set("port", "/x"))
	_, err := s.store.Get("port")
	s.Equal(domain.ErrUnknownConfigKey{Key: "port"}, err)
}

func (s *ConfigTestSuite) TestLoadRejectsRelativePaths() {
	content := `{"db_dir_path": "dbs", "logs_dir_path": "/logs"}`
	s.Require().NoError(os.WriteFile(s.store.Path(), []byte(content), 0o644))

	_, err := s.store.Load()
	s.ErrorAs(err, &domain.ErrRelativePath{})
}

func (s *ConfigTestSuite) TestLoadMissingKeyUsesDefault() {
	abs := filepath.Join(s.T().TempDir(), "dbs")
	content, err := json.Marshal(map[string]string{domain.KeyDBDirPath: abs})
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(s.store.Path(), content, 0o644))

	c, err := s.store.Load()
	s.NoError(err)
	s.Equal(abs, c.DBDirPath)
	s.Equal(filepath.Join(s.dir, DefaultLogsDir), c.LogsDirPath)
}

func (s *ConfigTestSuite) TestLoadInvalidFile() {
	s.Require().NoError(os.WriteFile(s.store.Path(), []byte("{not json"), 0o644))

	_, err := s.store.Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestDefaultDir() {
	store, err := NewStore()
	s.Require().NoError(err)
	exe, err := os.Executable()
	s.Require().NoError(err)
	s.Equal(filepath.Join(filepath.Dir(exe), FileName), store.(*Store).Path())
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
