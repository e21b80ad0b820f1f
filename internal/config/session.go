package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"growdash/internal/core"
)

// Session is the persisted login state: API endpoint, tokens and the profile
// list fetched at login time. Stored under the user config dir, chmod 0600
// since it holds credentials.
type Session struct {
	APIURL           string         `yaml:"api_url,omitempty"`
	AccessToken      string         `yaml:"access_token,omitempty"`
	RefreshToken     string         `yaml:"refresh_token,omitempty"`
	CurrentProfileID int64          `yaml:"current_profile_id,omitempty"`
	Profiles         []core.Profile `yaml:"profiles,omitempty"`
}

func SessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "growdash")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.yaml"), nil
}

// LoadSession reads the session file. A missing file yields an empty
// session, not an error.
func LoadSession() (*Session, error) {
	path, err := SessionPath()
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := yaml.Unmarshal(b, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Session) Save() error {
	path, err := SessionPath()
	if err != nil {
		return err
	}

	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func (s *Session) LoggedIn() bool {
	return s.AccessToken != ""
}

// CurrentProfile resolves the selected profile, falling back to the first
// known one when nothing was explicitly chosen.
func (s *Session) CurrentProfile() (core.Profile, bool) {
	for _, profile := range s.Profiles {
		if profile.ID == s.CurrentProfileID {
			return profile, true
		}
	}
	if len(s.Profiles) > 0 {
		return s.Profiles[0], true
	}
	return core.Profile{}, false
}

// FindProfile matches by numeric id or by name.
func (s *Session) FindProfile(key string) (core.Profile, bool) {
	for _, profile := range s.Profiles {
		if key == profile.Name {
			return profile, true
		}
	}
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		for _, profile := range s.Profiles {
			if profile.ID == id {
				return profile, true
			}
		}
	}
	return core.Profile{}, false
}
