package wpcomics

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadProfile reads a yaml profile. An empty path returns the bundled TruyenQQ profile.
func LoadProfile(path string) (Profile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return TruyenQQ(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "read profile %s", path)
	}

	return ParseProfile(content)
}

// ParseProfile decodes and validates a yaml profile document.
func ParseProfile(content []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(content, &p); err != nil {
		return Profile{}, errors.Wrap(err, "decode profile")
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}
