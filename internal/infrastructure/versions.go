package infrastructure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

type versionsFile struct {
	Versions []string `yaml:"versions"`
}

// VersionCatalog is a read-only catalog of releasable instance versions
// loaded from a yaml file. The latest version is the highest one by dotted
// numeric order.
type VersionCatalog struct {
	versions []string
}

func NewVersionCatalog(fs afero.Fs, path string) (*VersionCatalog, error) {
	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading version catalog %s: %w", path, err)
	}

	var parsed versionsFile
	if err := yaml.Unmarshal(contents, &parsed); err != nil {
		return nil, fmt.Errorf("parsing version catalog %s: %w", path, err)
	}
	if len(parsed.Versions) == 0 {
		return nil, fmt.Errorf("version catalog %s lists no versions", path)
	}

	versions := slices.Clone(parsed.Versions)
	slices.SortFunc(versions, compareVersions)
	return &VersionCatalog{versions: versions}, nil
}

func (c *VersionCatalog) Supported() ([]string, error) {
	return slices.Clone(c.versions), nil
}

func (c *VersionCatalog) Latest() (string, error) {
	return c.versions[len(c.versions)-1], nil
}

func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		an, bn := 0, 0
		if i < len(as) {
			an, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bn, _ = strconv.Atoi(bs[i])
		}
		if an != bn {
			return an - bn
		}
	}
	return 0
}
