package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataPaths resolves data file locations per the XDG Base Directory
// Specification version 0.8.
//
// See: http://standards.freedesktop.org/basedir-spec/
type DataPaths struct {
	dataHome string
	dataDirs []string
}

// NewDataPaths създава DataPaths от process environment
func NewDataPaths() *DataPaths {
	environ := make(map[string]string)
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if ok {
			environ[key] = value
		}
	}
	return NewDataPathsFromEnv(environ)
}

// NewDataPathsFromEnv създава DataPaths от дадена environment map
func NewDataPathsFromEnv(environ map[string]string) *DataPaths {
	dataHome := environ["XDG_DATA_HOME"]
	if dataHome == "" {
		dataHome = filepath.Join(environ["HOME"], ".local", "share")
	}

	dataDirs := environ["XDG_DATA_DIRS"]
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}

	return &DataPaths{
		dataHome: dataHome,
		dataDirs: strings.Split(dataDirs, ":"),
	}
}

// DataHome is the base directory for user-specific data files.
func (p *DataPaths) DataHome() string {
	return p.dataHome
}

// DataDirs are directories to search for data files in order of
// preference.
func (p *DataPaths) DataDirs() []string {
	return p.dataDirs
}

// FindResourcePath returns the file path for the first matching data
// resource found in the XDG data locations.
func (p *DataPaths) FindResourcePath(subdir, filename string) (string, error) {
	resource := filepath.Join(subdir, filename)
	searchDirs := append([]string{p.dataHome}, p.dataDirs...)
	for _, dataDir := range searchDirs {
		path := filepath.Join(dataDir, resource)
		if _, err := os.Stat(path); err == nil {
			if resolved, err := filepath.EvalSymlinks(path); err == nil {
				return resolved, nil
			}
			return path, nil
		}
	}
	return "", fmt.Errorf("could not find resource %q", resource)
}

// MakeHomePath връща data home пътя за даден resource
func (p *DataPaths) MakeHomePath(subdir, filename string) string {
	return filepath.Join(p.dataHome, subdir, filename)
}
