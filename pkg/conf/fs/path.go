// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conffs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// LocalFileName is looked up in the working directory
	LocalFileName = ".csvcmp.yaml"

	configFileName = "config.yaml"
)

func systemConfigPath() string {
	if s := os.Getenv("CSVCMP_SYSTEM_CONFIG_DIR"); s != "" {
		return filepath.Join(s, configFileName)
	}
	return filepath.Join("/usr/local/etc/csvcmp", configFileName)
}

func globalConfigPath() (string, error) {
	if s := os.Getenv("CSVCMP_CONFIG_HOME"); s != "" {
		return filepath.Join(s, configFileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "csvcmp", configFileName), nil
}

func localPath(rootDir string) string {
	return filepath.Join(rootDir, LocalFileName)
}

func (s *Store) path() (string, error) {
	switch s.source {
	case SystemSource:
		return systemConfigPath(), nil
	case GlobalSource:
		return globalConfigPath()
	case LocalSource:
		return localPath(s.rootDir), nil
	case FileSource:
		return s.fp, nil
	default:
		return "", fmt.Errorf("unrecognized source: %v", s.source)
	}
}
