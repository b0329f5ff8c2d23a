// Package config resolves runtime settings and OCI credential profiles.
package config

import (
	"context"
	"fmt"
	"os/user"
	"path/filepath"

	"github.com/oracle/oci-go-sdk/v65/common"
	"gopkg.in/ini.v1"
)

// DefaultConfigPath is the conventional location of the OCI config file.
func DefaultConfigPath() string {
	usr, err := user.Current()
	if err != nil {
		return ".oci/config"
	}
	return filepath.Join(usr.HomeDir, ".oci", "config")
}

// NewConfigurationProvider resolves OCI credentials. With no path and no
// profile the SDK default chain applies (config file, instance principal,
// environment); otherwise the named profile of the given file is used.
func NewConfigurationProvider(configPath, profile string) common.ConfigurationProvider {
	if configPath == "" && profile == "" {
		return common.DefaultConfigProvider()
	}
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	if profile == "" {
		profile = "DEFAULT"
	}
	return common.CustomProfileConfigProvider(configPath, profile)
}

// Registry lists the credential profiles available in an OCI config file.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load OCI config %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}
