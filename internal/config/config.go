package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig je konfiguracija aplikacije.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Import ImportConfig `toml:"import"`
	Export ExportConfig `toml:"export"`
}

// ServerConfig je konfiguracija HTTP poslužitelja.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// ImportConfig ograničava uvoz.
type ImportConfig struct {
	MaxArchiveMB int `toml:"max_archive_mb"` // gornja granica veličine ZIP-a
}

// ExportConfig podešava izvoz.
type ExportConfig struct {
	DownloadTTLMinutes int `toml:"download_ttl_minutes"` // trajanje download tokena
}

// LoadConfigInfo su meta podaci o učitavanju konfiguracije.
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig vraća zadanu konfiguraciju.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20461,
			DevMode: false,
		},
		Import: ImportConfig{
			MaxArchiveMB: 256,
		},
		Export: ExportConfig{
			DownloadTTLMinutes: 10,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir vraća direktorij izvršne datoteke.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo učitava config.toml uz meta podatke o učitavanju.
// Datoteka se traži pokraj izvršne datoteke; ako je nema, vrijede
// zadane vrijednosti.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	return config, info, nil
}

// LoadConfig učitava config.toml.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig sprema konfiguraciju u config.toml pokraj izvršne datoteke.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
