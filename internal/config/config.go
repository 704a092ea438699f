package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultVariant = "bsq"
	DefaultSA      = 35.0
	DefaultCT      = 15.0
	DefaultP       = 0.0
	DefaultPMax    = 4000.0
	DefaultSteps   = 100
)

type Config struct {
	Variant string  `yaml:"variant"`
	SA      float64 `yaml:"sa"`
	CT      float64 `yaml:"ct"`
	P       float64 `yaml:"p"`
	PMax    float64 `yaml:"pmax"`
	Steps   int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant: DefaultVariant,
		SA:      DefaultSA,
		CT:      DefaultCT,
		P:       DefaultP,
		PMax:    DefaultPMax,
		Steps:   DefaultSteps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
