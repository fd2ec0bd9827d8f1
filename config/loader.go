package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk shape of a tuning file. Every block is optional;
// fields left out keep their defaults.
type Overrides struct {
	Enemy      *EnemyConfig      `yaml:"enemy"`
	Health     *HealthConfig     `yaml:"health"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Navigation *NavigationConfig `yaml:"navigation"`
	Arena      *ArenaConfig      `yaml:"arena"`
	Spawner    *SpawnerConfig    `yaml:"spawner"`
	Sim        *SimConfig        `yaml:"sim"`
	Target     *TargetConfig     `yaml:"target"`
}

// Load applies overrides from a YAML file on top of the current configuration.
// A missing file is not an error.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML tuning data on top of the current configuration.
func Apply(data []byte) error {
	ov := Overrides{
		Enemy:      &Enemy,
		Health:     &Health,
		Physics:    &Physics,
		Navigation: &Navigation,
		Arena:      &Arena,
		Spawner:    &Spawner,
		Sim:        &Sim,
		Target:     &Target,
	}

	// Types are decoded separately so a partial type entry inherits the
	// built-in values of the type with the same name.
	var raw struct {
		Enemy struct {
			Types map[string]yaml.Node `yaml:"types"`
		} `yaml:"enemy"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		types[name] = t
	}
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return err
	}
	for name, node := range raw.Enemy.Types {
		base, ok := types[name]
		if !ok {
			base = types[Enemy.DefaultType]
			base.Name = name
		}
		if err := node.Decode(&base); err != nil {
			return fmt.Errorf("enemy type %s: %w", name, err)
		}
		types[name] = base
	}
	Enemy.Types = types

	if _, ok := Enemy.Types[Enemy.DefaultType]; !ok {
		return fmt.Errorf("default enemy type %q is not defined", Enemy.DefaultType)
	}
	return nil
}

// Marshal renders the current configuration as YAML.
func Marshal() ([]byte, error) {
	return yaml.Marshal(Overrides{
		Enemy:      &Enemy,
		Health:     &Health,
		Physics:    &Physics,
		Navigation: &Navigation,
		Arena:      &Arena,
		Spawner:    &Spawner,
		Sim:        &Sim,
		Target:     &Target,
	})
}
