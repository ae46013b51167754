// internal/defs/loader.go
package defs

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition is returned when definitions fail validation.
var ErrInvalidDefinition = errors.New("invalid definition")

//go:embed defaults.yaml
var defaultsYAML []byte

// Default returns the built-in definitions.
func Default() *Definitions {
	d, err := Load(bytes.NewReader(defaultsYAML))
	if err != nil {
		panic(fmt.Sprintf("built-in definitions are broken: %v", err))
	}
	return d
}

// Load reads definitions from YAML and validates them.
func Load(r io.Reader) (*Definitions, error) {
	var d Definitions
	if err := decode(r, &d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile накладывает файл поверх встроенных определений.
// Пустой путь означает «только встроенные».
func LoadFile(path string) (*Definitions, error) {
	d := Default()
	if path == "" {
		return d, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	if err := decode(bytes.NewReader(file), d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func decode(r io.Reader, d *Definitions) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	return nil
}

// Validate проверяет согласованность определений.
func (d *Definitions) Validate() error {
	if d.Hero.Speed <= 0 {
		return fmt.Errorf("%w: hero speed must be positive", ErrInvalidDefinition)
	}
	if d.Tower.Life <= 0 {
		return fmt.Errorf("%w: tower life must be positive", ErrInvalidDefinition)
	}
	seen := make(map[string]bool, len(d.Enemies))
	for _, e := range d.Enemies {
		if e.ID == "" {
			return fmt.Errorf("%w: enemy without id", ErrInvalidDefinition)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: duplicate enemy %q", ErrInvalidDefinition, e.ID)
		}
		if e.Speed <= 0 {
			return fmt.Errorf("%w: enemy %q speed must be positive", ErrInvalidDefinition, e.ID)
		}
		seen[e.ID] = true
	}

	s := d.Spawn
	if s.MinDivisor < 1 || s.BaseDivisor < s.MinDivisor {
		return fmt.Errorf("%w: need 1 <= min_divisor <= base_divisor", ErrInvalidDefinition)
	}
	if s.BossInterval < 1 || s.HardInterval < 1 {
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidDefinition)
	}
	if s.BossAfterTick < 0 {
		return fmt.Errorf("%w: boss_after_tick must not be negative", ErrInvalidDefinition)
	}
	for _, id := range []string{s.BaselineEnemy, s.BossEnemy, s.HardEnemy} {
		if !seen[id] {
			return fmt.Errorf("%w: spawn rules reference unknown enemy %q", ErrInvalidDefinition, id)
		}
	}
	return nil
}
