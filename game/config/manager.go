package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/roversim/game/engine"
	"github.com/wricardo/mcp-training/roversim/game/service"
	"gopkg.in/yaml.v3"
)

var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrInvalidScenario  = errors.New("invalid scenario")
)

// Extensions tried, in order, when resolving a scenario name to a file
var Extensions = []string{".json", ".yaml", ".yml"}

// DefaultScenarioName is loaded as the default when present in the directory
const DefaultScenarioName = "default"

// Manager handles scenario loading and caching
type Manager struct {
	configDir       string
	defaultScenario *engine.Scenario
	scenarios       map[string]*engine.Scenario
	mu              sync.RWMutex
}

// NewManager creates a new scenario manager
func NewManager(configDir string) (*Manager, error) {
	// Ensure config directory exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		scenarios: make(map[string]*engine.Scenario),
	}

	if err := m.loadDefaultScenario(); err != nil {
		return nil, fmt.Errorf("failed to load default scenario: %w", err)
	}

	return m, nil
}

// LoadScenario loads a scenario by name, with or without its extension
func (m *Manager) LoadScenario(name string) (*engine.Scenario, error) {
	m.mu.RLock()
	// Check cache first
	if scenario, exists := m.scenarios[name]; exists {
		m.mu.RUnlock()
		return scenario, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if scenario, exists := m.scenarios[name]; exists {
		return scenario, nil
	}

	path, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	scenario, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	m.scenarios[name] = scenario
	return scenario, nil
}

// resolve finds the file backing a scenario name
func (m *Manager) resolve(name string) (string, error) {
	if isScenarioFile(name) {
		path := filepath.Join(m.configDir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return "", ErrScenarioNotFound
			}
			return "", fmt.Errorf("failed to stat scenario file: %w", err)
		}
		return path, nil
	}

	for _, ext := range Extensions {
		path := filepath.Join(m.configDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrScenarioNotFound
}

// LoadFile reads, decodes and validates a scenario file.
// The format is chosen by extension: .json, or .yaml / .yml.
func LoadFile(path string) (*engine.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrScenarioNotFound
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filepath.Base(path), err)
	}

	if err := engine.ValidateScenario(scenario); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	return scenario, nil
}

// Decode parses scenario bytes in the format named by ext
func Decode(data []byte, ext string) (*engine.Scenario, error) {
	var scenario engine.Scenario

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &scenario); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &scenario); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", ext)
	}

	return &scenario, nil
}

// ListScenarios returns information about all loadable scenarios, sorted by id
func (m *Manager) ListScenarios() ([]*service.ScenarioInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var scenarios []*service.ScenarioInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !isScenarioFile(entry.Name()) {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if seen[id] {
			continue
		}
		seen[id] = true

		// List the id under the file LoadScenario(id) would pick, so every
		// listed id is loadable by that id.
		path, err := m.resolve(id)
		if err != nil {
			continue
		}
		scenario, err := m.LoadScenario(id)
		if err != nil {
			// Skip invalid scenarios
			continue
		}

		scenarios = append(scenarios, &service.ScenarioInfo{
			Filename:    filepath.Base(path),
			ScenarioID:  id,
			Name:        scenario.Name,
			Description: scenario.Description,
			Width:       scenario.Width,
			Height:      scenario.Height,
			Obstacles:   len(scenario.Obstacles),
		})
	}

	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].ScenarioID < scenarios[j].ScenarioID
	})
	return scenarios, nil
}

// GetDefault returns the default scenario
func (m *Manager) GetDefault() *engine.Scenario {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultScenario
}

// SetDefault sets the default scenario by name
func (m *Manager) SetDefault(name string) error {
	scenario, err := m.LoadScenario(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultScenario = scenario
	return nil
}

// loadDefaultScenario uses default.{json,yaml,yml} when present and valid,
// and the built-in scenario otherwise
func (m *Manager) loadDefaultScenario() error {
	scenario, err := m.LoadScenario(DefaultScenarioName)
	if err != nil {
		if !errors.Is(err, ErrScenarioNotFound) {
			return err
		}
		scenario = engine.DefaultScenario()
	}

	m.defaultScenario = scenario
	return nil
}

func isScenarioFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
