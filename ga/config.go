package ga

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/prdga/construct"
	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/oracle"
)

// Strategy names accepted by Config.
const (
	SelectionTournament = "tournament"

	CrossoverOnePoint = "one-point"
	CrossoverUniform  = "uniform"

	MutationRandomReset = "random-reset"
	MutationSwap        = "swap"
	MutationGeneWise    = "gene-wise"

	ReplacementElitism   = "elitism"
	ReplacementPartition = "partition"
)

// Config holds the GA parameters. Zero values are not defaults; start from
// DefaultConfig and override.
type Config struct {
	PopulationSize int     `yaml:"population_size" json:"population_size" validate:"gte=1"`
	MutationRate   float64 `yaml:"mutation_rate" json:"mutation_rate" validate:"gte=0,lte=1"`
	CrossoverRate  float64 `yaml:"crossover_rate" json:"crossover_rate" validate:"gte=0,lte=1"`
	ElitismSize    int     `yaml:"elitism_size" json:"elitism_size" validate:"gte=0"`
	Generations    int     `yaml:"generations" json:"generations" validate:"gte=0"`
	TournamentSize int     `yaml:"tournament_size" json:"tournament_size" validate:"gte=1"`

	Selection   string `yaml:"selection" json:"selection" validate:"oneof=tournament"`
	Crossover   string `yaml:"crossover" json:"crossover" validate:"oneof=one-point uniform"`
	Mutation    string `yaml:"mutation" json:"mutation" validate:"oneof=random-reset swap gene-wise"`
	Replacement string `yaml:"replacement" json:"replacement" validate:"oneof=elitism partition"`
	Repair      bool   `yaml:"repair" json:"repair"`
	TieBreak    string `yaml:"tie_break" json:"tie_break" validate:"omitempty,oneof=lowest-id insertion"`

	PenaltyFactor int `yaml:"penalty_factor" json:"penalty_factor" validate:"gte=2"`

	// Seed drives the engine's random source. 0 selects rng.DefaultSeed,
	// so seeds 0 and 1 produce the same run.
	Seed int64 `yaml:"seed" json:"seed"`
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 100,
		MutationRate:   0.1,
		CrossoverRate:  0.8,
		ElitismSize:    2,
		Generations:    100,
		TournamentSize: 3,
		Selection:      SelectionTournament,
		Crossover:      CrossoverOnePoint,
		Mutation:       MutationRandomReset,
		Replacement:    ReplacementElitism,
		TieBreak:       construct.TieBreakLowestID.String(),
		PenaltyFactor:  oracle.PenaltyFactor,
		Seed:           1,
	}
}

var validate = validator.New()

// Validate checks the graph-independent rules.
//
// Errors:
//   - ErrInvalidConfiguration wrapping the field-level failures, or when
//     ElitismSize exceeds PopulationSize.
//   - ErrInsufficientPopulation if PopulationSize < TournamentSize, or
//     below 2 since a pair needs two distinct parents.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if c.PopulationSize < c.TournamentSize || c.PopulationSize < 2 {
		return fmt.Errorf("%w: population %d, tournament %d",
			ErrInsufficientPopulation, c.PopulationSize, c.TournamentSize)
	}
	if c.ElitismSize > c.PopulationSize {
		return fmt.Errorf("%w: elitism_size %d > population_size %d",
			ErrInvalidConfiguration, c.ElitismSize, c.PopulationSize)
	}
	return nil
}

// ValidateFor runs Validate and the rules that depend on g.
// Crossover needs a cut point, so a positive CrossoverRate on a graph with
// at most one vertex is rejected.
func (c Config) ValidateFor(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if c.CrossoverRate > 0 && g.Order() <= 1 {
		return fmt.Errorf("%w: crossover_rate %g needs at least 2 vertices, graph has %d",
			ErrInvalidConfiguration, c.CrossoverRate, g.Order())
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig. Unknown keys are
// rejected. The result is validated.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ga: read config %q: %w", path, err)
	}
	return ParseConfig(bytes.NewReader(data))
}
