package ga_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/ga"
	"github.com/katalvlaran/prdga/labeling"
	"github.com/katalvlaran/prdga/oracle"
	"github.com/katalvlaran/prdga/rng"
)

func scenario(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.BuildIndexed(7, [][2]int{{0, 4}, {0, 2}, {1, 2}, {2, 3}, {5, 1}, {5, 4}, {6, 2}, {6, 3}})
	require.NoError(t, err)
	return g
}

func grid(t testing.TB, side int) *core.Graph {
	t.Helper()
	var edges [][2]int
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			if c+1 < side {
				edges = append(edges, [2]int{v, v + 1})
			}
			if r+1 < side {
				edges = append(edges, [2]int{v, v + side})
			}
		}
	}
	g, err := core.BuildIndexed(side*side, edges)
	require.NoError(t, err)
	return g
}

func smallConfig() ga.Config {
	cfg := ga.DefaultConfig()
	cfg.PopulationSize = 20
	cfg.Generations = 15
	cfg.Seed = 42
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, ga.DefaultConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*ga.Config)
		want   error
	}{
		{"population below tournament", func(c *ga.Config) { c.PopulationSize = 2 }, ga.ErrInsufficientPopulation},
		{"population of one", func(c *ga.Config) { c.PopulationSize = 1; c.TournamentSize = 1 }, ga.ErrInsufficientPopulation},
		{"elitism above population", func(c *ga.Config) { c.ElitismSize = 101 }, ga.ErrInvalidConfiguration},
		{"mutation rate above 1", func(c *ga.Config) { c.MutationRate = 1.5 }, ga.ErrInvalidConfiguration},
		{"negative crossover rate", func(c *ga.Config) { c.CrossoverRate = -0.1 }, ga.ErrInvalidConfiguration},
		{"negative generations", func(c *ga.Config) { c.Generations = -1 }, ga.ErrInvalidConfiguration},
		{"unknown crossover", func(c *ga.Config) { c.Crossover = "two-point" }, ga.ErrInvalidConfiguration},
		{"unknown replacement", func(c *ga.Config) { c.Replacement = "steady" }, ga.ErrInvalidConfiguration},
		{"penalty too small", func(c *ga.Config) { c.PenaltyFactor = 1 }, ga.ErrInvalidConfiguration},
		{"unknown tie break", func(c *ga.Config) { c.TieBreak = "random" }, ga.ErrInvalidConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := ga.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

func TestConfig_ValidateFor(t *testing.T) {
	single, err := core.BuildIndexed(1, nil)
	require.NoError(t, err)

	cfg := ga.DefaultConfig()
	require.ErrorIs(t, cfg.ValidateFor(nil), ga.ErrGraphNil)
	require.ErrorIs(t, cfg.ValidateFor(single), ga.ErrInvalidConfiguration)

	cfg.CrossoverRate = 0
	require.NoError(t, cfg.ValidateFor(single))
}

func TestParseConfig(t *testing.T) {
	cfg, err := ga.ParseConfig(strings.NewReader(`
population_size: 30
mutation: swap
replacement: partition
repair: true
seed: 7
`))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.PopulationSize)
	assert.Equal(t, ga.MutationSwap, cfg.Mutation)
	assert.Equal(t, ga.ReplacementPartition, cfg.Replacement)
	assert.True(t, cfg.Repair)
	assert.Equal(t, int64(7), cfg.Seed)
	// untouched keys keep their defaults
	assert.Equal(t, ga.DefaultConfig().CrossoverRate, cfg.CrossoverRate)

	cfg, err = ga.ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, ga.DefaultConfig(), cfg)

	_, err = ga.ParseConfig(strings.NewReader("populaton_size: 3\n"))
	require.ErrorIs(t, err, ga.ErrInvalidConfiguration)

	_, err = ga.ParseConfig(strings.NewReader("population_size: 2\n"))
	require.ErrorIs(t, err, ga.ErrInsufficientPopulation)

	_, err = ga.LoadConfig("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestCrossover_RateZeroKeepsParents(t *testing.T) {
	r := rng.FromSeed(1)
	a, _ := labeling.Parse("2001010")
	b, _ := labeling.Parse("1111111")
	for _, c := range []ga.Crossover{ga.OnePointCrossover{}, ga.UniformCrossover{}} {
		for i := 0; i < 50; i++ {
			c1, c2 := c.Cross(a, b, r)
			assert.Equal(t, a, c1)
			assert.Equal(t, b, c2)
		}
	}
}

func TestOnePointCrossover_Cut(t *testing.T) {
	r := rng.FromSeed(3)
	a := labeling.Uniform(6, labeling.Zero)
	b := labeling.Uniform(6, labeling.Two)
	x := ga.OnePointCrossover{Rate: 1}

	for i := 0; i < 200; i++ {
		c1, c2 := x.Cross(a, b, r)
		cut := c1.Count(labeling.Zero)
		assert.GreaterOrEqual(t, cut, 1)
		assert.Less(t, cut, 5, "cut is drawn from [1, n-1)")
		assert.Equal(t, strings.Repeat("0", cut)+strings.Repeat("2", 6-cut), c1.String())
		assert.Equal(t, strings.Repeat("2", cut)+strings.Repeat("0", 6-cut), c2.String())
	}
	assert.Equal(t, labeling.Uniform(6, labeling.Zero), a, "parents are not modified")

	// n == 2 always cuts at 1.
	c1, c2 := x.Cross(labeling.Labeling{0, 0}, labeling.Labeling{2, 2}, r)
	assert.Equal(t, "02", c1.String())
	assert.Equal(t, "20", c2.String())
}

func TestMutation_RateZeroKeepsInput(t *testing.T) {
	r := rng.FromSeed(1)
	l, _ := labeling.Parse("2001010")
	for _, m := range []ga.Mutator{ga.RandomResetMutation{}, ga.SwapMutation{}, ga.GeneWiseMutation{}} {
		for i := 0; i < 50; i++ {
			assert.Equal(t, "2001010", m.Mutate(l, r).String())
		}
	}
}

func TestMutation_Effects(t *testing.T) {
	r := rng.FromSeed(9)
	l, _ := labeling.Parse("2001010")

	for i := 0; i < 100; i++ {
		out := ga.RandomResetMutation{Rate: 1}.Mutate(l, r)
		diff := 0
		for j := range out {
			if out[j] != l[j] {
				diff++
			}
		}
		assert.LessOrEqual(t, diff, 1)

		sw := ga.SwapMutation{Rate: 1}.Mutate(l, r)
		assert.Equal(t, l.Weight(), sw.Weight())
		assert.Equal(t, l.Count(labeling.Two), sw.Count(labeling.Two))

		gw := ga.GeneWiseMutation{Rate: 1}.Mutate(l, r)
		assert.Len(t, gw, len(l))
	}
	assert.Equal(t, "2001010", l.String(), "input is never modified")
}

func TestTournamentSelector(t *testing.T) {
	g := scenario(t)
	r := rng.FromSeed(5)
	pop := ga.Population{
		ga.NewIndividual(g, mustParse(t, "0020110")),
		ga.NewIndividual(g, mustParse(t, "1111111")),
		ga.NewIndividual(g, mustParse(t, "0000000")),
	}

	// Population equal to the tournament size still yields distinct parents.
	pairs, err := ga.TournamentSelector{K: 3}.Select(pop, 10, r)
	require.NoError(t, err)
	require.Len(t, pairs, 10)
	for _, p := range pairs {
		assert.NotSame(t, p.A, p.B)
		assert.Same(t, pop[0], p.A, "full tournament always picks the best first")
	}

	_, err = ga.TournamentSelector{K: 4}.Select(pop, 1, r)
	require.ErrorIs(t, err, ga.ErrInsufficientPopulation)
}

func TestReplacement(t *testing.T) {
	g := scenario(t)
	cur := ga.Population{
		ga.NewIndividual(g, mustParse(t, "0020110")), // 4
		ga.NewIndividual(g, mustParse(t, "1111111")), // 7
		ga.NewIndividual(g, mustParse(t, "2222222")), // 14
	}
	kids := ga.Population{
		ga.NewIndividual(g, mustParse(t, "1111112")), // 8
		ga.NewIndividual(g, mustParse(t, "0000000")), // invalid
	}

	next := ga.ElitismReplacement{Elite: 1}.Replace(cur, kids, 3)
	require.Len(t, next, 3)
	assert.Same(t, cur[0], next[0])
	assert.Contains(t, next, kids[0])
	assert.Contains(t, next, kids[1])

	// Too few children: the gap is filled from the current population.
	next = ga.ElitismReplacement{Elite: 0}.Replace(cur, kids[:1], 3)
	require.Len(t, next, 3)
	assert.Same(t, cur[0], next[0])

	next = ga.PartitionReplacement{}.Replace(cur, kids, 3)
	require.Len(t, next, 3)
	assert.Equal(t, []int{4, 7, 8}, fitnesses(next))
}

func TestEngine_Lifecycle(t *testing.T) {
	g := scenario(t)
	e, err := ga.NewEngine(g, smallConfig())
	require.NoError(t, err)
	assert.Equal(t, ga.Uninitialized, e.State())
	assert.NotEmpty(t, e.RunID())

	_, err = e.Step()
	require.ErrorIs(t, err, ga.ErrNotInitialized)

	require.NoError(t, e.Init())
	assert.Equal(t, ga.Initialized, e.State())
	assert.Len(t, e.Population(), 20)

	s, err := e.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Generation)
	assert.Equal(t, ga.Evolving, e.State())

	for e.State() != ga.Terminated {
		_, err = e.Step()
		require.NoError(t, err)
	}
	_, err = e.Step()
	require.ErrorIs(t, err, ga.ErrTerminated)
	assert.Len(t, e.Result().Stats, 15)
}

func TestEngine_PopulationSizeAndStats(t *testing.T) {
	g := grid(t, 5)
	for _, repl := range []string{ga.ReplacementElitism, ga.ReplacementPartition} {
		for _, size := range []int{3, 10, 11} {
			t.Run(fmt.Sprintf("%s/%d", repl, size), func(t *testing.T) {
				cfg := smallConfig()
				cfg.PopulationSize = size
				cfg.ElitismSize = 1
				cfg.Replacement = repl

				var e *ga.Engine
				var seen int
				e, err := ga.NewEngine(g, cfg, ga.WithObserver(ga.ObserverFunc(func(id string, s ga.GenerationStats) {
					seen++
					assert.Equal(t, e.RunID(), id)
					assert.Len(t, e.Population(), size)
					assert.GreaterOrEqual(t, s.ValidityRate, 0.0)
					assert.LessOrEqual(t, s.ValidityRate, 1.0)
				})))
				require.NoError(t, err)

				res, err := e.Run()
				require.NoError(t, err)
				assert.Len(t, res.Stats, cfg.Generations)
				assert.Equal(t, cfg.Generations, seen)
				assert.Len(t, res.Final, size)
				for i, s := range res.Stats {
					assert.Equal(t, i+1, s.Generation)
					assert.LessOrEqual(t, res.Best.Fitness(), s.BestFitness)
				}
				assert.LessOrEqual(t, res.Best.Fitness(), res.Initial.BestFitness)
			})
		}
	}
}

func TestEngine_PartitionIsMonotone(t *testing.T) {
	cfg := smallConfig()
	cfg.Replacement = ga.ReplacementPartition
	res, err := ga.Run(grid(t, 4), cfg)
	require.NoError(t, err)
	prev := res.Initial.BestFitness
	for _, s := range res.Stats {
		assert.LessOrEqual(t, s.BestFitness, prev)
		prev = s.BestFitness
	}
}

func TestEngine_Deterministic(t *testing.T) {
	g := grid(t, 5)
	cfg := smallConfig()
	cfg.Mutation = ga.MutationGeneWise
	cfg.Crossover = ga.CrossoverUniform

	a, err := ga.Run(g, cfg, ga.WithRunID("a"))
	require.NoError(t, err)
	b, err := ga.Run(g, cfg, ga.WithRunID("b"))
	require.NoError(t, err)

	assert.Equal(t, a.Best.Labeling(), b.Best.Labeling())
	require.Len(t, b.Stats, len(a.Stats))
	for i := range a.Stats {
		assert.Equal(t, a.Stats[i].BestFitness, b.Stats[i].BestFitness)
		assert.Equal(t, a.Stats[i].MeanFitness, b.Stats[i].MeanFitness)
	}
	for i := range a.Final {
		assert.Equal(t, a.Final[i].Labeling(), b.Final[i].Labeling())
	}
}

func TestEngine_Repair(t *testing.T) {
	g := grid(t, 4)
	cfg := smallConfig()
	cfg.Repair = true
	cfg.ElitismSize = 0
	cfg.MutationRate = 1
	cfg.Mutation = ga.MutationGeneWise

	res, err := ga.Run(g, cfg)
	require.NoError(t, err)
	for _, s := range res.Stats {
		assert.Equal(t, 1.0, s.ValidityRate, "generation %d", s.Generation)
	}
	assert.True(t, oracle.CheckPerfectDomination(g, res.Best.Labeling()))
}

func TestEngine_GenerationsStream(t *testing.T) {
	e, err := ga.NewEngine(scenario(t), smallConfig())
	require.NoError(t, err)

	var got []int
	for s := range e.Generations() {
		got = append(got, s.Generation)
		if s.Generation == 4 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.NoError(t, e.Err())

	// Resuming continues from where the consumer stopped.
	var rest int
	for range e.Generations() {
		rest++
	}
	assert.Equal(t, 11, rest)
	assert.Equal(t, ga.Terminated, e.State())
}

func TestEngine_ZeroGenerations(t *testing.T) {
	cfg := smallConfig()
	cfg.Generations = 0
	res, err := ga.Run(scenario(t), cfg)
	require.NoError(t, err)
	assert.Empty(t, res.Stats)
	require.NotNil(t, res.Best)
	assert.True(t, res.Best.Valid(), "constructed seeds are valid")
}

func TestEngine_Errors(t *testing.T) {
	_, err := ga.Run(nil, ga.DefaultConfig())
	require.ErrorIs(t, err, ga.ErrGraphNil)

	cfg := ga.DefaultConfig()
	cfg.PopulationSize = 2
	_, err = ga.Run(scenario(t), cfg)
	require.ErrorIs(t, err, ga.ErrInsufficientPopulation)

	single, _ := core.BuildIndexed(1, nil)
	_, err = ga.Run(single, ga.DefaultConfig())
	require.ErrorIs(t, err, ga.ErrInvalidConfiguration)

	cfg = smallConfig()
	cfg.CrossoverRate = 0
	res, err := ga.Run(single, cfg)
	require.NoError(t, err)
	assert.Equal(t, "1", res.Best.Labeling().String())
}

func TestEngine_Logging(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	cfg := smallConfig()
	cfg.Generations = 3
	_, err := ga.Run(scenario(t), cfg, ga.WithLogger(zap.New(obs)), ga.WithRunID("run-1"))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("population initialized").Len())
	assert.Equal(t, 3, logs.FilterMessage("generation").Len())
	finished := logs.FilterMessage("run finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "run-1", finished[0].ContextMap()["run_id"])
}

func TestSummarize(t *testing.T) {
	g := scenario(t)
	pop := ga.Population{
		ga.NewIndividual(g, mustParse(t, "0020110")), // 4, valid
		ga.NewIndividual(g, mustParse(t, "1111111")), // 7, valid
		ga.NewIndividual(g, mustParse(t, "0000000")), // 0 + 35, invalid
	}
	s := ga.Summarize(3, pop)
	assert.Equal(t, 3, s.Generation)
	assert.Equal(t, 4, s.BestFitness)
	assert.True(t, s.BestValid)
	assert.InDelta(t, 46.0/3, s.MeanFitness, 1e-9)
	assert.InDelta(t, 2.0/3, s.ValidityRate, 1e-9)
	assert.Greater(t, s.StdDevFitness, 0.0)
	assert.Same(t, pop[0], s.Best)

	assert.Equal(t, ga.GenerationStats{Generation: 1}, ga.Summarize(1, nil))
}

func mustParse(t testing.TB, s string) labeling.Labeling {
	t.Helper()
	l, err := labeling.Parse(s)
	require.NoError(t, err)
	return l
}

func fitnesses(p ga.Population) []int {
	out := make([]int, len(p))
	for i, ind := range p {
		out[i] = ind.Fitness()
	}
	return out
}

func ExampleRun() {
	g, _ := core.BuildIndexed(7, [][2]int{{0, 4}, {0, 2}, {1, 2}, {2, 3}, {5, 1}, {5, 4}, {6, 2}, {6, 3}})

	cfg := ga.DefaultConfig()
	cfg.PopulationSize = 30
	cfg.Generations = 20
	cfg.Replacement = ga.ReplacementPartition

	res, err := ga.Run(g, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(res.Stats), res.Best.Valid(), res.Best.Fitness() <= 4)

	// Output:
	// 20 true true
}

func BenchmarkRun(b *testing.B) {
	g := grid(b, 10)
	cfg := ga.DefaultConfig()
	cfg.Generations = 20
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ga.Run(g, cfg, ga.WithRunID("bench"))
	}
}
