package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/edgelist"
	"github.com/katalvlaran/prdga/ga"
)

type instance struct {
	Name    string  `json:"name"`
	Order   int     `json:"order"`
	Size    int     `json:"size"`
	Density float64 `json:"density"`
}

func instanceInfo(inst *edgelist.Instance, g *core.Graph) instance {
	return instance{Name: inst.Name, Order: g.Order(), Size: g.Size(), Density: g.Stats().Density}
}

type trialReport struct {
	Trial       int            `json:"trial"`
	Seed        int64          `json:"seed"`
	RunID       string         `json:"run_id"`
	Best        *ga.Individual `json:"best"`
	Generations int            `json:"generations"`
	Elapsed     float64        `json:"elapsed_seconds"`
}

func newTrialReport(trial int, seed int64, res *ga.Result) trialReport {
	return trialReport{
		Trial:       trial,
		Seed:        seed,
		RunID:       res.RunID,
		Best:        res.Best,
		Generations: len(res.Stats),
		Elapsed:     res.Elapsed.Seconds(),
	}
}

type report struct {
	Instance instance      `json:"instance"`
	Config   ga.Config     `json:"config"`
	Trials   []trialReport `json:"trials"`
}

func (r report) write(w io.Writer, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(w, "instance %s: n=%d m=%d density=%.4f\n",
		r.Instance.Name, r.Instance.Order, r.Instance.Size, r.Instance.Density)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TRIAL\tSEED\tFITNESS\tWEIGHT\tVALID\tELAPSED\tLABELING")
	for _, t := range r.Trials {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%t\t%.3fs\t%s\n",
			t.Trial, t.Seed, t.Best.Fitness(), t.Best.Weight(), t.Best.Valid(), t.Elapsed, t.Best)
	}
	return tw.Flush()
}

var csvHeader = []string{"graph_name", "graph_order", "graph_size", "density", "fitness_value", "elapsed_time(seconds)"}

// appendCSV adds one row per trial, writing the header when the file is new.
func appendCSV(path string, r report) error {
	_, statErr := os.Stat(path)
	fresh := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	for _, t := range r.Trials {
		row := []string{
			r.Instance.Name,
			strconv.Itoa(r.Instance.Order),
			strconv.Itoa(r.Instance.Size),
			strconv.FormatFloat(r.Instance.Density, 'g', 6, 64),
			strconv.Itoa(t.Best.Fitness()),
			strconv.FormatFloat(t.Elapsed, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	return f.Close()
}
