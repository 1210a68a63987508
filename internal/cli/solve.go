package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planelp/program"
	"github.com/katalvlaran/planelp/programfile"
	"github.com/katalvlaran/planelp/solver"
)

func solveCmd() *cobra.Command {
	var (
		id     int
		all    bool
		seed   int64
		method string
		format string
	)

	c := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the programs of a definition file (all of them unless --id is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "pretty" && format != "json" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}
			algo, err := solver.ParseAlgo(method)
			if err != nil {
				return err
			}
			m, err := solver.ForAlgo(algo)
			if err != nil {
				return err
			}

			defs, err := programfile.Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("id") && !all {
				d, err := programfile.Find(defs, id)
				if err != nil {
					return err
				}
				defs = []programfile.Definition{d}
			}

			s := solver.New(m)
			outcomes := make([]outcome, 0, len(defs))
			for _, d := range defs {
				p, err := d.Program(program.WithSeed(seed))
				if err != nil {
					return err
				}
				if _, err = s.Solve(p); err != nil {
					return fmt.Errorf("program %s: %w", d.Label(), err)
				}
				outcomes = append(outcomes, outcome{def: d, prog: p})
			}

			return printOutcomes(cmd.OutOrStdout(), outcomes, format)
		},
	}

	c.Flags().IntVar(&id, "id", 0, "Solve only the program with this id")
	c.Flags().BoolVar(&all, "all", false, "Solve every program in the file (default)")
	c.Flags().Int64Var(&seed, "seed", 0, "Seed for the constraint order (0 = fixed default)")
	c.Flags().StringVar(&method, "method", solver.Seidel.String(), "Solving method: seidel|enumerate")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.MarkFlagsMutuallyExclusive("id", "all")

	return c
}

// outcome pairs a definition with its solved program.
type outcome struct {
	def  programfile.Definition
	prog *program.LinearProgram
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonOutcome struct {
	ID       int            `json:"id"`
	Name     string         `json:"name,omitempty"`
	Status   program.Status `json:"status"`
	Solution *jsonPoint     `json:"solution,omitempty"`
	Value    *float64       `json:"value,omitempty"`
}

func printOutcomes(w io.Writer, outs []outcome, format string) error {
	if format == "json" {
		payload := make([]jsonOutcome, 0, len(outs))
		for _, o := range outs {
			r := o.prog.Result()
			j := jsonOutcome{ID: o.def.ID, Name: o.def.Name, Status: r.Status}
			if r.Status == program.Optimal {
				v := r.Value
				j.Solution = &jsonPoint{X: r.Solution.X, Y: r.Solution.Y}
				j.Value = &v
			}
			payload = append(payload, j)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	for i, o := range outs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "program %s\n%s\n", o.def.Label(), o.prog)
	}
	return nil
}
