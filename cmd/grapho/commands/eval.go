package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/eetumartola/grapho/internal/core/domain"
	"github.com/eetumartola/grapho/internal/engine/eval"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <plan.yaml>",
		Short: "Evaluate a plan and print the resulting scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			asJSON, _ := cmd.Flags().GetBool("json")

			snapshot, report, err := c.components.App.Evaluate(cmd.Context(), args[0])
			if asJSON {
				if report == nil {
					report = &eval.Report{Structural: err}
				}
				if jsonErr := printJSONReport(cmd, report, snapshot); jsonErr != nil {
					return jsonErr
				}
				if err != nil {
					return err
				}
				if failed := report.Errored(); len(failed) > 0 {
					return zerr.With(zerr.New("evaluation finished with failed nodes"), "failed", len(failed))
				}
				if snapshot == nil {
					return zerr.New("evaluation produced no geometry")
				}
				return nil
			}

			if report != nil {
				printReport(cmd, report, verbose)
			}
			if err != nil {
				return err
			}

			if failed := report.Errored(); len(failed) > 0 {
				for _, e := range failed {
					cmd.PrintErrf("failed: %s: %v\n", e.Label, e.Err)
				}
				return zerr.With(zerr.New("evaluation finished with failed nodes"), "failed", len(failed))
			}
			if snapshot == nil {
				return zerr.New("evaluation produced no geometry")
			}

			cmd.Printf("scene: %d vertices, %d triangles, base color [%.2f %.2f %.2f]\n",
				len(snapshot.Mesh.Positions),
				len(snapshot.Mesh.Indices)/3,
				snapshot.BaseColor[0], snapshot.BaseColor[1], snapshot.BaseColor[2],
			)
			return nil
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Print one line per evaluated node")
	cmd.Flags().Bool("json", false, "Dump the evaluation report as JSON")
	return cmd
}

type jsonEntry struct {
	Node     string `json:"node"`
	Label    string `json:"label"`
	Status   string `json:"status"`
	CacheHit bool   `json:"cacheHit"`
	Duration string `json:"duration"`
	Error    string `json:"error,omitempty"`
	Origin   string `json:"origin,omitempty"`
}

type jsonScene struct {
	Vertices  int        `json:"vertices"`
	Triangles int        `json:"triangles"`
	BaseColor [3]float32 `json:"baseColor"`
}

type jsonReport struct {
	Structural string      `json:"structural,omitempty"`
	Entries    []jsonEntry `json:"entries"`
	Total      string      `json:"total"`
	Scene      *jsonScene  `json:"scene,omitempty"`
}

func printJSONReport(cmd *cobra.Command, report *eval.Report, snapshot *domain.SceneSnapshot) error {
	out := jsonReport{
		Entries: make([]jsonEntry, 0, len(report.Entries)),
		Total:   report.Total.String(),
	}
	if report.Structural != nil {
		out.Structural = report.Structural.Error()
	}
	for _, e := range report.Entries {
		entry := jsonEntry{
			Node:     e.Node.String(),
			Label:    e.Label,
			Status:   string(e.Status),
			CacheHit: e.CacheHit,
			Duration: e.Duration.String(),
		}
		if e.Err != nil {
			entry.Error = e.Err.Error()
		}
		if !e.Origin.IsZero() {
			entry.Origin = e.Origin.String()
		}
		out.Entries = append(out.Entries, entry)
	}
	if snapshot != nil {
		out.Scene = &jsonScene{
			Vertices:  len(snapshot.Mesh.Positions),
			Triangles: len(snapshot.Mesh.Indices) / 3,
			BaseColor: snapshot.BaseColor,
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printReport(cmd *cobra.Command, report *eval.Report, verbose bool) {
	if verbose {
		for _, e := range report.Entries {
			marker := " "
			if e.CacheHit {
				marker = "*"
			}
			cmd.Printf("%s %-10s %-20s %s\n", marker, e.Status, e.Label, e.Duration)
		}
	}

	hits := 0
	for _, e := range report.Entries {
		if e.CacheHit {
			hits++
		}
	}
	cmd.Printf("evaluated %d nodes (%d cached) in %s\n", len(report.Entries), hits, report.Total)

	if slowest, ok := report.SlowestNode(); ok && verbose {
		cmd.Printf("slowest: %s (%s)\n", slowest.Label, slowest.Duration)
	}
}
