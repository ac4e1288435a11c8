package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pujadesk/pujadesk/client"
)

func newGenerateCmd() *cobra.Command {
	var month, year int
	var dates, themes []string
	var instructions string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate propositions for the given dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}

			log.Debug().
				Int("month", month).
				Int("year", year).
				Int("dates", len(dates)).
				Str("service_url", serviceURL).
				Msg("generating propositions")

			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			start := time.Now()
			props, err := c.GeneratePropositions(ctx, client.GenerateRequest{
				Month:        month,
				Year:         year,
				Dates:        dates,
				FocusThemes:  themes,
				Instructions: instructions,
			})
			elapsed := time.Since(start)

			if err != nil {
				if fields := client.FieldErrors(err); fields != nil {
					for k, v := range fields {
						fmt.Printf("%s: %s\n", k, v)
					}
					return fmt.Errorf("invalid request")
				}
				log.Error().Err(err).
					Int("month", month).
					Int("year", year).
					Dur("elapsed", elapsed).
					Msg("generate failed")
				return err
			}

			log.Debug().
				Int("count", len(props)).
				Dur("elapsed", elapsed).
				Msg("generate completed")

			dbg(props)
			for _, p := range props {
				fmt.Printf("%s\t%s\t%s\t%s\n", p.ID, p.Date, p.Deity, p.Status)
			}
			fmt.Printf("Generated: %d\n", len(props))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (required)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (required)")
	cmd.Flags().StringSliceVar(&dates, "date", nil, "Puja date, repeatable (required)")
	cmd.Flags().StringSliceVar(&themes, "theme", nil, "Focus theme, repeatable")
	cmd.Flags().StringVar(&instructions, "instructions", "", "Free-form generation instructions")

	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newListPropositionsCmd() *cobra.Command {
	var month, year, page, limit int
	var status, deity string

	cmd := &cobra.Command{
		Use:   "list-propositions",
		Short: "List propositions matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			start := time.Now()
			var resp *client.ListPropositionsResponse
			err = c.Retry(ctx, func(ctx context.Context) error {
				var lerr error
				resp, lerr = c.ListPropositions(ctx, client.ListPropositionsParams{
					Month:  month,
					Year:   year,
					Status: client.PropositionStatus(status),
					Deity:  deity,
					Page:   page,
					Limit:  limit,
				})
				return lerr
			})
			elapsed := time.Since(start)

			if err != nil {
				log.Error().Err(err).Dur("elapsed", elapsed).Msg("list propositions failed")
				return err
			}

			log.Debug().
				Int("total", resp.Total).
				Int("returned", len(resp.Propositions)).
				Dur("elapsed", elapsed).
				Msg("list propositions completed")

			for _, p := range resp.Propositions {
				fmt.Printf("%s\t%s\t%s\t%s\n", p.ID, p.Date, p.Deity, p.Status)
			}
			fmt.Printf("Total: %d\n", resp.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Filter by month")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by year")
	cmd.Flags().StringVar(&status, "status", "", "Filter by lifecycle status")
	cmd.Flags().StringVar(&deity, "deity", "", "Filter by deity")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size")

	return cmd
}

func newSetStatusCmd() *cobra.Command {
	var id, status string

	cmd := &cobra.Command{
		Use:   "set-status",
		Short: "Change a proposition's lifecycle status",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			p, err := c.UpdatePropositionStatus(ctx, id, client.PropositionStatus(status))
			if err != nil {
				return err
			}
			fmt.Printf("Proposition %s is now %s\n", p.ID, p.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Proposition ID (required)")
	cmd.Flags().StringVar(&status, "status", "", "New status (required)")

	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newReviewCmd() *cobra.Command {
	var id, status, notes string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Record a review decision with optional notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			p, err := c.SubmitReview(ctx, id, client.ReviewRequest{
				Status:    client.PropositionStatus(status),
				TeamNotes: notes,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Reviewed %s: %s\n", p.ID, p.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Proposition ID (required)")
	cmd.Flags().StringVar(&status, "status", "", "Review decision (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Team notes")

	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newBulkStatusCmd() *cobra.Command {
	var ids []string
	var status string

	cmd := &cobra.Command{
		Use:   "bulk-status",
		Short: "Change the status of several propositions at once",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			updated, err := c.BulkUpdateStatus(ctx, client.BulkStatusRequest{
				IDs:    ids,
				Status: client.PropositionStatus(status),
			})
			if err != nil {
				if fields := client.FieldErrors(err); fields != nil {
					for _, v := range fields {
						fmt.Println(v)
					}
					return fmt.Errorf("invalid request")
				}
				return err
			}
			fmt.Printf("Updated: %d\n", updated)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ids, "id", nil, "Proposition ID, repeatable (required)")
	cmd.Flags().StringVar(&status, "status", "", "New status (required)")

	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newPanchangCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "panchang",
		Short: "Print the panchang calendar data for a month in JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			raw, err := c.GetPanchang(ctx, month, year)
			if err != nil {
				return err
			}
			var buf strings.Builder
			enc := json.NewEncoder(&buf)
			enc.SetIndent("", "  ")
			_ = enc.Encode(json.RawMessage(raw))
			fmt.Print(buf.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (required)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (required)")

	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func newFocusCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Show suggested focus themes for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			s, err := c.GetFocusSuggestion(ctx, month, year)
			if err != nil {
				return err
			}
			dbg(s)
			b, _ := json.MarshalIndent(s, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (required)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (required)")

	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func newListExperimentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-experiments",
		Short: "List the running proposition experiments",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			exps, err := c.ListExperiments(ctx)
			if err != nil {
				return err
			}
			for _, e := range exps {
				fmt.Printf("%s\t%s\t%s\n", e.ID, e.Name, e.Status)
			}
			fmt.Printf("Total: %d\n", len(exps))
			return nil
		},
	}
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var month, year int
	var focus string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Request a performance analysis for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			res, err := c.RequestAnalysis(ctx, client.AnalysisRequest{
				Month: month,
				Year:  year,
				Focus: focus,
			})
			if err != nil {
				return err
			}
			dbg(res)
			b, _ := json.MarshalIndent(res, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (required)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (required)")
	cmd.Flags().StringVar(&focus, "focus", "", "Optional analysis focus")

	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
