package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pujadesk/pujadesk/client"
)

func newSubmitFeedbackCmd() *cobra.Command {
	var month, year, rating int
	var propositionID, comments string

	cmd := &cobra.Command{
		Use:   "submit-feedback",
		Short: "Record reviewer feedback for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			entry, err := c.SubmitFeedback(ctx, client.FeedbackRequest{
				PropositionID: propositionID,
				Month:         month,
				Year:          year,
				Rating:        rating,
				Comments:      comments,
			})
			if err != nil {
				if fields := client.FieldErrors(err); fields != nil {
					for k, v := range fields {
						fmt.Printf("%s: %s\n", k, v)
					}
					return fmt.Errorf("invalid request")
				}
				return err
			}
			fmt.Printf("Feedback recorded: %s\n", entry.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (required)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (required)")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating 1-5 (required)")
	cmd.Flags().StringVar(&propositionID, "proposition-id", "", "Proposition the feedback refers to")
	cmd.Flags().StringVar(&comments, "comments", "", "Free-form comments")

	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func newListFeedbackCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "list-feedback",
		Short: "List feedback entries for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			resp, err := c.ListFeedback(ctx, month, year)
			if err != nil {
				return err
			}
			for _, f := range resp.Feedback {
				fmt.Printf("%s\trating=%d\t%s\n", f.ID, f.Rating, f.Comments)
			}
			fmt.Printf("Total: %d\n", resp.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (required)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (required)")

	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func newFeedbackSummaryCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "feedback-summary",
		Short: "Show the aggregated rating summary for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			s, err := c.GetFeedbackSummary(ctx, month, year)
			if err != nil {
				return err
			}
			fmt.Printf("%d/%d: %d entries, average %.2f\n", s.Month, s.Year, s.Count, s.AverageRating)
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (required)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (required)")

	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func newUploadPDFsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload-pdfs [files...]",
		Short: "Upload reference PDF documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}

			var files []client.UploadFile
			var handles []*os.File
			defer func() {
				for _, h := range handles {
					_ = h.Close()
				}
			}()
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				handles = append(handles, f)
				info, err := f.Stat()
				if err != nil {
					return err
				}
				files = append(files, client.UploadFile{
					Name:    filepath.Base(path),
					Size:    info.Size(),
					Content: f,
				})
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			start := time.Now()
			resp, err := c.UploadPDFs(ctx, files, func(sent, total int64) {
				log.Debug().Int64("sent", sent).Int64("total", total).Msg("upload progress")
			})
			elapsed := time.Since(start)

			if err != nil {
				if fields := client.FieldErrors(err); fields != nil {
					for k, v := range fields {
						fmt.Printf("%s: %s\n", k, v)
					}
					return fmt.Errorf("invalid upload")
				}
				log.Error().Err(err).Dur("elapsed", elapsed).Msg("upload failed")
				return err
			}

			log.Debug().Int("count", resp.Count).Dur("elapsed", elapsed).Msg("upload completed")
			fmt.Printf("Uploaded: %d\n", resp.Count)
			return nil
		},
	}
	return cmd
}

func newListPDFsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-pdfs",
		Short: "List uploaded reference documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			resp, err := c.ListPDFs(ctx)
			if err != nil {
				return err
			}
			for _, d := range resp.Documents {
				fmt.Printf("%s\t%s\t%d bytes\n", d.ID, d.FileName, d.SizeBytes)
			}
			fmt.Printf("Total: %d\n", resp.Count)
			return nil
		},
	}
	return cmd
}

func newDeletePDFCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete-pdf",
		Short: "Delete an uploaded reference document",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			if err := c.DeletePDF(ctx, id); err != nil {
				return err
			}
			fmt.Println("Document deleted")
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Document ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newDashboardCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the merged dashboard view model in JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, _, err := newSDK()
			if err != nil {
				return err
			}

			log.Debug().
				Int("month", month).
				Int("year", year).
				Str("service_url", serviceURL).
				Msg("assembling dashboard")

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			start := time.Now()
			data, err := c.GetDashboardData(ctx, month, year)
			elapsed := time.Since(start)

			if err != nil {
				log.Error().Err(err).Dur("elapsed", elapsed).Msg("dashboard failed")
				return err
			}

			log.Debug().
				Int("activity", len(data.RecentActivity)).
				Int("upcoming", len(data.UpcomingPujas)).
				Dur("elapsed", elapsed).
				Msg("dashboard assembled")

			b, _ := json.MarshalIndent(data, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month 1-12")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year")

	return cmd
}
