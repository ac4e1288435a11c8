package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pujadesk/pujadesk/auth"
	"github.com/pujadesk/pujadesk/client"
	"github.com/pujadesk/pujadesk/keystore"
)

var serviceURL string
var keystorePath string
var debug bool

func dbg(v interface{}) {
	if !debug {
		return
	}
	log.Debug().Interface("data", v).Msg("debug output")
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pujactl",
		Short: "Admin CLI for the Puja Proposition backend",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("PUJADESK_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := getEnv("PUJADESK_BASE_URL", "http://localhost:8080/api")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", defaultURL, "Base URL of the proposition backend")
	rootCmd.PersistentFlags().StringVar(&keystorePath, "keystore", "", "Path to the keystore file (default ~/.pujadesk/keystore.json)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListPropositionsCmd())
	rootCmd.AddCommand(newSetStatusCmd())
	rootCmd.AddCommand(newReviewCmd())
	rootCmd.AddCommand(newBulkStatusCmd())
	rootCmd.AddCommand(newSubmitFeedbackCmd())
	rootCmd.AddCommand(newListFeedbackCmd())
	rootCmd.AddCommand(newFeedbackSummaryCmd())
	rootCmd.AddCommand(newUploadPDFsCmd())
	rootCmd.AddCommand(newListPDFsCmd())
	rootCmd.AddCommand(newDeletePDFCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newPanchangCmd())
	rootCmd.AddCommand(newFocusCmd())
	rootCmd.AddCommand(newListExperimentsCmd())
	rootCmd.AddCommand(newAnalyzeCmd())

	return rootCmd
}

// newSDK wires the keystore, client, and auth store the same way for
// every command. The returned client already carries any persisted
// token from a previous login.
func newSDK() (*client.Client, *auth.Store, *keystore.Store, error) {
	path := keystorePath
	if path == "" {
		var err error
		path, err = keystore.DefaultPath()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to resolve keystore path: %w", err)
		}
	}
	ks, err := keystore.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open keystore: %w", err)
	}

	// Timeout and retry budget come from the PUJADESK_* environment;
	// the flag wins for the base URL (its default already reads
	// PUJADESK_BASE_URL).
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.BaseURL = serviceURL

	c := client.New(cfg,
		client.WithKeystore(ks),
		client.WithNotifier(client.LogNotifier()),
	)
	store := auth.NewStore(c, auth.WithOfflineFallback(true))
	return c, store, ks, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
