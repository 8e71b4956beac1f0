// boxctl is an operator CLI over the gobox SDK: inspect collaborations,
// manage the collaboration domain allowlist, and administer terms of service.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stackmint/gobox"
)

var baseURL string
var token string
var debug bool

const requestTimeout = 15 * time.Second

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
		Use:   "boxctl",
		Short: "boxctl manages collaborations, allowlists and terms of service",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("GOBOX_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := getEnv("BOX_BASE_URL", gobox.DefaultBaseURL)
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", defaultURL, "API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("BOX_TOKEN"), "API access token (defaults to BOX_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newGetCollaborationCmd())
	rootCmd.AddCommand(newPendingCollaborationsCmd())
	rootCmd.AddCommand(newDeleteCollaborationCmd())
	rootCmd.AddCommand(newAddAllowlistDomainCmd())
	rootCmd.AddCommand(newListAllowlistCmd())
	rootCmd.AddCommand(newListTermsOfServicesCmd())
	rootCmd.AddCommand(newSetTOSStatusCmd())

	return rootCmd
}

func newClient() (*gobox.Client, error) {
	return gobox.New(baseURL, token, gobox.WithDebugLogging(debug))
}

func newGetCollaborationCmd() *cobra.Command {
	var id string
	var fields []string

	cmd := &cobra.Command{
		Use:   "get-collaboration",
		Short: "Retrieve a collaboration by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			collab, err := c.GetCollaboration(ctx, id, fields...)
			if err != nil {
				log.Error().Err(err).Str("collaboration_id", id).Msg("get collaboration failed")
				return err
			}
			fmt.Printf("Collaboration %s: role=%s status=%s\n", collab.ID, collab.Role, collab.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Collaboration ID (required)")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Response fields to include")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newPendingCollaborationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending-collaborations",
		Short: "List collaborations awaiting a response",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			pending, err := c.GetPendingCollaborations(ctx)
			if err != nil {
				log.Error().Err(err).Msg("pending collaborations failed")
				return err
			}
			for _, collab := range pending.Entries {
				item := ""
				if collab.Item != nil {
					item = collab.Item.Name
				}
				fmt.Printf("%s\trole=%s\titem=%s\n", collab.ID, collab.Role, item)
			}
			fmt.Printf("Total: %d\n", pending.TotalCount)
			return nil
		},
	}
}

func newDeleteCollaborationCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete-collaboration",
		Short: "Remove a collaboration",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := c.DeleteCollaboration(ctx, id); err != nil {
				log.Error().Err(err).Str("collaboration_id", id).Msg("delete collaboration failed")
				return err
			}
			fmt.Printf("Collaboration deleted: %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Collaboration ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newAddAllowlistDomainCmd() *cobra.Command {
	var domain, direction string

	cmd := &cobra.Command{
		Use:   "add-allowlist-domain",
		Short: "Add a domain to the collaboration allowlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			entry, err := c.CreateAllowlistEntry(ctx, domain, gobox.AllowlistDirection(direction))
			if err != nil {
				log.Error().Err(err).Str("domain", domain).Msg("add allowlist domain failed")
				return err
			}
			fmt.Printf("Allowlist entry created: %s (%s, %s)\n", entry.ID, entry.Domain, entry.Direction)
			return nil
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "Domain to allow (required)")
	cmd.Flags().StringVar(&direction, "direction", string(gobox.DirectionBoth), "inbound, outbound or both")
	_ = cmd.MarkFlagRequired("domain")
	return cmd
}

func newListAllowlistCmd() *cobra.Command {
	var limit int
	var marker string

	cmd := &cobra.Command{
		Use:   "list-allowlist",
		Short: "List collaboration allowlist entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			list, err := c.ListAllowlistEntries(ctx, gobox.ListOptions{Limit: limit, Marker: marker})
			if err != nil {
				log.Error().Err(err).Msg("list allowlist failed")
				return err
			}
			for _, entry := range list.Entries {
				fmt.Printf("%s\t%s\t%s\n", entry.ID, entry.Domain, entry.Direction)
			}
			if list.NextMarker != "" {
				fmt.Printf("Next marker: %s\n", list.NextMarker)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (0 uses the server default)")
	cmd.Flags().StringVar(&marker, "marker", "", "Continuation marker from a previous page")
	return cmd
}

func newListTermsOfServicesCmd() *cobra.Command {
	var tosType string

	cmd := &cobra.Command{
		Use:   "list-tos",
		Short: "List terms-of-service records",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			list, err := c.ListTermsOfServices(ctx, gobox.TermsOfServiceType(tosType))
			if err != nil {
				log.Error().Err(err).Msg("list terms of services failed")
				return err
			}
			for _, tos := range list.Entries {
				fmt.Printf("%s\t%s\t%s\n", tos.ID, tos.TOSType, tos.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tosType, "type", "", "Filter by type: managed or external")
	return cmd
}

func newSetTOSStatusCmd() *cobra.Command {
	var tosID, userID string
	var accepted bool

	cmd := &cobra.Command{
		Use:   "set-tos-status",
		Short: "Record or update a user's terms-of-service acceptance",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			status, err := c.SetTermsOfServiceUserStatus(ctx, tosID, userID, accepted)
			if err != nil {
				log.Error().Err(err).Str("tos_id", tosID).Str("user_id", userID).Msg("set tos status failed")
				return err
			}
			fmt.Printf("Status %s: accepted=%t\n", status.ID, status.IsAccepted)
			return nil
		},
	}

	cmd.Flags().StringVar(&tosID, "tos-id", "", "Terms-of-service ID (required)")
	cmd.Flags().StringVar(&userID, "user-id", "", "User ID (required)")
	cmd.Flags().BoolVar(&accepted, "accepted", true, "Whether the user accepted")
	_ = cmd.MarkFlagRequired("tos-id")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
