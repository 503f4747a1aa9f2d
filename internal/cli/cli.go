package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/luminadental/lumina/internal/client"
	"github.com/luminadental/lumina/internal/logging"
	"github.com/luminadental/lumina/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger() {
	logConfig := &logging.Config{
		Level:      "info",
		File:       "~/.lumina/client.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger = logging.GetLogger()
}

func apiClient(cmd *cobra.Command) *client.Client {
	server, _ := cmd.Flags().GetString("server")
	return client.New(server)
}

var rootCmd = &cobra.Command{
	Use:   "lumina",
	Short: "Lumina Dental CLI",
	Long:  `Lumina Dental CLI talks to the clinic's website API: check server health, browse the smile gallery, and send contact messages from the terminal.`,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check API server health",
	Run: func(cmd *cobra.Command, args []string) {
		c := apiClient(cmd)

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Checking server health..."
		s.Start()
		health, err := c.Health(context.Background())
		s.Stop()

		if err != nil {
			logger.Error("Health check failed: %v", err)
			os.Exit(1)
		}

		logger.Info("Status:  %s", health.Status)
		logger.Info("Version: %s", health.Version)
		logger.Info("Uptime:  %.0f seconds", health.Uptime)
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a contact message to the clinic",
	Long: `Send a message through the clinic's contact pipeline. The clinic is
notified by email and you receive an auto-reply confirmation.

Example:
  lumina contact --name "Jane Doe" --email jane@example.com --message "I'd like to book a cleaning."`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		message, _ := cmd.Flags().GetString("message")

		c := apiClient(cmd)

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending your message..."
		s.Start()
		result, err := c.SubmitContact(context.Background(), &client.ContactSubmission{
			Name:    name,
			Email:   email,
			Phone:   phone,
			Message: message,
		})
		s.Stop()

		if err != nil {
			logger.Error("Failed to send message: %v", err)
			os.Exit(1)
		}

		if !result.Success {
			logger.Error("Message rejected: %s", result.Message)
			os.Exit(1)
		}

		logger.Info("%s", result.Message)
	},
}

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "List smile gallery cases",
	Run: func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("category")

		c := apiClient(cmd)

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Fetching gallery..."
		s.Start()
		items, err := c.Gallery(context.Background(), category)
		s.Stop()

		if err != nil {
			logger.Error("Failed to fetch gallery: %v", err)
			os.Exit(1)
		}

		if len(items) == 0 {
			logger.Info("No cases found for category %q", category)
			return
		}

		for _, item := range items {
			logger.Info("[%d] %s (%s) - %s, %s", item.ID, item.Title, item.Category, item.Duration, item.Result)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Info("Lumina CLI version: %s", version.Info())
	},
}

func init() {
	initLogger()

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("server", "", "API server base URL (default: $LUMINA_API_BASE_URL or http://localhost:3001)")

	contactCmd.Flags().String("name", "", "Your full name")
	contactCmd.Flags().String("email", "", "Your email address")
	contactCmd.Flags().String("phone", "", "Your phone number (optional)")
	contactCmd.Flags().String("message", "", "The message to send")
	contactCmd.MarkFlagRequired("name")
	contactCmd.MarkFlagRequired("email")
	contactCmd.MarkFlagRequired("message")

	galleryCmd.Flags().String("category", "", "Filter by treatment category (e.g. COSMETIC)")
}

// Execute runs the root command.
func Execute() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}
