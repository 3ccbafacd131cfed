package main

import (
	"fmt"
	"os"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/config"
	"github.com/diegoclair/hybrid-attendance-bot/internal/database"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/compliance"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/service"
	"github.com/diegoclair/hybrid-attendance-bot/internal/logger"
	"github.com/diegoclair/hybrid-attendance-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	dbPath   string
	logLevel string
	userID   string

	// report flags
	nowFlag    string
	jsonOutput bool

	// mark/clear flags
	dateFlag     string
	categoryFlag string

	zl *zap.Logger
	db *database.DB
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "attendancectl",
	Short: "Inspect and edit hybrid attendance logs",
	Long: `attendancectl works directly on the attendance database used by the bot.

It can print the 12-week compliance report of a user at any date and mark or
clear single days.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		zl, err = logger.New(logLevel)
		if err != nil {
			return err
		}

		db, err = database.New(dbPath)
		if err != nil {
			return err
		}
		return sqlite.Migrate(db.DB())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		_ = zl.Sync()
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the weekly percentages, badges and belt of a user",
	Long: `Print the compliance report of a user.

With --now the report is computed as if today were that date, which makes
historic reports reproducible.`,
	RunE: runReport,
}

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark where a user worked on a day",
	RunE:  runMark,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the mark of a day, it counts as remote again",
	RunE:  runClear,
}

func init() {
	// .env has to be loaded before the flag defaults are read
	_ = godotenv.Load()
	defaults := config.Load()

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaults.DatabasePath, "Path to the SQLite database (or set DATABASE_PATH env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "Slack user ID (required)")
	_ = rootCmd.MarkPersistentFlagRequired("user")

	reportCmd.Flags().StringVar(&nowFlag, "now", "", "Report as of this date, YYYY-MM-DD (default: today)")
	reportCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")

	markCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Day to mark, YYYY-MM-DD (default: today)")
	markCmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "on-campus, remote or out-of-office (required)")
	_ = markCmd.MarkFlagRequired("category")

	clearCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Day to clear, YYYY-MM-DD (default: today)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(clearCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func attendanceService(now func() time.Time) contract.AttendanceService {
	return service.NewAttendance(database.NewInstance(db), now, zl)
}

func runReport(cmd *cobra.Command, args []string) error {
	clock, err := parseNow(nowFlag, time.Now)
	if err != nil {
		return err
	}

	report, err := attendanceService(clock).GetReport(cmd.Context(), userID)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeReportJSON(cmd.OutOrStdout(), report)
	}
	return writeReport(cmd.OutOrStdout(), userID, report)
}

func runMark(cmd *cobra.Command, args []string) error {
	category, ok := entity.ParseWorkCategory(categoryFlag)
	if !ok {
		return fmt.Errorf("%w: %q", service.ErrInvalidCategory, categoryFlag)
	}

	entry, err := attendanceService(time.Now).MarkDay(cmd.Context(), userID, dateFlag, category)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s marked as %s for %s\n", entry.DateKey, entry.Category, entry.UserID)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	if err := attendanceService(time.Now).ClearDay(cmd.Context(), userID, dateFlag); err != nil {
		return err
	}

	day := dateFlag
	if day == "" {
		day = compliance.EncodeDateKey(time.Now())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s cleared for %s\n", day, userID)
	return nil
}
