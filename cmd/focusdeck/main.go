package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"focusdeck/internal/bootstrap"
	settingsdto "focusdeck/internal/modules/settings/dto"
	"focusdeck/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "focusdeck",
		Short:         "Course-based focus timer and study tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", "", "data directory (default ~/.focusdeck)")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newCourseCmd(&dataPath))
	root.AddCommand(newTimerCmd(&dataPath))
	root.AddCommand(newStatsCmd(&dataPath))
	root.AddCommand(newReindexCmd(&dataPath))
	root.AddCommand(newSettingsCmd(&dataPath))
	root.AddCommand(newProfileCmd(&dataPath))
	root.AddCommand(newExportCmd(&dataPath))
	root.AddCommand(newNotifyCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run focusdeck terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newCourseCmd(dataPath *string) *cobra.Command {
	course := &cobra.Command{Use: "course", Short: "Manage courses"}

	var color string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a course",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.CourseCLI.Create(context.Background(), strings.Join(args, " "), color)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) color=%s\n", out.Name, out.ID, out.Color)
			return nil
		},
	}
	add.Flags().StringVar(&color, "color", "", "hex color, e.g. #a6e3a1")

	course.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			courses, err := app.CourseCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no courses")
				return nil
			}
			for _, c := range courses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", c.ID, c.Name, c.Color)
			}
			return nil
		},
	})

	var renameID, renameName string
	rename := &cobra.Command{
		Use:   "rename --id <id> --name <name>",
		Short: "Rename a course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(renameID) == "" || strings.TrimSpace(renameName) == "" {
				return fmt.Errorf("--id and --name are required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.CourseCLI.Rename(context.Background(), renameID, renameName)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "renamed to %s\n", out.Name)
			return nil
		},
	}
	rename.Flags().StringVar(&renameID, "id", "", "course id")
	rename.Flags().StringVar(&renameName, "name", "", "new name")
	course.AddCommand(rename)

	var recolorID, recolorColor string
	recolor := &cobra.Command{
		Use:   "recolor --id <id> --color <color>",
		Short: "Change a course color",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(recolorID) == "" || strings.TrimSpace(recolorColor) == "" {
				return fmt.Errorf("--id and --color are required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.CourseCLI.Recolor(context.Background(), recolorID, recolorColor)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s color=%s\n", out.Name, out.Color)
			return nil
		},
	}
	recolor.Flags().StringVar(&recolorID, "id", "", "course id")
	recolor.Flags().StringVar(&recolorColor, "color", "", "hex color")
	course.AddCommand(recolor)

	var deleteID string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a course and its recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.CourseCLI.Delete(context.Background(), deleteID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s, removed %d sessions\n", out.Name, out.SessionsRemoved)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "course id")
	course.AddCommand(deleteCmd)

	course.AddCommand(add)
	return course
}

func newTimerCmd(dataPath *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Focus timer lifecycle"}

	var courseID string
	var minutes int
	start := &cobra.Command{
		Use:   "start --course-id <id>",
		Short: "Start a countdown for a course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(courseID) == "" {
				return fmt.Errorf("--course-id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			target := minutes * 60
			if minutes == 0 {
				settings, err := app.SettingsCLI.Get(context.Background())
				if err != nil {
					return err
				}
				target = settings.DefaultDurationMin * 60
			}
			out, err := app.SessionCLI.Start(context.Background(), courseID, target)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "started %s for %dmin at %s\n", out.CourseName, out.TargetSeconds/60, out.StartedAt.Format("15:04:05"))
			return nil
		},
	}
	start.Flags().StringVar(&courseID, "course-id", "", "course id")
	start.Flags().IntVar(&minutes, "minutes", 0, "target duration in minutes (default from settings)")
	timer.AddCommand(start)

	timer.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the active countdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s elapsed=%s remaining=%s target=%dmin\n",
				out.CourseName, out.Phase, clock(out.ElapsedSeconds), clock(out.RemainingSeconds), out.TargetSeconds/60)
			if out.Recorded {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session recorded: %s\n", out.SessionID)
			}
			return nil
		},
	})

	timer.AddCommand(simpleStatusCmd(dataPath, "pause", "Pause the active countdown", func(app *bootstrap.App, ctx context.Context) (string, error) {
		out, err := app.SessionCLI.Pause(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("paused at %s", clock(out.ElapsedSeconds)), nil
	}))
	timer.AddCommand(simpleStatusCmd(dataPath, "resume", "Resume a paused countdown", func(app *bootstrap.App, ctx context.Context) (string, error) {
		out, err := app.SessionCLI.Resume(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("running, %s remaining", clock(out.RemainingSeconds)), nil
	}))
	timer.AddCommand(simpleStatusCmd(dataPath, "reset", "Reset the countdown without recording", func(app *bootstrap.App, ctx context.Context) (string, error) {
		_, err := app.SessionCLI.Reset(ctx)
		if err != nil {
			return "", err
		}
		return "reset", nil
	}))

	timer.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "End the countdown early",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Stop(context.Background())
			if err != nil {
				return err
			}
			if !out.Recorded {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "stopped, nothing recorded")
				return nil
			}
			kind := "full"
			if out.IsPartial {
				kind = "partial"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s session %s (%s of %s)\n",
				kind, out.SessionID, clock(out.DurationSeconds), clock(out.TargetSeconds))
			return nil
		},
	})

	return timer
}

func simpleStatusCmd(dataPath *string, use, short string, run func(*bootstrap.App, context.Context) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			msg, err := run(app, context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newStatsCmd(dataPath *string) *cobra.Command {
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregated study statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			o, err := app.StatsCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "total: %s\n", clock(o.TotalSeconds))
			_, _ = fmt.Fprintf(out, "sessions: %d full, %d partial\n", o.FullSessions, o.PartialSessions)
			_, _ = fmt.Fprintf(out, "average: %s\n", clock(o.AverageSeconds))
			_, _ = fmt.Fprintf(out, "streak: %d day(s)\n", o.StreakDays)
			if o.MostStudied != nil {
				_, _ = fmt.Fprintf(out, "most studied: %s (%s)\n", o.MostStudied.CourseName, clock(o.MostStudied.DurationSeconds))
			}
			for _, share := range o.Breakdown {
				_, _ = fmt.Fprintf(out, "  %s\t%s\t%d sessions\t%.1f%%\n", share.CourseName, clock(share.DurationSeconds), share.Sessions, share.Percent)
			}
			return nil
		},
	}

	var days int
	var fromIndex bool
	recent := &cobra.Command{
		Use:   "recent",
		Short: "List sessions in the trailing window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			sessions, err := app.StatsCLI.Recent(context.Background(), days, fromIndex)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				kind := "full"
				if s.IsPartial {
					kind = "partial"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					s.StartAt.Local().Format("2006-01-02 15:04"), s.CourseName, clock(s.DurationSeconds), kind)
			}
			return nil
		},
	}
	recent.Flags().IntVar(&days, "days", 7, "window in days")
	recent.Flags().BoolVar(&fromIndex, "from-index", false, "answer from the sqlite index instead of the collection")
	stats.AddCommand(recent)

	return stats
}

func newReindexCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite session index from the collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.StatsCLI.Reindex(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "indexed %d sessions\n", out.Indexed)
			return nil
		},
	}
}

func newSettingsCmd(dataPath *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Show and change settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			s, err := app.SettingsCLI.Get(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "theme: %s\n", s.ThemeMode)
			_, _ = fmt.Fprintf(out, "default duration: %d min\n", s.DefaultDurationMin)
			_, _ = fmt.Fprintf(out, "notifications: %t\n", s.NotificationsEnabled)
			_, _ = fmt.Fprintf(out, "reminder: %s\n", s.ReminderTime)
			_, _ = fmt.Fprintf(out, "quiet hours: %s-%s\n", s.QuietHoursStart, s.QuietHoursEnd)
			return nil
		},
	})

	var theme, reminder, quietStart, quietEnd string
	var duration int
	var notifications bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Update settings fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			input := settingsdto.UpdateInput{}
			if cmd.Flags().Changed("theme") {
				input.ThemeMode = &theme
			}
			if cmd.Flags().Changed("duration") {
				input.DefaultDurationMin = &duration
			}
			if cmd.Flags().Changed("notifications") {
				input.NotificationsEnabled = &notifications
			}
			if cmd.Flags().Changed("reminder") {
				input.ReminderTime = &reminder
			}
			if cmd.Flags().Changed("quiet-start") {
				input.QuietHoursStart = &quietStart
			}
			if cmd.Flags().Changed("quiet-end") {
				input.QuietHoursEnd = &quietEnd
			}
			s, err := app.SettingsCLI.Update(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme=%s duration=%dmin notifications=%t\n", s.ThemeMode, s.DefaultDurationMin, s.NotificationsEnabled)
			return nil
		},
	}
	set.Flags().StringVar(&theme, "theme", "", "theme mode: dark|light")
	set.Flags().IntVar(&duration, "duration", 0, "default duration in minutes (1-480)")
	set.Flags().BoolVar(&notifications, "notifications", true, "enable notifications")
	set.Flags().StringVar(&reminder, "reminder", "", "daily reminder time HH:MM (empty to clear)")
	set.Flags().StringVar(&quietStart, "quiet-start", "", "quiet hours start HH:MM")
	set.Flags().StringVar(&quietEnd, "quiet-end", "", "quiet hours end HH:MM")
	settings.AddCommand(set)

	return settings
}

func newProfileCmd(dataPath *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Local profile"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			p, err := app.SettingsCLI.Profile(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\nsince: %s\n", p.Name, p.CreatedAt.Format("2006-01-02"))
			return nil
		},
	})

	profile.AddCommand(&cobra.Command{
		Use:   "set-name <name>",
		Short: "Set the profile name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			p, err := app.SettingsCLI.SetProfileName(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name set to %s\n", p.Name)
			return nil
		},
	})

	return profile
}

func newExportCmd(dataPath *string) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Export study data"}

	var reportOut string
	report := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown study report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.Report(context.Background(), reportOut)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d sessions)\n", out.Path, out.Sessions)
			return nil
		},
	}
	report.Flags().StringVar(&reportOut, "out", "", "output path (default dated filename)")
	export.AddCommand(report)

	var csvOut string
	csv := &cobra.Command{
		Use:   "csv",
		Short: "Write all sessions as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.CSV(context.Background(), csvOut)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d rows)\n", out.Path, out.Rows)
			return nil
		},
	}
	csv.Flags().StringVar(&csvOut, "out", "", "output path (default dated filename)")
	export.AddCommand(csv)

	return export
}

func newNotifyCmd(dataPath *string) *cobra.Command {
	notify := &cobra.Command{Use: "notify", Short: "Notifier plugin operations"}

	notify.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notifier manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			notifiers, err := app.NotifyCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(notifiers) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notifiers configured")
				return nil
			}
			for _, n := range notifiers {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s enabled=%t binary=%s\n", n.Name, n.Enabled, n.Binary)
			}
			return nil
		},
	})

	notify.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate notifier binaries and handshakes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			results, err := app.NotifyCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notifiers configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s binary=%t handshake=%t", r.Name, r.BinaryReachable, r.HandshakeOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	notify.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Send a test event through every enabled notifier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.NotifyCLI.Test(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "test event dispatched")
			return nil
		},
	})

	return notify
}

func clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh%02dm", hours, minutes)
	}
	return fmt.Sprintf("%dm%02ds", minutes, seconds%60)
}
