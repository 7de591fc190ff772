package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"umusanzu/internal/bootstrap"
	ledgerdomain "umusanzu/internal/modules/ledger/domain"
	sessiondomain "umusanzu/internal/modules/session/domain"
	sharedto "umusanzu/internal/modules/share/dto"
	"umusanzu/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "umusanzu",
		Short:         "Kirundi-French parallel text collection tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", ".", "data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newMergeCmd(&dataDir))
	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newLedgerCmd(&dataDir))
	root.AddCommand(newShareCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the contribution terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newMergeCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge collected submission files into the master dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			report, err := app.MergeCLI.Run(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "merged %d files: filled=%d appended=%d skipped=%d\n",
				len(report.Processed), report.Filled, report.Appended, report.Skipped)
			for _, name := range report.Rejected {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rejected: %s\n", name)
			}
			return nil
		},
	}
}

func newStatsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show contribution totals by workflow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			stats, err := app.ExportCLI.Stats(context.Background())
			if err != nil {
				return err
			}
			if stats.Total == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no contributions yet")
				return nil
			}
			modes := make([]string, 0, len(stats.ByMode))
			for mode := range stats.ByMode {
				modes = append(modes, mode)
			}
			sort.Strings(modes)
			for _, mode := range modes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", mode, stats.ByMode[mode])
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total\t%d\n", stats.Total)
			return nil
		},
	}
}

func newLedgerCmd(dataDir *string) *cobra.Command {
	ledger := &cobra.Command{Use: "ledger", Short: "Submission ledger maintenance"}

	var category string
	clear := &cobra.Command{
		Use:   "clear --category <kirundi|french>",
		Short: "Forget recorded submissions so phrases can be offered again",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := ledgerdomain.Category(category)
			if !cat.Valid() {
				return fmt.Errorf("--category must be kirundi or french")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.Ledger.Clear(context.Background(), cat); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ledger cleared: %s\n", cat)
			return nil
		},
	}
	clear.Flags().StringVar(&category, "category", "", "ledger category")
	ledger.AddCommand(clear)
	return ledger
}

func newShareCmd(dataDir *string) *cobra.Command {
	share := &cobra.Command{Use: "share", Short: "Share plugin operations"}

	share.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List share plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			plugins, err := app.ShareCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t capabilities=%s binary=%s\n",
					p.Name, p.Version, p.Enabled, strings.Join(p.Capabilities, ","), p.Binary)
			}
			return nil
		},
	})

	share.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate plugin checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			results, err := app.ShareCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var sendPlugin, sendFile string
	send := &cobra.Command{
		Use:   "send --plugin <name> --file <path>",
		Short: "Deliver an exported batch through a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(sendPlugin) == "" || strings.TrimSpace(sendFile) == "" {
				return fmt.Errorf("--plugin and --file are required")
			}
			raw, err := os.ReadFile(sendFile)
			if err != nil {
				return fmt.Errorf("read batch file: %w", err)
			}
			content := string(raw)
			name := filepath.Base(sendFile)
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ShareCLI.Share(context.Background(), sharedto.ShareInput{
				PluginName: sendPlugin,
				Filename:   name,
				Mode:       modeForFile(name),
				Content:    content,
				Count:      countRows(content),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "delivered %s via %s to %s", name, out.PluginName, out.Destination)
			if out.Detail != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " (%s)", out.Detail)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	send.Flags().StringVar(&sendPlugin, "plugin", "", "plugin name")
	send.Flags().StringVar(&sendFile, "file", "", "exported batch file")
	share.AddCommand(send)

	var announcePlugin, announceMessage string
	announce := &cobra.Command{
		Use:   "announce --plugin <name> --message <text>",
		Short: "Send an announcement through a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(announcePlugin) == "" || strings.TrimSpace(announceMessage) == "" {
				return fmt.Errorf("--plugin and --message are required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.ShareCLI.Announce(context.Background(), announcePlugin, announceMessage); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "announced")
			return nil
		},
	}
	announce.Flags().StringVar(&announcePlugin, "plugin", "", "plugin name")
	announce.Flags().StringVar(&announceMessage, "message", "", "announcement text")
	share.AddCommand(announce)

	return share
}

// modeForFile maps an export filename back to the workflow that produced it.
func modeForFile(name string) string {
	for _, mode := range []sessiondomain.Mode{
		sessiondomain.ModeTranslate,
		sessiondomain.ModeReverse,
		sessiondomain.ModeAuthor,
	} {
		if strings.HasPrefix(name, mode.FilenamePrefix()+"_") {
			return string(mode)
		}
	}
	return "unknown"
}

// countRows counts data rows in an exported table, excluding the header.
func countRows(content string) int {
	rows := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			rows++
		}
	}
	if rows > 0 {
		rows--
	}
	return rows
}
