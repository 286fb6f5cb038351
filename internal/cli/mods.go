package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"svinstall/internal/logx"
	"svinstall/internal/mods"
	"svinstall/internal/tui"
)

var (
	modsForce      bool
	modsNoProgress bool
)

func newModsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mods",
		Short: "Install or remove bundled mods",
	}

	cmd.PersistentFlags().BoolVar(&modsNoProgress, "no-progress", false, "Disable interactive progress output")

	cmd.AddCommand(newModsListCmd())
	cmd.AddCommand(newModsInstallCmd())
	cmd.AddCommand(newModsRemoveCmd())

	return cmd
}

func newModsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bundled mods and their install state",
		RunE:  runModsList,
	}
}

func runModsList(cmd *cobra.Command, _ []string) error {
	manager, err := buildManager()
	if err != nil {
		return err
	}
	list, err := manager.List()
	if err != nil {
		return err
	}

	if outputJSON {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(list) == 0 {
		cmd.Println("(no bundled mods)")
		return nil
	}
	cmd.Printf("%-30s %-12s %s\n", "Mod", "Version", "Installed")
	for _, mod := range list {
		installed := "no"
		if manager.Installed(mod.Name) {
			installed = "yes"
		}
		cmd.Printf("%-30s %-12s %s\n", mod.Name, tui.NonEmptyOrDash(mod.Version), installed)
	}
	return nil
}

func newModsInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [mod|all]",
		Short: "Copy bundled mods into the game's Mods folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModsBatch(cmd, args, mods.OpInstall)
		},
	}
	cmd.Flags().BoolVar(&modsForce, "force", false, "Replace existing mod folders without asking")
	return cmd
}

func newModsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [mod|all]",
		Short: "Delete bundled mods from the game's Mods folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModsBatch(cmd, args, mods.OpRemove)
		},
	}
}

func buildManager() (mods.Manager, error) {
	cfg, resDir, err := loadConfig()
	if err != nil {
		return mods.Manager{}, err
	}
	install, err := resolveGame(cfg)
	if err != nil {
		return mods.Manager{}, err
	}
	if err := install.EnsureModsDir(); err != nil {
		return mods.Manager{}, err
	}
	sourceDir, err := modSourceDir(resDir)
	if err != nil {
		return mods.Manager{}, err
	}
	return mods.NewManager(sourceDir, install.ModsDir), nil
}

func runModsBatch(cmd *cobra.Command, args []string, op string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	manager, err := buildManager()
	if err != nil {
		return err
	}

	target := "all"
	if len(args) == 1 {
		target = args[0]
	}

	logger, closer, err := logx.New()
	if err != nil {
		logger = logx.Discard()
	} else {
		defer closer.Close()
	}

	if target != "all" {
		return runSingleMod(cmd, manager, cfg.Mods.Force || modsForce, target, op, logger.Printf)
	}

	list, err := manager.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		cmd.Println("(no bundled mods)")
		return nil
	}

	mode := tui.DetectMode(cmd.OutOrStdout(), modsNoProgress, outputJSON)
	var results []mods.Result

	if mode == tui.ModeTUI {
		results, err = runBatchTUI(cmd, manager, list, op)
	} else {
		report := func(res mods.Result) {
			logBatchResult(logger.Printf, res)
			if mode == tui.ModePlain {
				printBatchResult(cmd, res)
			}
		}
		if op == mods.OpInstall {
			results, err = manager.InstallAll(report)
		} else {
			results, err = manager.RemoveAll(report)
		}
	}
	if err != nil {
		return err
	}

	if outputJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	skipped := 0
	for _, res := range results {
		if res.Skipped {
			skipped++
		}
	}
	if skipped > 0 {
		cmd.Printf("%d of %d mods failed and were skipped; see the log for details.\n", skipped, len(results))
	} else {
		cmd.Printf("%d mods processed.\n", len(results))
	}
	return nil
}

func runSingleMod(cmd *cobra.Command, manager mods.Manager, force bool, name, op string, logf func(string, ...any)) error {
	switch op {
	case mods.OpInstall:
		if manager.Installed(name) && !force {
			if !confirm(cmd, fmt.Sprintf("Mod %s already exists and will be fully replaced. Continue?", name)) {
				cmd.Println("Skipped.")
				return nil
			}
		}
		if err := manager.Install(name); err != nil {
			return err
		}
		logf("installed mod %s", name)
		cmd.Printf("Installed %s.\n", name)
	case mods.OpRemove:
		if err := manager.Remove(name); err != nil {
			return err
		}
		logf("removed mod %s", name)
		cmd.Printf("Removed %s.\n", name)
	}
	return nil
}

func runBatchTUI(cmd *cobra.Command, manager mods.Manager, list []mods.Entry, op string) ([]mods.Result, error) {
	title := "Installing mods"
	if op == mods.OpRemove {
		title = "Removing mods"
	}
	columns := []tui.Column{
		{Header: "MOD", Width: 30},
		{Header: "VERSION", Width: 10},
		{Header: "STATUS", Width: 10},
	}
	model := tui.NewProgressModel(title, columns)
	for _, mod := range list {
		model.AddRow(mod.Name, []string{mod.Name, tui.NonEmptyOrDash(mod.Version), "pending"})
	}

	var results []mods.Result
	err := tui.RunWithWork(cmd.OutOrStdout(), model, func(send func(tea.Msg)) {
		report := func(res mods.Result) {
			status := "installed"
			if res.Operation == mods.OpRemove {
				status = "removed"
			}
			if res.Skipped {
				status = "skipped"
			}
			send(tui.RowUpdateMsg{
				Key:    res.Name,
				Fields: map[string]string{"STATUS": status},
			})
		}
		var batchErr error
		if op == mods.OpInstall {
			results, batchErr = manager.InstallAll(report)
		} else {
			results, batchErr = manager.RemoveAll(report)
		}
		if batchErr != nil {
			send(tui.ErrorMsg{Err: batchErr})
		}
	})
	return results, err
}

func logBatchResult(logf func(string, ...any), res mods.Result) {
	if res.Skipped {
		logf("%s %s skipped: %s", res.Operation, res.Name, res.Error)
		return
	}
	logf("%s %s ok", res.Operation, res.Name)
}

func printBatchResult(cmd *cobra.Command, res mods.Result) {
	verb := "installed"
	if res.Operation == mods.OpRemove {
		verb = "removed"
	}
	if res.Skipped {
		cmd.Printf("  %-30s skipped (%s)\n", res.Name, strings.TrimSpace(res.Error))
		return
	}
	cmd.Printf("  %-30s %s\n", res.Name, verb)
}
