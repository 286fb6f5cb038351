package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"svinstall/internal/config"
	"svinstall/internal/logx"
	"svinstall/internal/mods"
	"svinstall/internal/paths"
	"svinstall/internal/pipeline"
	"svinstall/internal/smapi"
	"svinstall/internal/stardrop"
	"svinstall/internal/steam"
	"svinstall/internal/tui"
)

// runInteractive drives the full workflow: resolve the game path, then run
// the SMAPI, mods, and Stardrop steps strictly in sequence. Each later step
// depends on the previous step's filesystem side effects.
func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, resDir, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logx.New()
	if err != nil {
		logger = logx.Discard()
	} else {
		defer closer.Close()
	}

	cmd.Println(tui.HeaderStyle.Render("星露谷物语模组安装程序"))

	install, err := resolveGame(cfg)
	if err != nil {
		if errors.Is(err, steam.ErrNotFound) {
			cmd.Println(steam.NotFoundMessage)
			waitForEnter(cmd)
			return nil
		}
		return err
	}
	if err := install.EnsureModsDir(); err != nil {
		return err
	}

	cmd.Printf("\n%s%s\n", steam.LocalizedPrefix, install.GameDir)
	cmd.Printf("Mods 文件夹路径：%s\n\n", install.ModsDir)
	logger.Printf("game dir resolved: %s", install.GameDir)

	steps := []pipeline.Step{
		{
			Name:     "smapi",
			Critical: true,
			Run: func(ctx context.Context) pipeline.Outcome {
				return smapiStep(ctx, cmd, cfg, install, resDir, logger)
			},
		},
		{
			Name: "mods",
			Run: func(ctx context.Context) pipeline.Outcome {
				return modsStep(cmd, cfg, install, resDir, logger)
			},
		},
		{
			Name: "stardrop",
			Run: func(ctx context.Context) pipeline.Outcome {
				return stardropStep(cmd, cfg, install, resDir, logger)
			},
		},
	}

	outcomes := pipeline.Run(cmd.Context(), steps)

	cmd.Println()
	for _, outcome := range outcomes {
		label := tui.StatusStyle(string(outcome.Status)).Render(string(outcome.Status))
		detail := outcome.Detail
		if outcome.Err != nil {
			detail = outcome.Err.Error()
		}
		if detail != "" {
			cmd.Printf("  %-10s %s (%s)\n", outcome.Step, label, detail)
		} else {
			cmd.Printf("  %-10s %s\n", outcome.Step, label)
		}
	}

	if pipeline.Failed(outcomes) {
		cmd.Println("\n部分步骤未完成，可重新运行本程序重试。")
	} else {
		cmd.Println("\n安装完成！")
	}
	waitForEnter(cmd)
	return nil
}

func smapiStep(ctx context.Context, cmd *cobra.Command, cfg config.Config, install paths.InstallPaths, resDir string, logger *log.Logger) pipeline.Outcome {
	installer := smapi.NewInstaller(install.GameDir, resDir, nil)
	state, err := installer.Detect()
	if err != nil {
		return pipeline.Outcome{Status: pipeline.StatusFailed, Err: err}
	}
	if state == smapi.StatePresent {
		return pipeline.Outcome{Status: pipeline.StatusDone, Detail: "already installed"}
	}

	if !cfg.SMAPI.AutoConfirm {
		if !confirm(cmd, "SMAPI 未安装，现在运行安装程序吗？") {
			return pipeline.Outcome{Status: pipeline.StatusSkipped, Detail: "declined"}
		}
	}

	cmd.Println("正在启动 SMAPI 安装程序...")
	state, err = installer.Install(ctx)
	if err != nil {
		logger.Printf("smapi step failed: %v", err)
		return pipeline.Outcome{Status: pipeline.StatusFailed, Err: err}
	}
	logger.Printf("smapi step: %s", state)
	cmd.Printf("SMAPI 安装完成。请将以下内容填入 Steam 启动选项：\n  %q %%command%%\n", smapi.MarkerPath(install.GameDir))
	return pipeline.Outcome{Status: pipeline.StatusDone}
}

func modsStep(cmd *cobra.Command, cfg config.Config, install paths.InstallPaths, resDir string, logger *log.Logger) pipeline.Outcome {
	sourceDir, err := modSourceDir(resDir)
	if err != nil {
		return pipeline.Outcome{Status: pipeline.StatusFailed, Err: err}
	}
	manager := mods.NewManager(sourceDir, install.ModsDir)

	for {
		choice, err := tui.RunMenu("MOD 管理", []tui.MenuItem{
			{Label: "安装 MOD"},
			{Label: "移除 MOD"},
			{Label: "继续下一步"},
		})
		if err != nil {
			return pipeline.Outcome{Status: pipeline.StatusFailed, Err: err}
		}
		switch choice {
		case 0:
			if err := modMenu(cmd, manager, cfg, mods.OpInstall, logger); err != nil {
				cmd.Printf("安装出错：%v\n", err)
			}
		case 1:
			if err := modMenu(cmd, manager, cfg, mods.OpRemove, logger); err != nil {
				cmd.Printf("移除出错：%v\n", err)
			}
		default:
			return pipeline.Outcome{Status: pipeline.StatusDone}
		}
	}
}

func modMenu(cmd *cobra.Command, manager mods.Manager, cfg config.Config, op string, logger *log.Logger) error {
	list, err := manager.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		cmd.Println("Mods 文件夹下没有找到任何 MOD。")
		return nil
	}

	items := make([]tui.MenuItem, 0, len(list)+1)
	for _, mod := range list {
		desc := mod.Version
		if manager.Installed(mod.Name) {
			desc = tui.NonEmptyOrDash(desc) + " · installed"
		}
		items = append(items, tui.MenuItem{Label: mod.Name, Desc: desc})
	}
	verb := "安装"
	if op == mods.OpRemove {
		verb = "移除"
	}
	items = append(items, tui.MenuItem{Label: fmt.Sprintf("全部%s", verb)})

	choice, err := tui.RunMenu(fmt.Sprintf("请选择要%s的 MOD", verb), items)
	if err != nil {
		return err
	}
	if choice < 0 {
		return nil
	}

	if choice == len(list) {
		_, err = runBatchTUI(cmd, manager, list, op)
		return err
	}

	name := list[choice].Name
	force := cfg.Mods.Force || op == mods.OpRemove
	return runSingleMod(cmd, manager, force, name, op, logger.Printf)
}

func stardropStep(cmd *cobra.Command, cfg config.Config, install paths.InstallPaths, resDir string, logger *log.Logger) pipeline.Outcome {
	cmd.Println("正在安装 Stardrop...")
	result, err := stardrop.Install(resDir, install.StardropDir, stardrop.Options{
		Reextract: cfg.Stardrop.Reextract,
		Shortcut:  cfg.Stardrop.ShortcutValue(),
	})
	if err != nil {
		logger.Printf("stardrop step failed: %v", err)
		return pipeline.Outcome{Status: pipeline.StatusFailed, Err: err}
	}
	logger.Printf("stardrop step: extracted=%v shortcut=%v", result.Extracted, result.ShortcutCreated)
	if !result.Extracted {
		return pipeline.Outcome{Status: pipeline.StatusDone, Detail: "already installed"}
	}
	return pipeline.Outcome{Status: pipeline.StatusDone}
}
