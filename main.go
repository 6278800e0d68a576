package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	Execute()
}

func run(opts *cliOptions) error {
	service, err := NewGitService()
	if err != nil {
		return fmt.Errorf("initialize git service: %w", err)
	}

	logger := initLogger(service)
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: close logger: %v\n", closeErr)
		}
	}()

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	modeFlag := opts.mode
	if modeFlag == "" {
		modeFlag = cfg.Mode
	}
	mode, err := ParseDiffMode(modeFlag)
	if err != nil {
		return err
	}

	remoteOverride := opts.remote
	if remoteOverride == "" {
		remoteOverride = cfg.Remote
	}
	remote := service.ResolveRemote(remoteOverride)

	plan, err := service.AssemblePlan(mode, remote)
	if err != nil {
		return err
	}

	logger.Info("diff_pick starting", map[string]any{
		"version": appVersion,
		"mode":    mode.String(),
		"remote":  remote,
		"command": plan.Command,
	})

	files, err := ListChangedFiles(service.Runner(), plan)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	workDir, err := service.WorkingDir()
	if err != nil {
		return err
	}

	if opts.printOnly {
		for _, path := range files {
			fmt.Println(Relativize(workDir, path))
		}
		return nil
	}

	watcher, err := newRepoWatcher(service.RootPath())
	if err != nil {
		logger.Warn("file watching disabled", map[string]any{"error": err.Error()})
		watcher = nil
	} else {
		defer watcher.Close()
	}

	program := tea.NewProgram(
		NewModel(service, plan, files, watcher, logger),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		logger.Error("program error", err, nil)
		return fmt.Errorf("run picker: %w", err)
	}

	model, ok := final.(Model)
	if !ok || model.Aborted() {
		return nil
	}

	picked := model.Picked()
	if len(picked) == 0 {
		return nil
	}

	paths := make([]string, len(picked))
	for i, path := range picked {
		paths[i] = Relativize(workDir, path)
	}

	editor := ResolveEditor(opts.editor, cfg.Editor)
	logger.Info("opening editor", map[string]any{
		"editor": editor,
		"files":  len(paths),
	})
	if err := LaunchEditor(editor, paths); err != nil {
		logger.Error("editor launch failed", err, nil)
		return err
	}

	reportLoggerStats(logger)
	return nil
}

func reportLoggerStats(logger *Logger) {
	if !logger.HasErrors() {
		return
	}

	stats := logger.GetStats()
	fmt.Fprintf(os.Stderr, "\ncompleted with %d error(s), see the log for details\n", stats.TotalErrors)
}

func initLogger(service *GitService) *Logger {
	logger, err := NewLogger(INFO, service.RootPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return logger
}
