package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	courseinadapter "focusdeck/internal/modules/course/adapter/in"
	courseoutadapter "focusdeck/internal/modules/course/adapter/out"
	coursein "focusdeck/internal/modules/course/port/in"
	courseservice "focusdeck/internal/modules/course/service"
	courseusecase "focusdeck/internal/modules/course/usecase"
	exportinadapter "focusdeck/internal/modules/export/adapter/in"
	exportoutadapter "focusdeck/internal/modules/export/adapter/out"
	exportin "focusdeck/internal/modules/export/port/in"
	exportservice "focusdeck/internal/modules/export/service"
	exportusecase "focusdeck/internal/modules/export/usecase"
	notifyinadapter "focusdeck/internal/modules/notify/adapter/in"
	notifyoutadapter "focusdeck/internal/modules/notify/adapter/out"
	notifyservice "focusdeck/internal/modules/notify/service"
	notifyusecase "focusdeck/internal/modules/notify/usecase"
	sessioninadapter "focusdeck/internal/modules/session/adapter/in"
	sessionoutadapter "focusdeck/internal/modules/session/adapter/out"
	sessionin "focusdeck/internal/modules/session/port/in"
	sessionservice "focusdeck/internal/modules/session/service"
	sessionusecase "focusdeck/internal/modules/session/usecase"
	settingsinadapter "focusdeck/internal/modules/settings/adapter/in"
	settingsoutadapter "focusdeck/internal/modules/settings/adapter/out"
	settingsin "focusdeck/internal/modules/settings/port/in"
	settingsservice "focusdeck/internal/modules/settings/service"
	settingsusecase "focusdeck/internal/modules/settings/usecase"
	statsinadapter "focusdeck/internal/modules/stats/adapter/in"
	statsoutadapter "focusdeck/internal/modules/stats/adapter/out"
	statsin "focusdeck/internal/modules/stats/port/in"
	statsservice "focusdeck/internal/modules/stats/service"
	statsusecase "focusdeck/internal/modules/stats/usecase"
	"focusdeck/internal/platform/clock"
	"focusdeck/internal/platform/config"
	"focusdeck/internal/platform/id"
	"focusdeck/internal/platform/kvstore"
	"focusdeck/internal/platform/tx"
	uiapp "focusdeck/internal/ui/app"
)

type App struct {
	CourseCLI   courseinadapter.CLIHandler
	SessionCLI  sessioninadapter.CLIHandler
	StatsCLI    statsinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler
	ExportCLI   exportinadapter.CLIHandler
	NotifyCLI   notifyinadapter.CLIHandler

	courseUC   coursein.Usecase
	sessionUC  sessionin.Usecase
	statsUC    statsin.Usecase
	settingsUC settingsin.Usecase
	exportUC   exportin.Usecase
	store      *kvstore.Store
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}
	store := kvstore.New(cfg.DataPath)

	settingsUC := settingsusecase.NewInteractor(
		settingsservice.NewSettingsService(clk, settingsoutadapter.NewKVSettingsStore(store)),
	)

	notifyUC := notifyusecase.NewInteractor(
		notifyservice.NewNotifyService(
			notifyoutadapter.NewFileManifestStore(cfg.DataPath),
			notifyoutadapter.NewGRPCHost(),
		),
		settingsUC,
		clk,
	)

	sessionStore := sessionoutadapter.NewKVSessionStore(store)
	courseDir := sessionoutadapter.NewKVCourseDirectory(store)
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewRunService(clk, ids, sessionStore, courseDir, sessionoutadapter.NewNotifyBridge(notifyUC)),
		clk,
		sessionStore,
		sessionoutadapter.NewFileActiveRunStore(cfg.DataPath),
		courseDir,
	)

	courseUC := courseusecase.NewInteractor(
		courseservice.NewCourseService(clk, ids, courseoutadapter.NewKVCourseStore(store)),
		sessionUC,
		tx.NoopManager{},
	)

	sessionIndex, err := statsoutadapter.NewSQLiteSessionIndex(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new session index: %w", err)
	}
	statsUC := statsusecase.NewInteractor(
		statsservice.NewStatsService(clk),
		courseUC,
		sessionUC,
		sessionIndex,
	)

	exportUC := exportusecase.NewInteractor(
		exportservice.NewExportService(exportoutadapter.NewFileWriter()),
		courseUC,
		sessionUC,
		statsUC,
		settingsUC,
		clk,
	)

	return &App{
		CourseCLI:   courseinadapter.NewCLIHandler(courseUC),
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		StatsCLI:    statsinadapter.NewCLIHandler(statsUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		ExportCLI:   exportinadapter.NewCLIHandler(exportUC),
		NotifyCLI:   notifyinadapter.NewCLIHandler(notifyUC),

		courseUC:   courseUC,
		sessionUC:  sessionUC,
		statsUC:    statsUC,
		settingsUC: settingsUC,
		exportUC:   exportUC,
		store:      store,
	}, nil
}

func RunTUI(app *App) error {
	events := app.store.Subscribe()
	defer app.store.Unsubscribe(events)
	model := uiapp.NewModel(app.sessionUC, app.courseUC, app.statsUC, app.settingsUC, app.exportUC, events)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := program.Run()
	return err
}
