package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	datasetoutadapter "umusanzu/internal/modules/dataset/adapter/out"
	datasetservice "umusanzu/internal/modules/dataset/service"
	exportinadapter "umusanzu/internal/modules/export/adapter/in"
	exportoutadapter "umusanzu/internal/modules/export/adapter/out"
	exportservice "umusanzu/internal/modules/export/service"
	exportusecase "umusanzu/internal/modules/export/usecase"
	ledgeroutadapter "umusanzu/internal/modules/ledger/adapter/out"
	ledgerport "umusanzu/internal/modules/ledger/port/out"
	ledgerservice "umusanzu/internal/modules/ledger/service"
	mergeinadapter "umusanzu/internal/modules/merge/adapter/in"
	mergeoutadapter "umusanzu/internal/modules/merge/adapter/out"
	mergeservice "umusanzu/internal/modules/merge/service"
	mergeusecase "umusanzu/internal/modules/merge/usecase"
	sessioninadapter "umusanzu/internal/modules/session/adapter/in"
	sessionoutadapter "umusanzu/internal/modules/session/adapter/out"
	sessionusecase "umusanzu/internal/modules/session/usecase"
	shareinadapter "umusanzu/internal/modules/share/adapter/in"
	shareoutadapter "umusanzu/internal/modules/share/adapter/out"
	shareservice "umusanzu/internal/modules/share/service"
	shareusecase "umusanzu/internal/modules/share/usecase"
	"umusanzu/internal/platform/clock"
	"umusanzu/internal/platform/config"
	"umusanzu/internal/platform/i18n"
	"umusanzu/internal/platform/id"
	uiapp "umusanzu/internal/ui/app"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
	ExportCLI  exportinadapter.CLIHandler
	MergeCLI   mergeinadapter.CLIHandler
	ShareCLI   shareinadapter.CLIHandler
	Ledger     *ledgerservice.Ledger
	Translator *i18n.Translator

	archive *exportoutadapter.SQLiteArchive
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	var ledgerStore ledgerport.Store
	switch cfg.LedgerBackend {
	case "redis":
		store, err := ledgeroutadapter.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis ledger: %w", err)
		}
		ledgerStore = store
	default:
		ledgerStore = ledgeroutadapter.NewFileStore(cfg.LedgerPath)
	}
	ledger := ledgerservice.NewLedger(ledgerStore)

	queues := datasetservice.NewQueueService(
		datasetoutadapter.NewHTTPFetcher(),
		ledger,
		cfg.DatasetURL,
		cfg.PromptsURL,
	)

	archive, err := exportoutadapter.NewSQLiteArchive(cfg.ArchivePath)
	if err != nil {
		return nil, fmt.Errorf("open contribution archive: %w", err)
	}
	exportUC := exportusecase.NewInteractor(exportservice.NewService(
		exportoutadapter.NewFileDownloadSink(cfg.ExportDir),
		archive,
		ledger,
		clk,
		id.RandomHex{},
	))

	sessionUC := sessionusecase.NewInteractor(
		sessionoutadapter.NewDatasetQueueSource(queues),
		sessionoutadapter.NewExportCommitter(exportUC),
		cfg.BatchSize,
	)

	mergeUC := mergeusecase.NewInteractor(mergeservice.NewService(mergeoutadapter.NewFSStore(
		cfg.SubmissionsDir,
		cfg.ProcessedDir,
		cfg.MasterPath,
	)))

	shareUC := shareusecase.NewInteractor(shareservice.NewShareService(
		shareoutadapter.NewFileManifestStore(cfg.ManifestPath),
		shareoutadapter.NewGRPCHost(),
	))

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		ExportCLI:  exportinadapter.NewCLIHandler(exportUC),
		MergeCLI:   mergeinadapter.NewCLIHandler(mergeUC),
		ShareCLI:   shareinadapter.NewCLIHandler(shareUC),
		Ledger:     ledger,
		Translator: i18n.NewTranslator(cfg.Locale),
		archive:    archive,
	}, nil
}

// Close releases the archive handle. Safe on a nil receiver so command paths
// can defer it unconditionally.
func (a *App) Close() error {
	if a == nil || a.archive == nil {
		return nil
	}
	return a.archive.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.ExportCLI, app.ShareCLI, app.Translator)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
