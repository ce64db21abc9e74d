package app

import (
	navicodeerror "NaviCode/NaviCodeError"
	"NaviCode/config"
	"NaviCode/events"
	"NaviCode/manager/session"
	"NaviCode/module/mcp"
	"NaviCode/navigator"
	"NaviCode/viewinterface"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func NewApp() (*App, error) {
	viper.SetConfigFile("env.toml")
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, navicodeerror.Wrap(err, navicodeerror.FailLoggerSetup, "Fail LoggerSetup")
	}
	if err := viper.ReadInConfig(); err != nil {
		return nil, navicodeerror.Wrap(err, navicodeerror.FailReadConfig, "Fail Read Config")
	}
	config := config.LoadConfig()
	bus, err := events.NewEventBus(config.EventBusConfig, logger)
	if err != nil {
		return nil, err
	}
	sessions := session.NewSessionManager(config.NavigatorConfig.PageSize)
	nav := navigator.NewNavigator(sessions)
	app := &App{
		bus:       bus,
		sessions:  sessions,
		model:     viewinterface.NewMainModel(bus, config.ViewConfig, logger),
		mcpModule: mcp.NewMcpModule(bus, config.McpServiceConfig, logger, nav),
		logger:    logger,
	}
	return app, nil
}

type App struct {
	bus       *events.EventBus
	sessions  *session.SessionManager
	model     *viewinterface.MainModel
	mcpModule *mcp.McpModule
	logger    *zap.Logger
}

func (instance *App) Run() {
	program := tea.NewProgram(
		instance.model,
	)
	instance.model.SetProgram(program)
	defer func() {
		instance.bus.Close()
	}()
	if _, err := program.Run(); err != nil {
		instance.logger.Error("", zap.Error(navicodeerror.Wrap(err, navicodeerror.FailRunApp, "Fail Run App")))
		return
	}
}
