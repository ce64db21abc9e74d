package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	ViewConfig       ViewConfig
	McpServiceConfig McpServiceConfig
	EventBusConfig   EventBusConfig
	NavigatorConfig  NavigatorConfig
}

func LoadConfig() *Config {
	viewConfig := ViewConfig{
		Prompt:   viper.GetString("view.prompt"),
		Ellipsis: viper.GetString("view.ellipsis"),
	}

	mcpConfig := McpServiceConfig{
		Name:          viper.GetString("mcp.name"),
		Version:       viper.GetString("mcp.version"),
		ServerName:    viper.GetString("server.name"),
		ServerVersion: viper.GetString("server.version"),
	}

	eventBusConfig := EventBusConfig{
		PoolSize: viper.GetInt("bus.pool_size"),
	}

	navigatorConfig := NavigatorConfig{
		PageSize: viper.GetInt("navigator.page_size"),
	}

	viewConfig.Default()
	mcpConfig.Default()
	eventBusConfig.Default()
	navigatorConfig.Default()

	config := &Config{
		ViewConfig:       viewConfig,
		McpServiceConfig: mcpConfig,
		EventBusConfig:   eventBusConfig,
		NavigatorConfig:  navigatorConfig,
	}

	return config
}
