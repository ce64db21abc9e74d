package mcp

import (
	navicodeerror "NaviCode/NaviCodeError"
	"NaviCode/config"
	"NaviCode/constants"
	"NaviCode/dto"
	"NaviCode/events"
	"NaviCode/navigator"
	"NaviCode/tools/find"
	"NaviCode/tools/gotoline"
	"NaviCode/tools/nextmatch"
	"NaviCode/tools/pagedown"
	"NaviCode/tools/pageup"
	"NaviCode/tools/prevmatch"
	"NaviCode/types"
	"context"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type McpModule struct {
	client        *mcp.Client
	clientSession *mcp.ClientSession
	toolServer    *mcp.Server
	bus           *events.EventBus
	ctx           context.Context
	logger        *zap.Logger
}

func NewMcpModule(bus *events.EventBus, config config.McpServiceConfig, logger *zap.Logger, nav *navigator.Navigator) *McpModule {

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: config.Name, Version: config.Version}, nil)

	implementation := &mcp.Implementation{
		Name:    config.ServerName,
		Version: config.ServerVersion,
	}
	mcpServer := mcp.NewServer(implementation, nil)

	module := &McpModule{
		client:     mcpClient,
		bus:        bus,
		toolServer: mcpServer,
		ctx:        context.Background(),
		logger:     logger,
	}

	serverTran, clientTrans := mcp.NewInMemoryTransports()

	module.InitTools(nav)

	go func() {
		if err := module.toolServer.Run(module.ctx, serverTran); err != nil {
			module.logger.Error("", zap.Error(navicodeerror.Wrap(
				err,
				navicodeerror.FailRunMcpServer,
				"Fail Run MCP Server",
			)))
		}
	}()

	clientSession, err := module.client.Connect(module.ctx, clientTrans)
	if err != nil {
		module.logger.Error("", zap.Error(navicodeerror.Wrap(
			err,
			navicodeerror.FailConnectMcpClient,
			"Fail Connect MCP Client",
		)))
	}
	module.clientSession = clientSession

	module.Subscribe()
	return module
}

func (instance *McpModule) Subscribe() {
	events.Subscribe(instance.bus, instance.bus.ToolCallEvent, constants.McpModule, func(event events.Event[dto.ToolCallData]) {
		instance.ToolCall(event.Data)
	})
}

func (instance *McpModule) InitTools(nav *navigator.Navigator) {
	InsertTool(instance, gotoline.New(nav))
	InsertTool(instance, find.New(nav))
	InsertTool(instance, nextmatch.New(nav))
	InsertTool(instance, prevmatch.New(nav))
	InsertTool(instance, pageup.New(nav))
	InsertTool(instance, pagedown.New(nav))
}

func InsertTool[T any](server *McpModule, tool types.Tool[T]) {

	mcpTool := &mcp.Tool{
		Name:        tool.Name(),
		Description: tool.Description(),
	}
	mcp.AddTool(server.toolServer, mcpTool, tool.Handler())

}

func (instance *McpModule) ToolCall(data dto.ToolCallData) {

	if instance.clientSession == nil {
		instance.PublishResult(data.RequestID, "tool server session is not connected", true)
		return
	}

	params := &mcp.CallToolParams{
		Name:      data.ToolName,
		Arguments: data.Parameters,
	}

	result, err := instance.clientSession.CallTool(instance.ctx, params)

	if err != nil {
		instance.logger.Error("tool call failed",
			zap.String("toolName", data.ToolName),
			zap.String("requestUUID", data.RequestID.String()),
			zap.Error(err))
		instance.PublishResult(data.RequestID, err.Error(), true)
		return
	}

	text := CollectText(result)
	if result.IsError {
		instance.logger.Error("tool reported error",
			zap.String("toolName", data.ToolName),
			zap.String("requestUUID", data.RequestID.String()),
			zap.String("error", text))
	}
	instance.PublishResult(data.RequestID, text, result.IsError)
}

func (instance *McpModule) PublishResult(requestID types.RequestID, text string, isError bool) {
	events.Publish(instance.bus, instance.bus.ToolResultEvent, events.Event[dto.ToolResultData]{
		Data: dto.ToolResultData{
			RequestID: requestID,
			Text:      text,
			IsError:   isError,
		},
		TimeStamp: time.Now(),
		Source:    constants.McpModule,
	})
	events.Publish(instance.bus, instance.bus.UpdateViewEvent, events.Event[dto.UpdateViewData]{
		Data:      dto.UpdateViewData{},
		TimeStamp: time.Now(),
		Source:    constants.McpModule,
	})
}

func CollectText(result *mcp.CallToolResult) string {
	parts := make([]string, 0, len(result.Content))
	for _, content := range result.Content {
		if textContent, ok := content.(*mcp.TextContent); ok {
			parts = append(parts, textContent.Text)
		}
	}
	return strings.Join(parts, "\n")
}
