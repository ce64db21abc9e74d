package navicodeerror

type ErrorCode uint

const (
	FailLoggerSetup = ErrorCode(100 + iota)
	FailReadConfig
	FailCreateEventBus
)

const (
	FailRunApp = ErrorCode(200 + iota)
	FailHandleEvent
	FailRunMcpServer
	FailConnectMcpClient
)

const (
	FileNotFound = ErrorCode(300 + iota)
	InvalidPattern
	InvalidArgument
	FileUnreadable
)
