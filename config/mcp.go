package config

const (
	BackupName          = "navicode"
	BackupVersion       = "0.1.0"
	BackupServerName    = "navicode-tools"
	BackupServerVersion = "0.1.0"
)

type McpServiceConfig struct {
	Name          string
	Version       string
	ServerName    string
	ServerVersion string
}

func (instance *McpServiceConfig) Default() {
	if instance.Name == "" {
		instance.Name = BackupName
	}
	if instance.Version == "" {
		instance.Version = BackupVersion
	}
	if instance.ServerName == "" {
		instance.ServerName = BackupServerName
	}
	if instance.ServerVersion == "" {
		instance.ServerVersion = BackupServerVersion
	}
}
