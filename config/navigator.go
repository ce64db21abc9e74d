package config

const (
	BackupPageSize = 20
)

type NavigatorConfig struct {
	PageSize int
}

func (instance *NavigatorConfig) Default() {
	if instance.PageSize <= 0 {
		instance.PageSize = BackupPageSize
	}
}
