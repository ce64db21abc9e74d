package config

const (
	BackupPrompt   = ":"
	BackupEllipsis = "…"
)

type ViewConfig struct {
	Prompt   string
	Ellipsis string
}

func (instance *ViewConfig) Default() {
	if instance.Prompt == "" {
		instance.Prompt = BackupPrompt
	}
	if instance.Ellipsis == "" {
		instance.Ellipsis = BackupEllipsis
	}
}
