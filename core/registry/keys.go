package registry

// Core keys for GlobalRegistry.
const (
	// Extension registries (cmd, cron) — stored in GlobalRegistry
	KeyRegistryCmd  = "registry:cmd"
	KeyRegistryCron = "registry:cron"
)
