package backupstore

import "embed"

//go:embed configs/config.default.yml
var ConfigFS embed.FS
