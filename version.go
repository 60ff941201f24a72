package backupstore

// Version is the current version
const Version = "v0.1.0"
