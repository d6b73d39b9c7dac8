package platform

// Package platform contains OS integration glue: per-user folders for custom
// icons and scenes, directory creation, and opening folders or files with the
// system file manager.
