package config

// FileName is the primary config file name.
const FileName = "noter.toml"

// FileNames returns the config file names searched by Find, in priority order.
func FileNames() []string {
	return []string{FileName, "noter.yaml", "noter.yml", "noter.json"}
}
