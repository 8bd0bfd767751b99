package config

// Paths are the per-platform default locations of the source tree and the output document.
type Paths struct {
	SourceRoot string
	OutputPath string
}

// PlatformPaths returns the default paths for goos (a runtime.GOOS value).
func PlatformPaths(goos string) Paths {
	if goos == "windows" {
		return Paths{
			SourceRoot: `src\main\java`,
			OutputPath: "README.md",
		}
	}
	return Paths{
		SourceRoot: "src/main/java",
		OutputPath: "README.md",
	}
}
