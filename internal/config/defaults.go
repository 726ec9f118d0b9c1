package config

// Config holds the build environment settings.
// Defaults are set in DefaultConfig() and can be overridden by ccenv.yaml
// and then by --set overrides. Keys missing from the file keep their defaults.
type Config struct {
	Toolchain Toolchain `yaml:"toolchain"`
	Flags     Flags     `yaml:"flags"`
	Modes     Modes     `yaml:"modes"`
	Dirs      Dirs      `yaml:"dirs"`
}

// Toolchain controls compiler discovery.
type Toolchain struct {
	// Candidate compilers in preference order. $CC / $CXX, when set, are
	// tried before these.
	CC  []string `yaml:"cc"`  // Default: clang, gcc
	CXX []string `yaml:"cxx"` // Default: clang++, g++

	// Convention is the executable naming policy: auto, plain or pathext.
	Convention string `yaml:"convention"` // Default: auto

	MinVersion MinVersion `yaml:"min_version"`
}

// MinVersion holds per-brand minimum compiler versions. Empty disables the check.
type MinVersion struct {
	Clang string `yaml:"clang"`
	GCC   string `yaml:"gcc"`
}

// Flags are shared by every build mode.
type Flags struct {
	CC  []string `yaml:"cc"`  // C and C++ compilers
	C   []string `yaml:"c"`   // C only
	CXX []string `yaml:"cxx"` // C++ only
}

// Modes holds the per-mode additions.
type Modes struct {
	Debug   Mode `yaml:"debug"`
	Release Mode `yaml:"release"`
}

// Mode is appended to the shared flags for one build mode.
type Mode struct {
	CCFlags []string `yaml:"ccflags"`
	Defines []string `yaml:"defines"`
}

// Dirs are project directories, relative to the project root.
type Dirs struct {
	Build string `yaml:"build"`
	Lib   string `yaml:"lib"`
	Src   string `yaml:"src"`
	Test  string `yaml:"test"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Toolchain: Toolchain{
			CC:         []string{"clang", "gcc"},
			CXX:        []string{"clang++", "g++"},
			Convention: "auto",
		},
		Flags: Flags{
			CC:  []string{"-Wall", "-Wextra", "-pedantic"},
			C:   []string{"-std=c99"},
			CXX: []string{"-std=c++11"},
		},
		Modes: Modes{
			Debug:   Mode{CCFlags: []string{"-O0", "-g"}, Defines: []string{"DEBUG"}},
			Release: Mode{CCFlags: []string{"-O2"}, Defines: []string{"RELEASE"}},
		},
		Dirs: Dirs{
			Build: "build",
			Lib:   "lib",
			Src:   "src",
			Test:  "test",
		},
	}
}
