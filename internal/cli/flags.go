package cli

import "flag"

// Flags holds all command line flags
type Flags struct {
	Version *bool
	Verbose *bool
}

// GlobalFlags holds the parsed command line flags
var GlobalFlags *Flags

// InitFlags initializes all command line flags
func InitFlags() *Flags {
	return &Flags{
		Version: flag.Bool("version", false, "Show version information"),
		Verbose: flag.Bool("verbose", false, "Enable verbose output"),
	}
}

// ParseFlags parses command line flags with custom usage
func ParseFlags(usage func()) {
	if GlobalFlags == nil {
		GlobalFlags = InitFlags()
	}
	flag.Usage = usage
	flag.Parse()
}
