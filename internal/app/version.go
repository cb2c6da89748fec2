package app

import (
	"fmt"
	"io"
	"strings"
)

// Version is the application version string. It can be overridden at build
// time: go build -ldflags "-X github.com/agbru/demoscript/internal/app.Version=1.2.3".
var Version = "1.0.0"

// HasVersionFlag reports whether the argument list requests the version.
// Checked before flag parsing so -version works alongside other flags.
// The scan mirrors how the flag package would read the arguments: it stops
// at "--" or at the first positional argument, and skips the values of
// flags that consume one, so "-users --version" stays a file name.
func HasVersionFlag(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return false
		case arg == "-version" || arg == "--version":
			return true
		case consumesValue(arg):
			i++
		case !strings.HasPrefix(arg, "-"):
			return false
		}
	}
	return false
}

// consumesValue reports whether arg is a flag whose value arrives as the
// next argument (the "-flag=value" form carries its own).
func consumesValue(arg string) bool {
	switch strings.TrimLeft(arg, "-") {
	case "n", "limit", "users":
		return true
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "demoscript %s\n", Version)
}
