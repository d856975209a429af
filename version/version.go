// Package version reports build metadata of the metadoc binary.
package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Info is the build metadata of the running binary.
type Info struct {
	Version   string
	Revision  string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build metadata of the running binary. The version falls
// back to the main module version recorded by the Go toolchain.
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  "unknown",
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "" {
		info.Version = buildInfo.Main.Version
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			info.Revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		info.Revision += "-dirty"
	}

	return info
}

// String renders the metadata on one line.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = "(devel)"
	}

	s := fmt.Sprintf("%s (revision %s, %s, %s)", v, i.Revision, i.GoVersion, i.Platform)
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}

	return s
}

// NewCommand returns a "version" command that prints [Get] to its output.
func NewCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of " + name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return write(cmd.OutOrStdout(), name, Get())
		},
	}
}

func write(w io.Writer, name string, info Info) error {
	_, err := fmt.Fprintf(w, "%s %s\n", name, info)
	if err != nil {
		return fmt.Errorf("write version: %w", err)
	}

	return nil
}
