package dependency

import (
	"context"

	"github.com/placeskit/places-setup/internal/app/places-setup/clients/gcloud"
	"github.com/placeskit/places-setup/internal/pkg/tea/style"
)

var (
	GCloud = Dependency{
		Name:    "Google Cloud SDK (gcloud)",
		Command: "gcloud --version",
		Help: `gcloud is required to create projects and API keys.
Learn how to install gcloud: https://cloud.google.com/sdk/docs/install`,
		Install: map[string]string{
			"darwin": "brew install --cask google-cloud-sdk",
			"linux":  `bash -c "curl -sSL https://sdk.cloud.google.com | bash -s -- --disable-prompts"`,
		},
	}
	Curl = Dependency{
		Name:    "curl",
		Command: "curl --version",
		Help: `curl is required to download the gcloud installer.
Install it with your distribution's package manager.`,
	}
	Bash = Dependency{
		Name:    "bash",
		Command: "bash --version",
		Help:    `bash is required to run the gcloud installer.`,
	}
	Homebrew = Dependency{
		Name:    "Homebrew",
		Command: "brew --version",
		Help: `Homebrew is required to install gcloud on macOS.
Learn how to install Homebrew: https://brew.sh`,
		Install: map[string]string{
			"darwin": `bash -c "NONINTERACTIVE=1 /bin/bash -c \"$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)\""`,
		},
	}
)

// Dependency is an external tool detected by running Command.
type Dependency struct {
	Name    string
	Command string
	Help    string
	// Install maps a GOOS to an unattended install command.
	Install map[string]string
}

// Status is the outcome of checking one Dependency.
type Status struct {
	Dependency
	IsInstalled bool
}

// InstallerPrerequisites returns the host tools needed to install gcloud on goos.
func InstallerPrerequisites(goos string) []Dependency {
	switch goos {
	case "darwin":
		return []Dependency{Homebrew}
	case "linux":
		return []Dependency{Curl, Bash}
	default:
		return nil
	}
}

func (d Dependency) Check(ctx context.Context, client gcloud.ClientInterface) bool {
	return client.Run(ctx, "", d.Command).Success
}

// InstallCommand returns the install command for goos and whether one is known.
func (d Dependency) InstallCommand(goos string) (string, bool) {
	cmd, ok := d.Install[goos]
	return cmd, ok && cmd != ""
}

func Check(ctx context.Context, client gcloud.ClientInterface, deps ...Dependency) []Status {
	res := make([]Status, 0, len(deps))
	for _, dep := range deps {
		res = append(res, Status{Dependency: dep, IsInstalled: dep.Check(ctx, client)})
	}
	return res
}

// Resolve checks deps and makes one install attempt for each missing dependency
// that has an install command for goos. It returns the ones still missing.
func Resolve(ctx context.Context, client gcloud.ClientInterface, goos string, deps ...Dependency) []Status {
	var missing []Status
	for _, status := range Check(ctx, client, deps...) {
		if status.IsInstalled {
			continue
		}
		if cmd, ok := status.InstallCommand(goos); ok {
			client.Run(ctx, "Installing "+status.Name+"...", cmd)
			status.IsInstalled = status.Check(ctx, client)
		}
		if !status.IsInstalled {
			missing = append(missing, status)
		}
	}
	return missing
}

// PrintStatus returns the dependency list with status icons and the help for
// every missing dependency.
func PrintStatus(statuses []Status) (string, string) {
	var depList, help string
	for _, dep := range statuses {
		if dep.IsInstalled {
			depList += style.TickIcon.Render() + " " + dep.Name + "\n"
		} else {
			depList += style.CrossIcon.Render() + " " + dep.Name + "\n"
			help += dep.Help + "\n"
		}
	}
	return depList, help
}

func AllInstalled(statuses []Status) bool {
	for _, s := range statuses {
		if !s.IsInstalled {
			return false
		}
	}
	return true
}
