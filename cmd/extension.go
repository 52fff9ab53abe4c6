package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/google/subcommands"
)

// Environment of mny extensions. They are also read by Configure, so an
// extension built with this package sees the same settings as mny.
const (
	EnvLocale   = "MNY_LOCALE"
	EnvCurrency = "MNY_CURRENCY"
	EnvVerbose  = "MNY_VERBOSE"
)

// IsRegistered reports whether name is a subcommand of c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// RunExtension attempts to find and execute an external mny-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The resolved settings are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "mny-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = append(os.Environ(),
		EnvLocale+"="+settings.Locale,
		EnvCurrency+"="+settings.Currency,
		EnvVerbose+"="+strconv.FormatBool(settings.Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
