package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Environment variables read by Config. They are also passed to extensions.
const (
	EnvCurrency           = "XPS_CURRENCY"
	EnvLimit              = "XPS_LIMIT"
	EnvLogLevel           = "XPS_LOG_LEVEL"
	EnvClassificationFile = "XPS_CLASSIFICATION_FILE"
	EnvOutputDir          = "XPS_OUTPUT_DIR"
)

// RunExtension attempts to find and execute an external xps-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "xps-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logrus.Debugf("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables, extensions read them with LoadConfig.
	cmd.Env = append(os.Environ(),
		EnvCurrency+"="+*currency,
		EnvLimit+"="+strconv.Itoa(*limit),
		EnvLogLevel+"="+*logLevel,
		EnvClassificationFile+"="+*classificationFile,
		EnvOutputDir+"="+*outputDir,
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
