package testutils

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

var multiSpaceRegex = regexp.MustCompile(" +")

// RunCVPCTL executes a cvpctl command with the given arguments string (split by spaces).
func RunCVPCTL(ctx context.Context, env []string, binary, cmdArgs string, nolog bool) (stdout, stderr []byte, err error) {
	cmdArgs = strings.TrimSpace(cmdArgs)
	cmdArgs = multiSpaceRegex.ReplaceAllString(cmdArgs, " ")

	var args []string
	if cmdArgs != "" {
		args = strings.Split(cmdArgs, " ")
	}
	if nolog {
		args = append([]string{"--no-log"}, args...)
	}

	var outData, errData bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &outData
	cmd.Stderr = &errData

	// Custom env goes last so it wins over the host one.
	cmd.Env = append(append([]string{}, os.Environ()...), env...)

	err = cmd.Run()

	return outData.Bytes(), errData.Bytes(), err
}
