package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"accuracycheck/internal/errors"

	"github.com/mattn/go-isatty"
)

// resolveInputPath picks the workbook path from the argument, the configured value,
// or a prompt when stdin is a terminal.
func resolveInputPath(argPath, configured string, in *os.File, out io.Writer) (string, error) {
	if p := strings.TrimSpace(argPath); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(configured); p != "" {
		return p, nil
	}
	if in == nil || !isTerminal(in.Fd()) {
		return "", errors.InvalidInput("no workbook path: pass it as an argument or set EXCEL_FILE_PATH")
	}
	return promptPath(in, out)
}

func promptPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the path to the Excel file: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("read path: %w", err))
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.InvalidInput("no workbook path entered")
	}
	return path, nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
