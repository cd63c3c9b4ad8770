package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"footman/internal/lsp"

	"github.com/spf13/cobra"
)

// RunLSP starts the language server on stdio. Log output goes to stderr
// and a file under the system temp directory; stdout stays reserved for
// the protocol.
func RunLSP(cmd *cobra.Command, args []string) error {
	logsDir := filepath.Join(os.TempDir(), "footman")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile, err := os.OpenFile(
		filepath.Join(logsDir, "footman.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0666,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	multiWriter := io.MultiWriter(os.Stderr, logFile)
	log.SetOutput(multiWriter)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Println("Starting footman language server...")

	server, err := lsp.NewServer()
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := server.RunStdio(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
