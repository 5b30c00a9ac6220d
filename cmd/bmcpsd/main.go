package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/bmcps/browsermcp/internal/bmcpslog"
	"github.com/bmcps/browsermcp/internal/cdpdriver"
	"github.com/bmcps/browsermcp/internal/config"
	"github.com/bmcps/browsermcp/internal/mcpserver"
)

var (
	profileDir          string
	chromePath          string
	remoteDebuggingPort int
	disableTranslate    bool
	debugMode           bool
)

var rootCmd = &cobra.Command{
	Use:   "bmcpsd",
	Short: "Browser automation MCP server, speaking stdio to an MCP client and CDP to Chrome",
	Long: `bmcpsd is the stdio entrypoint for the browser automation MCP server.

It exposes a Chrome DevTools Protocol driver as a set of MCP tools (navigate,
click, fill, evaluate, console queries, and so on). A client calls open_browser
to adopt or launch Chrome, drives it with the rest of the tool set, and calls
close_browser (or simply disconnects) when done.`,
	RunE: runServer,
}

func init() {
	tmpDir := os.TempDir()
	rootCmd.Flags().StringVar(&profileDir, "profile-dir", filepath.Join(tmpDir, "bmcps-chrome-profile"), "Chrome user-data-dir")
	rootCmd.Flags().StringVar(&chromePath, "chrome-path", "", "override the Chrome binary search")
	rootCmd.Flags().IntVar(&remoteDebuggingPort, "remote-debugging-port", 0, "fixed remote debugging port (0 = ephemeral)")
	rootCmd.Flags().BoolVar(&disableTranslate, "disable-translate", true, "disable the translate feature and forbid adopting an already-running Chrome")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging (equivalent to BMCPS_DEBUG=1)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	if debugMode {
		bmcpslog.ForceDebug()
	}
	log := bmcpslog.For("main")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading launch config: %w", err)
	}

	driver := cdpdriver.NewDriver(cfg)

	srv := mcpserver.New(driver, mcpserver.OpenBrowserDefaults{
		ProfileDir:          profileDir,
		ChromePath:          chromePath,
		RemoteDebuggingPort: remoteDebuggingPort,
		DisableTranslate:    disableTranslate,
	})

	sigChan := make(chan os.Signal, 1)
	setupSignalHandling(sigChan)
	go func() {
		<-sigChan
		log.Info("received signal, closing browser and exiting")
		driver.CloseBrowser()
		os.Exit(0)
	}()

	if err := server.ServeStdio(srv); err != nil {
		fmt.Fprintf(os.Stderr, "bmcpsd: stdio server error: %v\n", err)
		driver.CloseBrowser()
		os.Exit(1)
	}

	driver.CloseBrowser()
	return nil
}
