package cmd

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wisklang/wisk/replmode"
)

var serveCmd = &cobra.Command{
	Use:   "serve <port>",
	Short: "Start a Wisk REPL server",
	Long: `Listen on the given TCP port and hand each connecting client its own
interactive Wisk session, grounded on go-mix's "server" mode.`,
	Args: cobra.ExactArgs(1),
	RunE: serveRepl,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serveRepl(_ *cobra.Command, args []string) error {
	port := args[0]
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to start server on port %s: %w", port, err)
	}
	defer listener.Close()

	info := color.New(color.FgCyan)
	info.Printf("wisk REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			info.Fprintf(os.Stderr, "accept error: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	info := color.New(color.FgCyan)
	info.Printf("client connected: %s\n", conn.RemoteAddr())
	if err := replmode.New(Version).StartRaw(conn); err != nil {
		info.Printf("client session error (%s): %v\n", conn.RemoteAddr(), err)
	}
	info.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
