package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	serveDir  string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the generated page locally",
	Long:  `Serve the output directory over HTTP for a local preview of the generated resume page.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveDir, "dir", "docs", "Directory to serve")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	info, err := os.Stat(serveDir)
	if err != nil {
		return fmt.Errorf("cannot serve %s: %w (run `resume_site build` first)", serveDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot serve %s: not a directory", serveDir)
	}

	addr := fmt.Sprintf(":%d", servePort)
	fmt.Fprintf(os.Stdout, "Serving %s at http://localhost%s\n", serveDir, addr)

	return http.ListenAndServe(addr, http.FileServer(http.Dir(serveDir)))
}
