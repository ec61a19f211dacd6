package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/commands/options"
	"tableflip.dev/luggage/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport   string
		httpHost    string
		httpPort    int
		httpPath    string
		httpTLSCert string
		httpTLSKey  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the Model Context Protocol server.",
		Long: options.Wrap80("Launch an MCP server that lets an assistant read the luggage list " +
			"and add, pack and remove baggage and items."),
		Example: `
luggage mcp
luggage mcp --transport stdio
luggage mcp --http-port 0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			path := strings.TrimSpace(httpPath)
			if path == "" {
				path = "/mcp"
			}
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			runner := mcp.Runner{
				Service:          env.Service,
				Name:             "luggage",
				Version:          version,
				HTTPEndpointPath: path,
				HTTPServerCert:   strings.TrimSpace(httpTLSCert),
				HTTPServerKey:    strings.TrimSpace(httpTLSKey),
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportHTTP):
				host := strings.TrimSpace(httpHost)
				if host == "" {
					host = "127.0.0.1"
				}
				if httpPort < 0 || httpPort > 65535 {
					return output.HandleError(fmt.Errorf("invalid http-port %d", httpPort))
				}

				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = net.JoinHostPort(host, strconv.Itoa(httpPort))
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n",
						listenURL(a, host, path, runner.HTTPServerCert != ""))
				}
			case string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			default:
				return output.HandleError(fmt.Errorf("unsupported transport %q (expected http or stdio)", transport))
			}

			return output.HandleError(runner.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "Transport to use: http or stdio.")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "Host or interface for the HTTP transport.")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "Port for the HTTP transport, 0 picks a free one.")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path.")
	cmd.Flags().StringVar(&httpTLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS.")
	cmd.Flags().StringVar(&httpTLSKey, "http-tls-key", "", "TLS private key file for HTTPS.")

	topLevel.AddCommand(cmd)
}

// listenURL renders the address the server is reachable at. Wildcard hosts
// are shown as loopback.
func listenURL(a net.Addr, host, path string, tls bool) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s%s", scheme, a.String(), path)
	}
	display := host
	if display == "0.0.0.0" || display == "::" {
		display = "127.0.0.1"
		if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
			display = tcpAddr.IP.String()
		}
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(display, strconv.Itoa(tcpAddr.Port)), path)
}
