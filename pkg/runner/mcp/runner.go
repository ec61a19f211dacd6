package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/luggage/pkg/app"
)

// Transport selects how the MCP server is exposed.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdin/stdout.
	TransportStdio Transport = "stdio"
)

const (
	defaultListenAddr = "127.0.0.1:8080"
	defaultPath       = "/mcp"
	shutdownTimeout   = 5 * time.Second
)

// Runner serves the luggage list to MCP clients.
type Runner struct {
	Service *app.Service
	Name    string
	Version string

	Transport Transport

	HTTPListenAddr   string
	HTTPEndpointPath string
	HTTPServerCert   string
	HTTPServerKey    string
	// OnHTTPListening is called with the bound address, useful with port 0.
	OnHTTPListening func(net.Addr)
}

// NewServer builds the MCP server with every luggage tool and resource
// registered.
func NewServer(svc *app.Service, name, version string) *server.MCPServer {
	if name == "" {
		name = "luggage"
	}
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		name+" MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and edit the luggage packing list: baggage, their items and packed state."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	s := NewService(svc)
	registerResources(srv, s)
	registerTools(srv, s)
	return srv
}

// Do serves until ctx is done or the transport fails.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires a luggage service")
	}
	// delete_baggage asks for confirmation through its confirm argument.
	r.Service.Confirmer = app.AlwaysConfirm
	srv := NewServer(r.Service, r.Name, r.Version)

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

func (r Runner) endpoint() string {
	path := strings.TrimSpace(r.HTTPEndpointPath)
	if path == "" {
		return defaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	useTLS := r.HTTPServerCert != "" || r.HTTPServerKey != ""
	if useTLS && (r.HTTPServerCert == "" || r.HTTPServerKey == "") {
		return errors.New("both http tls cert and key must be provided")
	}
	addr := r.HTTPListenAddr
	if addr == "" {
		addr = defaultListenAddr
	}

	mux := http.NewServeMux()
	mux.Handle(r.endpoint(), server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", addr, err)
	}
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if useTLS {
			err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
		} else {
			err = httpSrv.Serve(ln)
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
