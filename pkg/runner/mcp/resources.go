package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerBaggageResource(srv, svc)
	registerBaggageTemplate(srv, svc)
	registerCSVResource(srv, svc)
}

func registerBaggageResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"luggage://baggage",
		"Luggage",
		mcp.WithResourceDescription("Every baggage with its items and packing progress."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		list, err := svc.ListBaggage(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"baggage": list,
			"count":   len(list),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerBaggageTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"luggage://baggage/{ref}",
		"Baggage",
		mcp.WithTemplateDescription("A single baggage by id or nickname."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ref := templateArg(request.Params.Arguments["ref"])
		if ref == "" {
			return nil, fmt.Errorf("baggage reference is required")
		}
		dto, err := svc.BaggageByRef(ctx, ref)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"baggage": dto})
	})
}

func registerCSVResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"luggage://export.csv",
		"Luggage CSV",
		mcp.WithResourceDescription("The luggage list in the CSV interchange format."),
		mcp.WithMIMEType("text/csv"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		csv, _, err := svc.ExportCSV(ctx)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/csv",
				Text:     csv,
			},
		}, nil
	})
}

// templateArg unwraps a URI template argument, which arrives either as a
// string or as a list of strings.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	case []any:
		if len(t) > 0 {
			s, _ := t[0].(string)
			return s
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
