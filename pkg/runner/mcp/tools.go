package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var typeEnum = mcp.Enum("carry-on", "medium-checked", "large-checked", "backpack", "other")

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListBaggageTool(srv, svc)
	registerGetBaggageTool(srv, svc)
	registerAddBaggageTool(srv, svc)
	registerUpdateBaggageTool(srv, svc)
	registerDeleteBaggageTool(srv, svc)
	registerAddItemTool(srv, svc)
	registerSetPackedTool(srv, svc)
	registerSetQuantityTool(srv, svc)
	registerDeleteItemTool(srv, svc)
	registerPackAllTool(srv, svc)
	registerExportTool(srv, svc)
}

func registerListBaggageTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_luggage",
		mcp.WithDescription("List every baggage with its items and packing progress."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := svc.ListBaggage(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"baggage": list,
			"count":   len(list),
		})
	})
}

func registerGetBaggageTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_baggage",
		mcp.WithDescription("Fetch a single baggage by id or nickname."),
		mcp.WithString("baggage",
			mcp.Required(),
			mcp.Description("Baggage id or nickname."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("baggage")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.BaggageByRef(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddBaggageTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_baggage",
		mcp.WithDescription("Add an empty baggage."),
		mcp.WithString("type",
			mcp.Description("Baggage type, carry-on when omitted."),
			typeEnum,
		),
		mcp.WithString("nickname",
			mcp.Description("Optional nickname such as \"Weekend bag\"."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Type     string `json:"type"`
			Nickname string `json:"nickname"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddBaggage(ctx, args.Type, args.Nickname)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateBaggageTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_baggage",
		mcp.WithDescription("Rename a baggage or change its type."),
		mcp.WithString("baggage",
			mcp.Required(),
			mcp.Description("Baggage id or nickname."),
		),
		mcp.WithString("nickname",
			mcp.Description("New nickname. An empty string clears it."),
		),
		mcp.WithString("type",
			mcp.Description("New baggage type."),
			typeEnum,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Baggage  string  `json:"baggage"`
			Nickname *string `json:"nickname"`
			Type     *string `json:"type"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Nickname == nil && args.Type == nil {
			return mcp.NewToolResultError("nickname or type is required"), nil
		}

		dto, err := svc.UpdateBaggage(ctx, args.Baggage, args.Nickname, args.Type)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteBaggageTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_baggage",
		mcp.WithDescription("Delete a baggage and all of its items. This cannot be undone."),
		mcp.WithString("baggage",
			mcp.Required(),
			mcp.Description("Baggage id or nickname."),
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to delete a baggage that still holds items."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("baggage")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !request.GetBool("confirm", false) {
			if dto, err := svc.BaggageByRef(ctx, ref); err == nil && len(dto.Items) > 0 {
				return mcp.NewToolResultError("baggage still holds items, call again with confirm=true"), nil
			}
		}

		deleted, err := svc.DeleteBaggage(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"baggage": ref,
			"deleted": deleted,
		})
	})
}

func registerAddItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_item",
		mcp.WithDescription("Add an unpacked item to a baggage. Adding a name that is already unpacked raises its quantity."),
		mcp.WithString("baggage",
			mcp.Required(),
			mcp.Description("Baggage id or nickname."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Item name, for example Socks."),
		),
		mcp.WithString("icon",
			mcp.Description("Optional icon key; looked up from the catalog when omitted."),
		),
		mcp.WithNumber("quantity",
			mcp.Description("How many to add (default 1)."),
			mcp.Min(1),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bag, err := request.RequireString("baggage")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		icon := strings.TrimSpace(request.GetString("icon", ""))
		quantity := request.GetInt("quantity", 1)

		dto, err := svc.AddItem(ctx, bag, name, icon, quantity)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetPackedTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_packed",
		mcp.WithDescription("Pack or unpack an item. Packing merges it into a packed item of the same name."),
		mcp.WithString("baggage",
			mcp.Required(),
			mcp.Description("Baggage id or nickname."),
		),
		mcp.WithString("item",
			mcp.Required(),
			mcp.Description("Item id or name."),
		),
		mcp.WithBoolean("packed",
			mcp.Required(),
			mcp.Description("True to pack, false to unpack."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Baggage string `json:"baggage"`
			Item    string `json:"item"`
			Packed  bool   `json:"packed"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.SetPacked(ctx, args.Baggage, args.Item, args.Packed)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetQuantityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_quantity",
		mcp.WithDescription("Change how many of an item to bring."),
		mcp.WithString("baggage",
			mcp.Required(),
			mcp.Description("Baggage id or nickname."),
		),
		mcp.WithString("item",
			mcp.Required(),
			mcp.Description("Item id or name."),
		),
		mcp.WithNumber("quantity",
			mcp.Required(),
			mcp.Description("New quantity, at least 1."),
			mcp.Min(1),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bag, err := request.RequireString("baggage")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		item, err := request.RequireString("item")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		quantity, err := request.RequireInt("quantity")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.SetQuantity(ctx, bag, item, quantity)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_item",
		mcp.WithDescription("Remove an item from a baggage."),
		mcp.WithString("baggage",
			mcp.Required(),
			mcp.Description("Baggage id or nickname."),
		),
		mcp.WithString("item",
			mcp.Required(),
			mcp.Description("Item id or name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bag, err := request.RequireString("baggage")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		item, err := request.RequireString("item")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.DeleteItem(ctx, bag, item)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerPackAllTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"pack_all",
		mcp.WithDescription("Pack every item of a baggage, or unpack them all when everything is already packed."),
		mcp.WithString("baggage",
			mcp.Required(),
			mcp.Description("Baggage id or nickname."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bag, err := request.RequireString("baggage")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.PackAll(ctx, bag)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerExportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"export_csv",
		mcp.WithDescription("Export the whole luggage list as CSV."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		csv, rows, err := svc.ExportCSV(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"csv":  csv,
			"rows": rows,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
