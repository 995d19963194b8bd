package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mamaar/opcalc/pkg/calc"
)

// registerCalculatorTools adds the calculator lifecycle tools to the server.
func registerCalculatorTools(s *server.MCPServer, state *CalcServer) {
	addCreateCalculatorTool(s, state)
	addAddOperationTool(s, state)
	addListOperationsTool(s, state)
	addInputFormatTool(s, state)
}

// addCreateCalculatorTool adds the create_calculator tool to the MCP server
func addCreateCalculatorTool(s *server.MCPServer, state *CalcServer) {
	createTool := mcp.NewTool("create_calculator",
		mcp.WithDescription("Create a named calculator with a set of operations, selected by symbol"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Display name for the calculator"),
		),
		mcp.WithString("operations",
			mcp.Required(),
			mcp.Description("Whitespace-separated operation symbols out of: + - * / ** V (at most 16, duplicates allowed)"),
		),
	)

	s.AddTool(createTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		name, ok := args["name"].(string)
		if !ok {
			return mcp.NewToolResultError("name is required"), nil
		}
		operations, ok := args["operations"].(string)
		if !ok {
			return mcp.NewToolResultError("operations is required"), nil
		}

		id, c, err := state.CreateCalculator(name, strings.Fields(operations))
		if err != nil {
			return errResult(err), nil
		}

		return textResult(CreateResult{
			ID:         id,
			Name:       c.Name(),
			Operations: operationInfos(c.Operations()),
		}), nil
	})
}

// addAddOperationTool adds the add_operation tool to the MCP server
func addAddOperationTool(s *server.MCPServer, state *CalcServer) {
	addTool := mcp.NewTool("add_operation",
		mcp.WithDescription("Append one more operation to an existing calculator"),
		mcp.WithString("calculator_id",
			mcp.Required(),
			mcp.Description("Id returned by create_calculator"),
		),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Operation symbol, one of: + - * / ** V"),
		),
	)

	s.AddTool(addTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		id, ok := args["calculator_id"].(string)
		if !ok {
			return mcp.NewToolResultError("calculator_id is required"), nil
		}
		symbol, ok := args["symbol"].(string)
		if !ok {
			return mcp.NewToolResultError("symbol is required"), nil
		}

		c, err := state.GetCalculator(id)
		if err != nil {
			return errResult(err), nil
		}
		op, err := calc.New(symbol)
		if err != nil {
			return errResult(err), nil
		}

		// Calculator synchronizes its own operation list, so no server
		// lock is needed against concurrent evaluate calls.
		if err := c.AddOperation(op); err != nil {
			return errResult(err), nil
		}

		return textResult(CreateResult{
			ID:         id,
			Name:       c.Name(),
			Operations: operationInfos(c.Operations()),
		}), nil
	})
}

// addListOperationsTool adds the list_operations tool to the MCP server
func addListOperationsTool(s *server.MCPServer, state *CalcServer) {
	listTool := mcp.NewTool("list_operations",
		mcp.WithDescription("List a calculator's operations in the order they were registered"),
		mcp.WithString("calculator_id",
			mcp.Required(),
			mcp.Description("Id returned by create_calculator"),
		),
	)

	s.AddTool(listTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		id, ok := args["calculator_id"].(string)
		if !ok {
			return mcp.NewToolResultError("calculator_id is required"), nil
		}

		c, err := state.GetCalculator(id)
		if err != nil {
			return errResult(err), nil
		}

		return textResult(operationInfos(c.Operations())), nil
	})
}

// addInputFormatTool adds the input_format tool to the MCP server
func addInputFormatTool(s *server.MCPServer, state *CalcServer) {
	formatTool := mcp.NewTool("input_format",
		mcp.WithDescription("Show the expression format accepted by evaluate"),
		mcp.WithString("calculator_id",
			mcp.Required(),
			mcp.Description("Id returned by create_calculator"),
		),
	)

	s.AddTool(formatTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		id, ok := args["calculator_id"].(string)
		if !ok {
			return mcp.NewToolResultError("calculator_id is required"), nil
		}

		c, err := state.GetCalculator(id)
		if err != nil {
			return errResult(err), nil
		}

		var b strings.Builder
		c.ListInputFormat(&b)
		return mcp.NewToolResultText(b.String()), nil
	})
}
