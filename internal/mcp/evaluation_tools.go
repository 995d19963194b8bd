package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerEvaluationTools adds the expression evaluation tools to the server.
func registerEvaluationTools(s *server.MCPServer, state *CalcServer) {
	addEvaluateTool(s, state)
	addCalculationStatsTool(s, state)
}

// addEvaluateTool adds the evaluate tool to the MCP server
func addEvaluateTool(s *server.MCPServer, state *CalcServer) {
	evaluateTool := mcp.NewTool("evaluate",
		mcp.WithDescription("Evaluate a left-to-right expression like '10 + 5 - 3 =' on a calculator. "+
			"There is no operator precedence; operators apply in the order given. "+
			"An operator the calculator does not carry makes that step yield 0."),
		mcp.WithString("calculator_id",
			mcp.Required(),
			mcp.Description("Id returned by create_calculator"),
		),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("Whitespace-separated tokens ending with '='"),
		),
	)

	s.AddTool(evaluateTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		id, ok := args["calculator_id"].(string)
		if !ok {
			return mcp.NewToolResultError("calculator_id is required"), nil
		}
		expression, ok := args["expression"].(string)
		if !ok {
			return mcp.NewToolResultError("expression is required"), nil
		}

		c, err := state.GetCalculator(id)
		if err != nil {
			return errResult(err), nil
		}

		result, err := c.EvaluateString(expression)
		if err != nil {
			return errResult(err), nil
		}
		state.logger.Debug("expression evaluated", "calculator", c.Name(), "result", result)

		return textResult(EvaluateResult{
			Result:                 result,
			SuccessfulCalculations: state.SuccessfulCalculations(),
		}), nil
	})
}

// addCalculationStatsTool adds the calculation_stats tool to the MCP server
func addCalculationStatsTool(s *server.MCPServer, state *CalcServer) {
	statsTool := mcp.NewTool("calculation_stats",
		mcp.WithDescription("Show the number of registered calculators and completed calculations"),
	)

	s.AddTool(statsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(StatsResult{
			Calculators:            state.CalculatorCount(),
			SuccessfulCalculations: state.SuccessfulCalculations(),
		}), nil
	})
}
