package mcp

import "github.com/mark3labs/mcp-go/server"

// RegisterAllTools wires every opcalc tool into the MCP server.
func RegisterAllTools(s *server.MCPServer, state *CalcServer) {
	registerCalculatorTools(s, state)
	registerEvaluationTools(s, state)
}
