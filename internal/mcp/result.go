package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mamaar/opcalc/pkg/calc"
)

// OperationInfo describes one registered operation.
type OperationInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// CreateResult is the structured output of create_calculator.
type CreateResult struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Operations []OperationInfo `json:"operations"`
}

// EvaluateResult is the structured output of evaluate.
type EvaluateResult struct {
	Result                 float64 `json:"result"`
	SuccessfulCalculations int64   `json:"successful_calculations"`
}

// StatsResult is the structured output of calculation_stats.
type StatsResult struct {
	Calculators            int   `json:"calculators"`
	SuccessfulCalculations int64 `json:"successful_calculations"`
}

// textResult is a convenience that marshals v to JSON and wraps it in a
// CallToolResult with a single TextContent block.
func textResult(v any) *mcp.CallToolResult {
	b, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(b))
}

// errResult returns a CallToolResult that signals an error.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// operationInfos collects symbol/name pairs in insertion order.
func operationInfos(ops []calc.Operation) []OperationInfo {
	infos := make([]OperationInfo, 0, len(ops))
	for _, op := range ops {
		infos = append(infos, OperationInfo{Symbol: op.Symbol(), Name: op.Name()})
	}
	return infos
}
