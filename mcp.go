package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"clawcost/claw"
)

const (
	serverName = "clawcost"
	toolName   = "solve_claw_machines"
)

// solveInput is the argument of the solve tool.
type solveInput struct {
	Input      string `json:"input" jsonschema:"puzzle text: blocks of Button A, Button B and Prize lines separated by blank lines"`
	Large      bool   `json:"large,omitempty" jsonschema:"move every prize by the large-target adjustment before solving"`
	Adjustment int64  `json:"adjustment,omitempty" jsonschema:"custom prize adjustment, overrides large"`
	Strict     bool   `json:"strict,omitempty" jsonschema:"fail when any block cannot be parsed"`
}

// solveOutput is the structured result of the solve tool.
type solveOutput struct {
	Total    int64    `json:"total"`
	Machines int      `json:"machines"`
	Solved   int      `json:"solved"`
	Skipped  []string `json:"skipped,omitempty"`
}

// newMCPServer builds an MCP server exposing the solver as a tool.
func newMCPServer(cfg appConfig, log *logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        toolName,
		Description: "Compute the fewest tokens needed to win every winnable claw machine prize.",
	}, solveToolHandler(cfg, log))
	return server
}

func solveToolHandler(cfg appConfig, log *logger) mcp.ToolHandlerFor[solveInput, solveOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in solveInput) (*mcp.CallToolResult, solveOutput, error) {
		if err := ctx.Err(); err != nil {
			return nil, solveOutput{}, err
		}
		if in.Adjustment < 0 {
			return nil, solveOutput{}, fmt.Errorf("adjustment must be >= 0, got %d", in.Adjustment)
		}
		adj := in.Adjustment
		if adj == 0 && in.Large {
			adj = cfg.PrizeAdjustment
		}

		s := claw.Process(in.Input, claw.WithPrizeAdjustment(adj))
		if in.Strict || cfg.Strict {
			if err := s.Strict(); err != nil {
				return nil, solveOutput{}, fmt.Errorf("malformed input: %w", err)
			}
		}
		log.infof("tool %s: machines=%d solved=%d skipped=%d total=%d", toolName, s.Machines, s.Solved, len(s.Skipped), s.Total)

		out := solveOutput{Total: s.Total, Machines: s.Machines, Solved: s.Solved}
		for i := range s.Skipped {
			out.Skipped = append(out.Skipped, s.Skipped[i].Error())
		}
		return nil, out, nil
	}
}

// runServe serves MCP over stdio until ctx is done or the client disconnects.
func runServe(ctx context.Context, log *logger, cfg appConfig) error {
	log.infof("serving MCP over stdio: tool=%s", toolName)
	if err := newMCPServer(cfg, log).Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
