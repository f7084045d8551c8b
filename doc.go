// Package main implements clawcost, a CLI that computes the fewest tokens
// needed to win every claw machine prize described in a puzzle input.
//
// # Usage
//
//	clawcost solve [--config PATH] [--input PATH|-] [--fetch] [--large] [--adjust N] [--strict] [--verbose]
//	clawcost serve [--config PATH]
//
// solve prints the summed cost on stdout. serve exposes the same
// computation as an MCP tool over stdio.
//
// # Configuration
//
// Configuration is loaded from config.json in the current directory or the
// path named by CLAWCOST_CONFIG. A .env file is loaded at startup.
package main
