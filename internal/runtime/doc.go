// Package runtime provides the execution context for commitkit commands.
//
// It wires configuration, console output and the git gateway into the
// Service that every command and the MCP server run tools through.
package runtime
