// Package mcp serves the commitkit tools over the Model Context Protocol.
//
// Messages are JSON-RPC 2.0 objects, one per line, read from an input
// stream and answered on an output stream (normally stdin and stdout).
// Requests are handled concurrently; tool calls that touch a repository
// are serialized per repository root.
package mcp
