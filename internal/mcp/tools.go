package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"commitkit.dev/commitkit/internal/actions"
	"commitkit.dev/commitkit/internal/commit"
)

type pathParams struct {
	Path string `json:"path"`
}

type messageParams struct {
	CommitType string   `json:"commit_type"`
	ShortDesc  string   `json:"short_desc" validate:"required"`
	Details    []string `json:"details"`
}

type commitParams struct {
	Message string `json:"message" validate:"required"`
	Path    string `json:"path"`
}

type logParams struct {
	Count *int   `json:"count" validate:"omitempty,min=1"`
	Path  string `json:"path"`
}

type smartCommitParams struct {
	Commits []actions.Group `json:"commits" validate:"required"`
	Path    string          `json:"path"`
}

// toolHandler runs one tool with raw arguments.
type toolHandler func(ctx context.Context, args json.RawMessage) (*CallToolResult, *RPCError)

type toolEntry struct {
	tool    Tool
	handler toolHandler
}

// Toolset binds the commitkit tools to a Service.
type Toolset struct {
	service  *actions.Service
	validate *validator.Validate
	locks    *repoLocks
	entries  []toolEntry
	byName   map[string]toolEntry
}

// NewToolset creates the tool table for service.
func NewToolset(service *actions.Service) *Toolset {
	ts := &Toolset{
		service:  service,
		validate: validator.New(),
		locks:    newRepoLocks(),
		byName:   make(map[string]toolEntry),
	}

	ts.register(Tool{
		Name:        "git_status",
		Description: "Show the working tree status of a git repository: added, modified and deleted files.",
		InputSchema: objectSchema(map[string]any{"path": pathProperty}),
	}, ts.gitStatus)

	ts.register(Tool{
		Name:        "generate_commit_message",
		Description: "Generate a commit message with an emoji type prefix, a short summary and optional detail bullets.",
		InputSchema: objectSchema(map[string]any{
			"commit_type": typeProperty,
			"short_desc":  summaryProperty,
			"details":     detailsProperty,
		}, "commit_type", "short_desc"),
	}, ts.generateMessage)

	ts.register(Tool{
		Name:        "git_commit",
		Description: "Stage every change (git add .) and commit it with the given message.",
		InputSchema: objectSchema(map[string]any{
			"message": map[string]any{"type": "string", "description": "Commit message"},
			"path":    pathProperty,
		}, "message"),
	}, ts.gitCommit)

	ts.register(Tool{
		Name:        "list_commit_types",
		Description: "List the supported commit types with their emoji and description.",
		InputSchema: objectSchema(map[string]any{}),
	}, ts.listTypes)

	ts.register(Tool{
		Name:        "git_log",
		Description: "Show recent commits in one-line form.",
		InputSchema: objectSchema(map[string]any{
			"count": map[string]any{"type": "integer", "minimum": 1, "description": "Number of commits to show, default 10"},
			"path":  pathProperty,
		}),
	}, ts.gitLog)

	ts.register(Tool{
		Name:        "git_branch",
		Description: "Show the current branch.",
		InputSchema: objectSchema(map[string]any{"path": pathProperty}),
	}, ts.gitBranch)

	ts.register(Tool{
		Name: "smart_commit",
		Description: "Split the working tree into several commits. Each group stages its files and commits them " +
			"with its own type and message; a failing group does not stop the others. Order groups by priority " +
			"(fixes first, then features, then the rest).",
		InputSchema: objectSchema(map[string]any{
			"commits": map[string]any{
				"type":        "array",
				"description": "Commit groups, applied in order",
				"items": objectSchema(map[string]any{
					"files":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Paths to stage for this commit"},
					"commit_type": typeProperty,
					"short_desc":  summaryProperty,
					"details":     detailsProperty,
				}, "files", "commit_type", "short_desc"),
			},
			"path": pathProperty,
		}, "commits"),
	}, ts.smartCommit)

	return ts
}

var (
	pathProperty = map[string]any{"type": "string", "description": "Path to the git repository, defaults to the current directory"}
	typeProperty = map[string]any{
		"type":        "string",
		"description": "Commit type: " + strings.Join(commit.Keys(), "/"),
	}
	summaryProperty = map[string]any{"type": "string", "description": "Short summary, at most 50 characters"}
	detailsProperty = map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Detail lines, one change per item"}
)

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func (ts *Toolset) register(tool Tool, handler toolHandler) {
	entry := toolEntry{tool: tool, handler: handler}
	ts.entries = append(ts.entries, entry)
	ts.byName[tool.Name] = entry
}

// Tools returns the tool descriptors in registration order.
func (ts *Toolset) Tools() []Tool {
	tools := make([]Tool, len(ts.entries))
	for i, e := range ts.entries {
		tools[i] = e.tool
	}
	return tools
}

// Call runs the named tool. Unknown tools and bad arguments are protocol
// errors; tool failures are results with IsError set.
func (ts *Toolset) Call(ctx context.Context, name string, args json.RawMessage) (*CallToolResult, *RPCError) {
	entry, ok := ts.byName[name]
	if !ok {
		return nil, newRPCError(CodeInvalidParams, "unknown tool: %s", name)
	}
	return entry.handler(ctx, args)
}

// decode unmarshals args into dst and validates it.
func (ts *Toolset) decode(args json.RawMessage, dst any) *RPCError {
	if len(bytes.TrimSpace(args)) > 0 && !bytes.Equal(bytes.TrimSpace(args), []byte("null")) {
		if err := json.Unmarshal(args, dst); err != nil {
			return newRPCError(CodeInvalidParams, "invalid arguments: %v", err)
		}
	}
	if err := ts.validate.Struct(dst); err != nil {
		return newRPCError(CodeInvalidParams, "invalid arguments: %s", describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}

// withRepo runs fn while holding the lock of the repository at path.
func (ts *Toolset) withRepo(path string, fn func() actions.Result) *CallToolResult {
	unlock := ts.locks.Lock(repoKey(path))
	defer unlock()

	res := fn()
	return textResult(res.Text, res.Failed)
}

func (ts *Toolset) gitStatus(ctx context.Context, args json.RawMessage) (*CallToolResult, *RPCError) {
	var p pathParams
	if err := ts.decode(args, &p); err != nil {
		return nil, err
	}
	return ts.withRepo(p.Path, func() actions.Result { return ts.service.Status(ctx, p.Path) }), nil
}

func (ts *Toolset) generateMessage(_ context.Context, args json.RawMessage) (*CallToolResult, *RPCError) {
	var p messageParams
	if err := ts.decode(args, &p); err != nil {
		return nil, err
	}
	res := ts.service.GenerateMessage(p.CommitType, p.ShortDesc, p.Details)
	return textResult(res.Text, res.Failed), nil
}

func (ts *Toolset) gitCommit(ctx context.Context, args json.RawMessage) (*CallToolResult, *RPCError) {
	var p commitParams
	if err := ts.decode(args, &p); err != nil {
		return nil, err
	}
	return ts.withRepo(p.Path, func() actions.Result { return ts.service.Commit(ctx, p.Path, p.Message) }), nil
}

func (ts *Toolset) listTypes(_ context.Context, _ json.RawMessage) (*CallToolResult, *RPCError) {
	res := ts.service.ListTypes()
	return textResult(res.Text, false), nil
}

func (ts *Toolset) gitLog(ctx context.Context, args json.RawMessage) (*CallToolResult, *RPCError) {
	var p logParams
	if err := ts.decode(args, &p); err != nil {
		return nil, err
	}
	count := 0
	if p.Count != nil {
		count = *p.Count
	}
	return ts.withRepo(p.Path, func() actions.Result { return ts.service.Log(ctx, p.Path, count) }), nil
}

func (ts *Toolset) gitBranch(ctx context.Context, args json.RawMessage) (*CallToolResult, *RPCError) {
	var p pathParams
	if err := ts.decode(args, &p); err != nil {
		return nil, err
	}
	return ts.withRepo(p.Path, func() actions.Result { return ts.service.Branch(ctx, p.Path) }), nil
}

func (ts *Toolset) smartCommit(ctx context.Context, args json.RawMessage) (*CallToolResult, *RPCError) {
	var p smartCommitParams
	if err := ts.decode(args, &p); err != nil {
		return nil, err
	}
	return ts.withRepo(p.Path, func() actions.Result {
		report, err := ts.service.GroupCommit(ctx, p.Path, p.Commits, nil)
		if err != nil {
			return actions.RepositoryFailure(err)
		}
		return actions.Result{Text: report.Text}
	}), nil
}
