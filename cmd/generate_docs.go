package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/teemow/gcalmcp/internal/calendar"
	"github.com/teemow/gcalmcp/internal/catalog"
	"github.com/teemow/gcalmcp/internal/tools/calendar_tools"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

func newToolsCmd() *cobra.Command {
	var (
		outputFile string
		format     string
		readOnly   bool
	)

	cmd := &cobra.Command{
		Use:     "tools",
		Aliases: []string{"generate-docs"},
		Short:   "Print the MCP tool reference",
		Long: `Print the tools the server exposes, with their descriptions and
argument schemas, exactly as a client sees them in tools/list.
No credentials are needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTools(cmd.OutOrStdout(), cmd.ErrOrStderr(), outputFile, format, readOnly)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatMarkdown, "Output format: markdown or json")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "List only the tools registered in read-only mode")

	return cmd
}

func runTools(stdout, stderr io.Writer, outputFile, format string, readOnly bool) error {
	tools, err := listTools(readOnly)
	if err != nil {
		return err
	}

	var out string
	switch format {
	case formatMarkdown:
		out = generateToolsMarkdown(tools)
	case formatJSON:
		data, err := json.MarshalIndent(struct {
			Tools []mcp.Tool `json:"tools"`
		}{Tools: tools}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode tools: %w", err)
		}
		out = string(data) + "\n"
	default:
		return fmt.Errorf("unsupported format %q (supported: markdown, json)", format)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(stderr, "Documentation written to: %s\n", outputFile)
		return nil
	}

	_, err = io.WriteString(stdout, out)
	return err
}

// listTools builds the catalog the way serve does. Handlers are bound to a
// nil gateway and never invoked.
func listTools(readOnly bool) ([]mcp.Tool, error) {
	c := catalog.New()
	if err := calendar_tools.RegisterCalendarTools(c, (*calendar.Gateway)(nil), readOnly); err != nil {
		return nil, err
	}
	return c.Tools(), nil
}

func generateToolsMarkdown(tools []mcp.Tool) string {
	var sb strings.Builder

	sb.WriteString("# MCP Tools Reference\n\n")
	sb.WriteString("This document lists the tools available when running gcalmcp as an MCP server.\n")
	sb.WriteString("All tools act on the primary calendar of the configured account.\n\n")
	sb.WriteString("**Note:** This documentation is automatically generated from the tool definitions.\n\n")

	sb.WriteString("## Table of Contents\n\n")
	for _, tool := range tools {
		sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", tool.Name, tool.Name))
	}
	sb.WriteString("\n")

	for _, tool := range tools {
		sb.WriteString(generateToolMarkdown(tool))
		sb.WriteString("\n")
	}

	return sb.String()
}

func generateToolMarkdown(tool mcp.Tool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("### %s\n\n", tool.Name))

	if tool.Description != "" {
		sb.WriteString(fmt.Sprintf("%s\n\n", tool.Description))
	}

	switch {
	case isSet(tool.Annotations.ReadOnlyHint):
		sb.WriteString("*Read-only.*\n\n")
	case isSet(tool.Annotations.DestructiveHint):
		sb.WriteString("*Destructive: permanently modifies calendar data.*\n\n")
	default:
		sb.WriteString("*Modifies calendar data.*\n\n")
	}

	if len(tool.InputSchema.Properties) > 0 {
		sb.WriteString("**Arguments:**\n")
		writeProperties(&sb, tool.InputSchema.Properties, tool.InputSchema.Required, 0)
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeProperties(sb *strings.Builder, props map[string]any, required []string, depth int) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		propMap, ok := props[name].(map[string]any)
		if !ok {
			continue
		}

		requiredStr := "optional"
		if slices.Contains(required, name) {
			requiredStr = "required"
		}

		sb.WriteString(fmt.Sprintf("%s- `%s` (%s, %s): ", indent, name, getPropertyType(propMap), requiredStr))
		if desc, ok := propMap["description"].(string); ok {
			sb.WriteString(desc)
		} else {
			sb.WriteString(fmt.Sprintf("%s parameter", getPropertyType(propMap)))
		}
		if enum, ok := propMap["enum"].([]string); ok {
			sb.WriteString(fmt.Sprintf(" One of: %s.", strings.Join(enum, ", ")))
		}
		sb.WriteString("\n")

		if nested, ok := propMap["properties"].(map[string]any); ok {
			nestedRequired, _ := propMap["required"].([]string)
			writeProperties(sb, nested, nestedRequired, depth+1)
		}
	}
}

func isSet(b *bool) bool {
	return b != nil && *b
}

func getPropertyType(prop map[string]any) string {
	if t, ok := prop["type"].(string); ok {
		return t
	}
	return "any"
}
