package dispatch

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// SuccessResult returns an envelope with one text block per payload entry.
func SuccessResult(payload []string) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(payload))
	for _, text := range payload {
		content = append(content, mcp.NewTextContent(text))
	}
	return &mcp.CallToolResult{Content: content}
}

// ErrorResult returns an error envelope with the single block "Error: {message}".
func ErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}

// ResultText concatenates the text blocks of an envelope, one per line.
func ResultText(result *mcp.CallToolResult) string {
	var text string
	for i, c := range result.Content {
		tc, ok := mcp.AsTextContent(c)
		if !ok {
			continue
		}
		if i > 0 {
			text += "\n"
		}
		text += tc.Text
	}
	return text
}
