package tools

import (
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// summary builds a "[tool] header" line followed by bullet lines
func summary(tool, header string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", tool, header)
	for _, l := range lines {
		b.WriteString("\n• ")
		b.WriteString(l)
	}
	return b.String()
}
