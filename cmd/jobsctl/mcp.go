package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

const defaultEndpoint = "http://localhost:8080/mcp/stream"

func init() {
	rootCmd.PersistentFlags().String("endpoint", defaultEndpoint, "MCP stream endpoint of a running server")
	_ = settings.BindPFlag("mcp_endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))

	searchCmd.Flags().String("role", "", "role keyword")
	searchCmd.Flags().String("location", "", "location keyword")
	searchCmd.Flags().String("category", "", "exact job title")
	searchCmd.Flags().Float64("salary-min", 0, "minimum annual salary")
	searchCmd.Flags().Float64("salary-max", 0, "maximum annual salary")
	searchCmd.Flags().String("sort", "", "relevance, newest, closing-soon, salary-high or salary-low")
	searchCmd.Flags().Int("limit", 0, "maximum jobs to list")

	statusCmd.Flags().Bool("load", false, "load catalogs that are not cached yet")
	pathCmd.Flags().String("region", "", "rewrite into this region instead of resolving")

	rootCmd.AddCommand(searchCmd, statusCmd, translateCmd, pathCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <region>",
	Short: "Search a region's job catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		arguments := map[string]any{"region": args[0]}
		for _, name := range []string{"role", "location", "category", "sort"} {
			if v, _ := f.GetString(name); v != "" {
				arguments[name] = v
			}
		}
		if v, _ := f.GetFloat64("salary-min"); v > 0 {
			arguments["salary_min"] = v
		}
		if v, _ := f.GetFloat64("salary-max"); v > 0 {
			arguments["salary_max"] = v
		}
		if v, _ := f.GetInt("limit"); v > 0 {
			arguments["limit"] = v
		}
		return callTool(cmd.Context(), cmd.OutOrStdout(), "job_search", arguments)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status [region]",
	Short: "Show which regional catalogs are loaded",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arguments := map[string]any{}
		if len(args) == 1 {
			arguments["region"] = args[0]
		}
		if load, _ := cmd.Flags().GetBool("load"); load {
			arguments["load"] = true
		}
		return callTool(cmd.Context(), cmd.OutOrStdout(), "catalog_status", arguments)
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate <region> [text...]",
	Short: "Apply a region's vocabulary to UI strings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arguments := map[string]any{"region": args[0]}
		if len(args) > 1 {
			arguments["texts"] = args[1:]
		}
		return callTool(cmd.Context(), cmd.OutOrStdout(), "locale_translate", arguments)
	},
}

var pathCmd = &cobra.Command{
	Use:   "path <path>",
	Short: "Resolve or rewrite a site path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arguments := map[string]any{"path": args[0]}
		if r, _ := cmd.Flags().GetString("region"); r != "" {
			arguments["region"] = r
		}
		return callTool(cmd.Context(), cmd.OutOrStdout(), "region_path", arguments)
	},
}

func callTool(ctx context.Context, out io.Writer, name string, arguments map[string]any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "jobsctl",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{
		Endpoint: settings.GetString("mcp_endpoint"),
	}, nil)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = session.Close() }()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: arguments})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	text := resultText(result)
	if result.IsError {
		return fmt.Errorf("%s: %s", name, text)
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func resultText(res *sdkmcp.CallToolResult) string {
	var b strings.Builder
	for _, c := range res.Content {
		if txt, ok := c.(*sdkmcp.TextContent); ok {
			b.WriteString(txt.Text)
		}
	}
	return b.String()
}
