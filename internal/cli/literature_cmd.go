package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lxltx2025/nsfcwriter/internal/cli/formatter"
)

func newLiteratureCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "literature",
		Short: "管理参考文献库",
	}

	cmd.AddCommand(
		newLiteratureAddCmd(app),
		newLiteratureStatsCmd(app),
		newLiteratureClearCmd(app),
	)

	return cmd
}

func newLiteratureAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>...",
		Short: "导入文献文件或目录",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			total := 0
			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("stat %s: %w", path, err)
				}
				if info.IsDir() {
					results, err := app.Literature.AddDirectory(ctx, path)
					if err != nil {
						return fmt.Errorf("importing directory %s: %w", path, err)
					}
					for _, n := range results {
						total += n
					}
					continue
				}
				for _, n := range app.Literature.AddFiles(ctx, []string{path}) {
					total += n
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "导入完成，共 %d 个片段\n", total)
			return nil
		},
	}
}

func newLiteratureStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "查看文献库统计",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Literature.GetStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("reading literature stats: %w", err)
			}
			if app.interactive() {
				fmt.Fprint(cmd.OutOrStdout(),
					formatter.FormatLiteratureStats(stats.TotalChunks, stats.TotalDocuments))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "文档数: %d\n片段数: %d\n",
					stats.TotalDocuments, stats.TotalChunks)
			}
			return nil
		},
	}
}

func newLiteratureClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "清空文献库",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Literature.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clearing literature store: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "文献库已清空")
			return nil
		},
	}
}
