package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

func newRefineCmd(app *App) *cobra.Command {
	var (
		section  string
		file     string
		feedback string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "refine",
		Short: "根据修改意见优化章节内容",
		RunE: func(cmd *cobra.Command, args []string) error {
			if section == "" || file == "" || feedback == "" {
				return fmt.Errorf("--section, --file and --feedback are required")
			}
			return runRefine(app, cmd, section, file, feedback, output)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "待优化的章节名")
	cmd.Flags().StringVar(&file, "file", "", "原始内容文件")
	cmd.Flags().StringVar(&feedback, "feedback", "", "修改意见")
	cmd.Flags().StringVarP(&output, "output", "o", "", "输出文件，缺省打印到标准输出")

	return cmd
}

func runRefine(app *App, cmd *cobra.Command, section, file, feedback, output string) error {
	name := domain.SectionName(section)
	if !domain.IsCanonical(name) {
		return fmt.Errorf("未知章节: %s", section)
	}

	original, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading original content: %w", err)
	}

	refined, err := app.Generator.RefineSection(cmd.Context(), name, string(original), feedback)
	if err != nil {
		return fmt.Errorf("refining %s: %w", section, err)
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(refined), 0644); err != nil {
			return fmt.Errorf("writing refined content: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "优化结果已保存: %s\n", output)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), refined)
	return nil
}
