package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
	"github.com/lxltx2025/nsfcwriter/internal/generation"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		topic        string
		section      string
		title        string
		output       string
		noLiterature bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "生成申请书草稿",
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic == "" {
				return fmt.Errorf("--topic is required")
			}
			return runGenerate(app, cmd, topic, section, title, output, !noLiterature)
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "研究主题（必填）")
	cmd.Flags().StringVar(&section, "section", "", "仅生成指定章节，缺省生成全部")
	cmd.Flags().StringVar(&title, "title", "", "导出文档标题")
	cmd.Flags().StringVarP(&output, "output", "o", "", "输出文件，.md 导出 Markdown")
	cmd.Flags().BoolVar(&noLiterature, "no-literature", false, "不检索文献库作为上下文")

	return cmd
}

func runGenerate(app *App, cmd *cobra.Command, topic, section, title, output string, useLiterature bool) error {
	var sections []domain.SectionName
	if section != "" {
		name := domain.SectionName(section)
		if !domain.IsCanonical(name) {
			return fmt.Errorf("未知章节: %s", section)
		}
		sections = []domain.SectionName{name}
	}

	drafts := app.Generator.GenerateProposal(cmd.Context(), topic, sections, useLiterature)

	failed := 0
	for _, d := range drafts {
		if d.Err != nil {
			failed++
		}
	}
	if failed == len(drafts) {
		return fmt.Errorf("所有章节生成失败")
	}

	if output != "" {
		if err := generation.Save(drafts, output, title); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "草稿已保存: %s\n", output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), generation.ToMarkdown(drafts, title))
	return nil
}
