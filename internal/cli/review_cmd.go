package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lxltx2025/nsfcwriter/internal/cli/formatter"
	"github.com/lxltx2025/nsfcwriter/internal/domain"
	"github.com/lxltx2025/nsfcwriter/internal/review"
)

func newReviewCmd(app *App) *cobra.Command {
	var (
		noModel     bool
		reportPath  string
		revisedPath string
	)

	cmd := &cobra.Command{
		Use:   "review <file>",
		Short: "审阅申请书并生成修改建议",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(app, cmd, args[0], !noModel, reportPath, revisedPath)
		},
	}

	cmd.Flags().BoolVar(&noModel, "no-model", false, "仅使用规则审阅，不调用生成模型")
	cmd.Flags().StringVar(&reportPath, "report", "", "将审阅报告写入指定文件")
	cmd.Flags().StringVar(&revisedPath, "revised", "", "将修改稿写入指定文件")

	return cmd
}

func runReview(app *App, cmd *cobra.Command, path string, useModel bool, reportPath, revisedPath string) error {
	progress := &printProgress{w: cmd.ErrOrStderr()}

	results, err := app.Reviewer.ReviewProposal(cmd.Context(), path, useModel, progress)
	if err != nil {
		return fmt.Errorf("reviewing %s: %w", path, err)
	}

	if app.interactive() {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReviewSummary(results))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), review.BuildReport(results))
	}

	if reportPath != "" {
		if err := os.WriteFile(reportPath, []byte(review.BuildReport(results)), 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "审阅报告已保存: %s\n", reportPath)
	}
	if revisedPath != "" {
		if err := os.WriteFile(revisedPath, []byte(review.BuildRevisedProposal(results)), 0644); err != nil {
			return fmt.Errorf("writing revised proposal: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "修改稿已保存: %s\n", revisedPath)
	}

	return nil
}

// printProgress streams per-section review progress to stderr.
type printProgress struct {
	w io.Writer
}

func (p *printProgress) OnSectionStart(name domain.SectionName, index, total int) {
	fmt.Fprintf(p.w, "[%d/%d] 正在审阅: %s...\n", index+1, total, name)
}

func (p *printProgress) OnSectionDone(r *domain.ReviewResult, index, total int) {
	fmt.Fprintf(p.w, "[%d/%d] ✓ %s (%d/10)\n", index+1, total, r.SectionName, r.Score)
}
