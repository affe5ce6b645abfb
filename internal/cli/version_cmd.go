package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "打印版本信息",
		RunE: func(cmd *cobra.Command, args []string) error {
			version := app.Version
			if version == "" {
				version = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "nsfcwriter %s\n", version)

			if app.Client != nil {
				if app.Client.Available(cmd.Context()) {
					fmt.Fprintln(cmd.OutOrStdout(), "生成后端: 可用")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "生成后端: 不可用（将回退到规则审阅）")
				}
			}
			return nil
		},
	}
}
