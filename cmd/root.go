package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/rayforge/pkg/version"
	"github.com/urfave/cli/v3"
)

var Version = version.String()

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:  "rayforge",
		Usage: "A raylib project scaffolder",
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("rayforge version %s\n", Version)
					return nil
				},
			},
			{
				Name:  "new",
				Usage: "Generate a new raylib project",
				Flags: newFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return New(ctx, cmd)
				},
			},
			{
				Name:      "config",
				Usage:     "Inspect and edit .rpc project files",
				ArgsUsage: "<file>",
				Commands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "Print the entries of a .rpc file",
						ArgsUsage: "<file>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return ConfigShow(ctx, cmd)
						},
					},
					{
						Name:      "set",
						Usage:     "Set one key in a .rpc file",
						ArgsUsage: "<file> <key> <value>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return ConfigSet(ctx, cmd)
						},
					},
				},
			},
		},
	}

	return app.Run(ctx, args)
}
