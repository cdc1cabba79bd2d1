// Command editortoken prints a bearer token for an editor account, signed with JWT_SECRET.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/honeynil/headless-broker/internal/config"
	"github.com/honeynil/headless-broker/internal/infrastructure/auth"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	UserID int64
	TTL    time.Duration
}

func rootCmd(out io.Writer) *cobra.Command {
	var opts tokenOptions
	cmd := &cobra.Command{
		Use:          "editortoken --user <id>",
		SilenceUsage: true,
		Short:        "print an editor bearer token",
		Long:         `editortoken signs a bearer token for the broker's authenticated routes with JWT_SECRET.`,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToken(out, opts)
		},
	}
	fs := cmd.Flags()
	fs.Int64VarP(&opts.UserID, "user", "u", 0, "editor user id")
	fs.DurationVarP(&opts.TTL, "ttl", "t", 12*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runToken(out io.Writer, opts tokenOptions) error {
	cfg, err := config.LoadTokenConfig()
	if err != nil {
		return err
	}
	token, err := auth.GenerateJWT(opts.UserID, cfg.JWTSecret, opts.TTL)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	_, err = fmt.Fprintln(out, token)
	return err
}

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		log.Printf("editortoken failed: %v", err)
		os.Exit(1)
	}
}
