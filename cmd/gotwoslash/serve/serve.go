package serve

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/gotwoslash/cmd/gotwoslash/engine"
	"github.com/walteh/gotwoslash/pkg/rpc"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	engine engine.Flags
}

func NewServeCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "answer twoslash requests as JSON-RPC over stdin and stdout",
	}

	me.engine.Register(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		wd, err := os.Getwd()
		if err != nil {
			return errors.Errorf("getting working directory: %w", err)
		}

		e, err := me.engine.Build(ctx, afero.NewOsFs(), wd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := rpc.Serve(ctx, &rpc.Service{Config: e.Config, Store: e.Store}, os.Stdin, os.Stdout); err != nil {
			return errors.Errorf("error running twoslash server: %w", err)
		}
		return nil
	}

	return cmd
}
