package initdb

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"rrcapi/cmd/common"
	"rrcapi/db"
)

var initFlags = common.NewFlags()

func NewInitDBCommand() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create the database tables and exit",
		Long: `Create the members, weapons, cars and finance_transactions tables if they
do not exist yet. Unlike serve, any failure makes the command exit non-zero.`,
		RunE: run,
	}
	cobraflags.RegisterMap(initCmd, initFlags)
	return initCmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := common.Setup(initFlags)
	if err != nil {
		return err
	}

	store, err := db.Open(cmd.Context(), cfg.StoreURL(), logger)
	if store != nil {
		defer store.Close()
	}
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	return store.InitSchema(cmd.Context())
}
