package serve

import (
	"fmt"
	"net/http"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"rrcapi/cmd/common"
	"rrcapi/db"
	"rrcapi/handlers"
)

var serveFlags = common.NewFlags()

func NewServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Bootstrap the database tables and serve the members, weapons, cars and
finance API until the process is killed.

Configuration comes from the environment (DATABASE_URL, PORT, ...), optionally
seeded from a dotenv file.`,
		RunE: Run,
	}
	cobraflags.RegisterMap(serveCmd, serveFlags)
	return serveCmd
}

func Run(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := common.Setup(serveFlags)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	store, err := db.Open(ctx, cfg.StoreURL(), logger)
	if store == nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()
	if err != nil {
		logger.Error("database not reachable at startup", "error", err)
	}

	// Bootstrap is fail-open unless SCHEMA_STRICT is set: missing tables
	// surface later as per-request store errors.
	if err := store.InitSchema(ctx); err != nil {
		if cfg.SchemaStrict {
			return fmt.Errorf("error initializing tables: %w", err)
		}
		logger.Warn("continuing with incomplete schema", "error", err)
	}

	api := handlers.New(store, logger, cfg.AppName)
	logger.Info("server starting", "addr", cfg.Addr(), "app", cfg.AppName, "dialect", store.Dialect.Name)
	return http.ListenAndServe(cfg.Addr(), api.Handler())
}
