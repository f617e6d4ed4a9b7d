package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/auth"
	"estoque/cmd/estoque/cmd/product"
	"estoque/cmd/estoque/cmd/types"
	"estoque/cmd/estoque/cmd/ui"
	"estoque/internal/app"
	"estoque/internal/config"
	"estoque/internal/utils/logger"
)

// flag name -> config key
var flagKeys = map[string]string{
	"storage": "storage.driver",
	"locale":  "locale",
	"db":      "storage.sqlite_path",
}

type root struct {
	cfgFile string
	envFile string
	debug   bool
	logOut  io.Writer
	appOpts []app.Option
	app     *app.App
}

type Option func(*root)

// WithAppOptions передаёт опции в app.New (например, готовое хранилище).
func WithAppOptions(opts ...app.Option) Option {
	return func(r *root) {
		r.appOpts = append(r.appOpts, opts...)
	}
}

// WithLogOutput направляет логи в w (по умолчанию os.Stderr).
func WithLogOutput(w io.Writer) Option {
	return func(r *root) {
		r.logOut = w
	}
}

// NewRootCmd builds the command tree. The app is opened before any subcommand
// runs and closed by Execute.
func NewRootCmd(opts ...Option) (*cobra.Command, func() error) {
	r := &root{logOut: os.Stderr}
	for _, opt := range opts {
		opt(r)
	}

	rootCmd := &cobra.Command{
		Use:   "estoque",
		Short: "Estoque - controle de estoque local",
		Long: `Estoque guarda produtos (nome, preço, quantidade, validade e descrição)
por usuário em um armazenamento local de chave-valor.

Registre-se com "estoque auth register", entre com "estoque auth login" e
gerencie produtos com "estoque product".`,
		PersistentPreRunE: r.setupApp,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&r.cfgFile, "config", "", "конфигурационный файл (YAML)")
	flags.StringVar(&r.envFile, "env-file", "", ".env файл")
	flags.String("storage", "", "хранилище: sqlite, postgres, redis, memory")
	flags.String("db", "", "путь к файлу SQLite")
	flags.String("locale", "", "язык сообщений: pt, en")
	flags.BoolVar(&r.debug, "debug", false, "включить отладочный режим")

	rootCmd.AddCommand(auth.NewCmd(), product.NewCmd())

	return rootCmd, r.close
}

func (r *root) setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Options{
		ConfigFile: r.cfgFile,
		EnvFile:    r.envFile,
		Flags:      cmd.Flags(),
		FlagKeys:   flagKeys,
	})
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	env, level := cfg.Env, "warn"
	if r.debug {
		env, level = config.EnvLocal, "debug"
	}
	log := logger.New(env, logger.WithWriter(r.logOut), logger.WithLevel(level))

	a, err := app.New(cmd.Context(), cfg, log, r.appOpts...)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}
	r.app = a

	cmd.SetContext(types.WithApp(cmd.Context(), a))
	return nil
}

func (r *root) close() error {
	if r.app == nil {
		return nil
	}
	err := r.app.Close()
	r.app = nil
	return err
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, opts ...Option) int {
	rootCmd, closeApp := NewRootCmd(opts...)
	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeApp(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		return 0
	}

	var notice *ui.Notice
	if errors.As(err, &notice) {
		ui.Failure(rootCmd.ErrOrStderr(), notice.Message)
	} else {
		ui.Failure(rootCmd.ErrOrStderr(), fmt.Sprintf("Ошибка: %v", err))
	}
	return 1
}
