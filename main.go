// @title Habit Tracker API
// @version 1.0
// @description 习惯打卡服务的后端接口。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"habit_tracker/internal/app"
	"habit_tracker/internal/config"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/service"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/configwatcher"
	"habit_tracker/pkg/database"
	"habit_tracker/pkg/logger"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var configDir string

// loadConfig 读取配置并初始化日志
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.InitLogger(cfg)
	return cfg, nil
}

var rootCmd = &cobra.Command{
	Use:          "habit-tracker",
	Short:        "Habit tracking API server",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		application, err := app.NewApp(cfg)
		if err != nil {
			return err
		}
		defer logger.Log.Sync()

		// 配置文件热加载
		if cfg.ConfigFile != "" {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				if err := configwatcher.WatchConfig(ctx, cfg.ConfigFile, application.ApplyConfig); err != nil {
					logger.Log.Error("Config watcher stopped", zap.Error(err))
				}
			}()
		}

		return application.Run()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Log.Sync()

		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		fmt.Println("Database migration completed")
		return nil
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if password == "" {
			p, err := promptPassword()
			if err != nil {
				return err
			}
			password = p
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Log.Sync()

		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		users := service.NewUserService(repository.NewUserRepository(db), util.NewPasswordHasher(cfg.Auth.BcryptCost))
		user, err := users.Register(cmd.Context(), username, password)
		if err != nil {
			var appErr *util.AppError
			if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
				for _, f := range appErr.Fields {
					fmt.Fprintf(os.Stderr, "%s: %s\n", f.Field, f.Message)
				}
			}
			return err
		}

		fmt.Printf("User created: id=%d username=%s\n", user.ID, util.MaskUsername(user.Username))
		return nil
	},
}

// promptPassword 终端下不回显输入，管道输入时读取一行
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprint(os.Stderr, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "Directory containing config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().String("username", "", "Username (3-50 characters)")
	userCreateCmd.Flags().String("password", "", "Password; prompted when omitted")
	userCreateCmd.MarkFlagRequired("username")
}
