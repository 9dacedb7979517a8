// @title Planner 后端 API
// @version 1.0
// @description 每日计划应用的后端服务：活动打卡、连续天数与徽章、习惯、日程、健康、日记与愿景板。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"planner_backend/internal/app"
	"planner_backend/internal/config"
	"planner_backend/pkg/database"
	"planner_backend/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const configFileName = "config.yaml"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:          "planner",
		Short:        "Daily planner backend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env 可选，不存在时只用真实环境变量
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configDir, "config", "c", "configs", "配置文件所在目录")

	cmd.AddCommand(serveCmd(&configDir), migrateCmd(&configDir))
	return cmd
}

func serveCmd(configDir *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			// release 模式默认跳过迁移
			cfg.ForceMigrate = migrate

			application, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			defer logger.Log.Sync()

			application.ConfigFile = filepath.Join(*configDir, configFileName)
			return application.Run()
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	return cmd
}

func migrateCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "只执行数据库迁移，完成后退出",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.ForceMigrate = true

			logger.InitLogger(cfg)
			defer logger.Log.Sync()

			db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, true)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}

			logger.Log.Info("Database migration completed", zap.String("driver", cfg.Database.Driver))
			return nil
		},
	}
}
