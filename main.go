// @title Student Skill Assistant API
// @version 1.0
// @description 学生技能测评平台的后端服务器。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"skill_assistant_backend/internal/app"
	"skill_assistant_backend/internal/config"
	"skill_assistant_backend/pkg/logger"
)

func main() {
	// 命令行参数
	ensureIndexes := flag.Bool("ensure-indexes", false, "只创建存储索引，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.EnsureIndexesOnly = *ensureIndexes

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 索引创建完成后直接退出
	if *ensureIndexes {
		log.Println("存储索引创建完成，退出程序")
		return
	}

	application.Run()
}
