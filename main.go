package main

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "linequeue/docs"
	"linequeue/internal/config"
	"linequeue/internal/handlers"
	"linequeue/internal/line"
	"linequeue/internal/queue"
	"linequeue/internal/sheetstore"
	"linequeue/internal/tasks"
	"linequeue/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Очередь мероприятия с уведомлениями в LINE
// @Description				Регистрация через вебхук LINE, очередь в Google Sheets, вызов следующего с push-уведомлением
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Println("Файл .env не найден, используем переменные окружения")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка конфигурации: ", err)
	}

	ctx := context.Background()

	store, err := sheetstore.New(ctx, []byte(cfg.GoogleServiceAccount), cfg.SpreadsheetID)
	if err != nil {
		log.Fatal("Ошибка подключения к Google Sheets: ", err)
	}

	repo := queue.NewRepository(store, cfg.SheetName)
	notifier := line.NewClient(cfg.LineChannelToken)

	// Один экземпляр — хватает блокировки в памяти; несколько — Redis.
	var locker queue.Locker = queue.NewMutexLocker()
	if cfg.RedisAddr != "" {
		locker = queue.NewRedisLocker(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.Println("Блокировка вызова через Redis:", cfg.RedisAddr)
	}

	hub := ws.NewHub()
	go hub.Run()

	tasks.InitScheduler(repo, hub)

	h := handlers.New(repo, notifier, locker, hub, cfg.LineChannelSecret)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Line-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/webhook", h.WebhookHandler)

	api := r.Group("/api/queue")
	{
		api.POST("/next", h.CallNextHandler)
		api.GET("/status", h.QueueStatusHandler)
		api.GET("/ws", hub.QueueWebSocketHandler)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
