package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcart "github.com/xiebiao/bookmall/internal/application/cart"
	appcatalog "github.com/xiebiao/bookmall/internal/application/catalog"
	appcomment "github.com/xiebiao/bookmall/internal/application/comment"
	appcustomer "github.com/xiebiao/bookmall/internal/application/customer"
	apporder "github.com/xiebiao/bookmall/internal/application/order"
	appqa "github.com/xiebiao/bookmall/internal/application/qa"
	appreport "github.com/xiebiao/bookmall/internal/application/report"
	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/internal/domain/customer"
	"github.com/xiebiao/bookmall/internal/infrastructure/config"
	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookmall/internal/interface/http/handler"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	"github.com/xiebiao/bookmall/pkg/jwt"
	"github.com/xiebiao/bookmall/pkg/metrics"
	"github.com/xiebiao/bookmall/pkg/mq"
	"github.com/xiebiao/bookmall/pkg/response"
	"github.com/xiebiao/bookmall/pkg/tracing"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go中有Wire版本，wire gen后可切换到InitializeApp）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化指标注册
	metrics.InitMetrics()

	// 3. 初始化链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRate)
		if err != nil {
			log.Fatalf("初始化链路追踪失败: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				log.Printf("关闭链路追踪失败: %v", err)
			}
		}()
	}

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 6. 初始化消息队列（可选，下单/封禁/答疑事件发布）
	var publisher mq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化RabbitMQ失败: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	// 7. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	customerRepo := mysql.NewCustomerRepository(db)
	trustRepo := mysql.NewTrustRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	commentRepo := mysql.NewCommentRepository(db)
	questionRepo := mysql.NewQuestionRepository(db)
	reportRepo := mysql.NewReportRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	rankingCache := redis.NewRankingCache(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	customerService := customer.NewService(customerRepo)
	catalogService := catalog.NewService(bookRepo, authorRepo)

	// 应用层
	signUpUseCase := appcustomer.NewSignUpUseCase(customerService)
	loginUseCase := appcustomer.NewLoginUseCase(customerService, jwtManager, sessionStore)
	logoutUseCase := appcustomer.NewLogoutUseCase(sessionStore)
	setTrustUseCase := appcustomer.NewSetTrustUseCase(customerRepo, trustRepo, txManager)
	myAccountUseCase := appcustomer.NewMyAccountUseCase(customerRepo, trustRepo, commentRepo)
	banCustomerUseCase := appcustomer.NewBanCustomerUseCase(customerRepo, publisher)
	recordOffenseUseCase := appcustomer.NewRecordOffenseUseCase(customerRepo)

	indexUseCase := appcatalog.NewIndexUseCase(bookRepo, rankingCache)
	searchBooksUseCase := appcatalog.NewSearchBooksUseCase(catalogService)
	degreeSearchUseCase := appcatalog.NewDegreeSearchUseCase(catalogService)
	bookDetailUseCase := appcatalog.NewBookDetailUseCase(bookRepo, commentRepo, trustRepo)

	addToCartUseCase := appcart.NewAddToCartUseCase(cartRepo, bookRepo)
	viewCartUseCase := appcart.NewViewCartUseCase(cartRepo)
	adjustQuantityUseCase := appcart.NewAdjustQuantityUseCase(cartRepo)
	checkoutUseCase := appcart.NewCheckoutUseCase(cartRepo, bookRepo, orderRepo, txManager, publisher)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo, bookRepo)

	postCommentUseCase := appcomment.NewPostCommentUseCase(commentRepo, bookRepo, customerRepo)
	rateCommentUseCase := appcomment.NewRateCommentUseCase(commentRepo)

	askQuestionUseCase := appqa.NewAskQuestionUseCase(questionRepo)
	myQuestionsUseCase := appqa.NewMyQuestionsUseCase(questionRepo)
	answerQuestionUseCase := appqa.NewAnswerQuestionUseCase(questionRepo, publisher)

	userReportUseCase := appreport.NewUserReportUseCase(reportRepo)
	bookReportUseCase := appreport.NewBookReportUseCase(reportRepo)

	// 接口层
	customerHandler := handler.NewCustomerHandler(signUpUseCase, loginUseCase, logoutUseCase, setTrustUseCase, myAccountUseCase)
	bookHandler := handler.NewBookHandler(indexUseCase, searchBooksUseCase, degreeSearchUseCase, bookDetailUseCase)
	cartHandler := handler.NewCartHandler(addToCartUseCase, viewCartUseCase, adjustQuantityUseCase, checkoutUseCase, listOrdersUseCase)
	commentHandler := handler.NewCommentHandler(postCommentUseCase, rateCommentUseCase)
	questionHandler := handler.NewQuestionHandler(askQuestionUseCase, myQuestionsUseCase)
	adminHandler := handler.NewAdminHandler(userReportUseCase, bookReportUseCase, answerQuestionUseCase, banCustomerUseCase, recordOffenseUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	}

	// 9. 注册路由
	registerRoutes(r, customerHandler, bookHandler, cartHandler, commentHandler, questionHandler, adminHandler, authMiddleware)

	// 10. 启动服务（优雅停机）
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
		fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号，正在停止服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("停止服务失败: %v", err)
	}
	log.Println("服务已停止")
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	customerHandler *handler.CustomerHandler,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	commentHandler *handler.CommentHandler,
	questionHandler *handler.QuestionHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 公开接口（部分接口登录后有额外内容，用OptionalAuth识别身份）
		v1.POST("/sign_up", customerHandler.SignUp)
		v1.POST("/login", customerHandler.Login)
		v1.GET("/index", authMiddleware.OptionalAuth(), bookHandler.Index)
		v1.GET("/book_search", authMiddleware.OptionalAuth(), bookHandler.Search)
		v1.GET("/degree_of_separation_search", bookHandler.DegreeSearch)
		v1.GET("/books/:isbn", authMiddleware.OptionalAuth(), bookHandler.Detail)

		// 需要登录的接口
		authorized := v1.Group("")
		authorized.Use(authMiddleware.RequireAuth())
		{
			authorized.POST("/logout", customerHandler.Logout)
			authorized.GET("/my_account", customerHandler.MyAccount)
			authorized.POST("/customers/:username/trust", customerHandler.SetTrust)

			authorized.POST("/books/:isbn/cart", cartHandler.AddToCart)
			authorized.GET("/shopping_cart", cartHandler.ViewCart)
			authorized.POST("/shopping_cart/quantity", cartHandler.AdjustQuantity)
			authorized.POST("/shopping_cart/checkout", cartHandler.Checkout)
			authorized.GET("/my_order", cartHandler.MyOrders)

			authorized.POST("/books/:isbn/comments", commentHandler.PostComment)
			authorized.POST("/comments/:id/rating", commentHandler.RateComment)

			authorized.GET("/my_question", questionHandler.MyQuestions)
			authorized.POST("/my_question", questionHandler.AskQuestion)
		}

		// 管理接口（要求staff身份）
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			admin.GET("/user_report", adminHandler.UserReport)
			admin.GET("/book_report", adminHandler.BookReport)
			admin.POST("/questions/:id/answer", adminHandler.AnswerQuestion)
			admin.POST("/customers/:username/ban", adminHandler.BanCustomer)
			admin.POST("/customers/:username/offense", adminHandler.RecordOffense)
		}
	}
}
