//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
// 运行 `wire gen ./cmd/api` 生成wire_gen.go后，main.go可切换到InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
	"github.com/xiebiao/bookmall/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewCustomerRepository,
	mysql.NewTrustRepository,
	mysql.NewBookRepository,
	mysql.NewAuthorRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewCommentRepository,
	mysql.NewQuestionRepository,
	mysql.NewReportRepository,
	mysql.NewTxManager,
	// 用例按自己声明的小接口依赖事务管理器
	wire.Bind(new(appcart.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appcustomer.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	customer.NewService,
	catalog.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcustomer.NewSignUpUseCase,
	appcustomer.NewLoginUseCase,
	appcustomer.NewLogoutUseCase,
	appcustomer.NewSetTrustUseCase,
	appcustomer.NewMyAccountUseCase,
	appcustomer.NewBanCustomerUseCase,
	appcustomer.NewRecordOffenseUseCase,
	appcatalog.NewIndexUseCase,
	appcatalog.NewSearchBooksUseCase,
	appcatalog.NewDegreeSearchUseCase,
	appcatalog.NewBookDetailUseCase,
	appcart.NewAddToCartUseCase,
	appcart.NewViewCartUseCase,
	appcart.NewAdjustQuantityUseCase,
	appcart.NewCheckoutUseCase,
	apporder.NewListOrdersUseCase,
	appcomment.NewPostCommentUseCase,
	appcomment.NewRateCommentUseCase,
	appqa.NewAskQuestionUseCase,
	appqa.NewMyQuestionsUseCase,
	appqa.NewAnswerQuestionUseCase,
	appreport.NewUserReportUseCase,
	appreport.NewBookReportUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	provideRankingCache,
	provideEventPublisher,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewCustomerHandler,
	handler.NewBookHandler,
	handler.NewCartHandler,
	handler.NewCommentHandler,
	handler.NewQuestionHandler,
	handler.NewAdminHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideRankingCache 从Redis客户端创建热销榜缓存
func provideRankingCache(client *goredis.Client) appcatalog.RankingCache {
	return redis.NewRankingCache(client)
}

// provideEventPublisher 按配置创建事件发布器
// RabbitMQ未启用时返回nil接口，各用例对nil做了保护
func provideEventPublisher(cfg *config.Config) (mq.EventPublisher, error) {
	if !cfg.RabbitMQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, "topic")
}

// provideGinEngine 创建Gin引擎并注册路由
func provideGinEngine(
	cfg *config.Config,
	customerHandler *handler.CustomerHandler,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	commentHandler *handler.CommentHandler,
	questionHandler *handler.QuestionHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	}

	registerRoutes(r, customerHandler, bookHandler, cartHandler, commentHandler, questionHandler, adminHandler, authMiddleware)

	return r
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)

	return nil, nil
}
