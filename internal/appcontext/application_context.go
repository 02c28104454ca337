package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"
	"reflect"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/payment"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf              *config.Config
	Logger          *zerolog.Logger
	DbConn          *gorm.DB
	DbDao           *db.DbDao
	RedisClient     *redis.Client
	TokenMaker      token.Maker[uuid.UUID]
	OrderRepo       *db.OrderRepo
	UserRepo        *db.UserRepo
	SessionRepo     *db.SessionRepo
	ProductRepo     *db.ProductRepo
	CategoryRepo    *db.CategoryRepo
	CartRepo        *redis_repo.CartRepo
	PaymentBroker   payment.ISessionBroker
	MailService     service.IMailService
	UserService     service.IUserService
	AuthService     service.IAuthService
	CartService     service.ICartService
	OrderService    service.IOrderService
	CheckoutService service.ICheckoutService
	ProductService  service.IProductService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	v := reflect.ValueOf(*cf)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fieldName := t.Field(i).Name
		fieldValue := v.Field(i).Interface()
		fmt.Printf("  \"%s\": \"%v\",\n", fieldName, fieldValue)
	}
	err := app.Init()

	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}

	err = app.setUpRedisClient()
	if err != nil {
		return err
	}

	err = app.setUpRepos()
	if err != nil {
		return err
	}

	err = app.setTokenMaker()
	if err != nil {
		return err
	}

	err = app.setUpPaymentBroker()
	if err != nil {
		return err
	}

	err = app.setUpMailService()
	if err != nil {
		return err
	}

	err = app.setUpUserService()
	if err != nil {
		return err
	}

	err = app.setUpAuthService()
	if err != nil {
		return err
	}

	err = app.setUpCartService()
	if err != nil {
		return err
	}

	err = app.setUpOrderService()
	if err != nil {
		return err
	}

	err = app.setUpCheckoutService()
	if err != nil {
		return err
	}

	err = app.setUpProductService()
	if err != nil {
		return err
	}

	err = app.dbInit()
	if err != nil {
		return err
	}

	//強制清空所有user session  for server意外關閉情況
	log.Printf("force cleanning all user session...")
	app.SessionRepo.ForceClearAllSessions(context.TODO())
	log.Printf("force cleanning all user session successed")

	return nil
}

func (app *ApplicationContext) setUpLogger() {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("module", app.Cf.ModulerName).
		Logger()
	app.Logger = &logger
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRedisClient() error {
	log.Printf("Start setup redis client")
	client := redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPas,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}
	app.RedisClient = client
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpRepos() error {
	log.Printf("Start setup repositories")
	app.OrderRepo = db.NewOrderRepo(app.DbDao)
	app.UserRepo = db.NewUserRepo(app.DbDao)
	app.SessionRepo = db.NewSessionRepo(app.DbDao)
	app.ProductRepo = db.NewProductRepo(app.DbDao)
	app.CategoryRepo = db.NewCategoryRepo(app.DbDao)
	app.CartRepo = redis_repo.NewCartRepo(app.RedisClient)
	log.Printf("Finish setup repositories")
	return nil
}

func (app *ApplicationContext) setTokenMaker() error {
	log.Printf("Start setup token maker")

	tokenMaker, err := token.NewPasetoMaker[uuid.UUID](app.Cf.AuthTokenKey)
	if err != nil {
		log.Fatalf("無法創建 token maker: %v", err)
	}

	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpPaymentBroker() error {
	log.Printf("Start setup payment broker")
	app.PaymentBroker = payment.NewStripeBroker(app.Cf.StripeSecretKey)
	log.Printf("Finish setup payment broker")
	return nil
}

func (app *ApplicationContext) setUpMailService() error {
	log.Printf("Start setup mail service")
	app.MailService = service.NewMailService(app.Cf.EmailSenderName, app.Cf.EmailAccount, app.Cf.SmtpHost, app.Cf.SmtpPort, app.Cf.SmtpAuthKey)
	log.Printf("Finish setup mail service")
	return nil
}

func (app *ApplicationContext) setUpUserService() error {
	log.Printf("Start setup user service")
	app.UserService = service.NewUserService(app.UserRepo)
	log.Printf("Finish setup user service")
	return nil
}

func (app *ApplicationContext) setUpAuthService() error {
	log.Printf("Start setup auth service")
	app.AuthService = service.NewAuthService(app.UserService, app.SessionRepo, app.TokenMaker)
	log.Printf("Finish setup auth service")
	return nil
}

func (app *ApplicationContext) setUpCartService() error {
	log.Printf("Start setup cart service")
	app.CartService = service.NewCartService(app.CartRepo, app.ProductRepo)
	log.Printf("Finish setup cart service")
	return nil
}

func (app *ApplicationContext) setUpOrderService() error {
	log.Printf("Start setup order service")
	app.OrderService = service.NewOrderService(app.OrderRepo, app.CartRepo, app.MailService, app.Logger)
	log.Printf("Finish setup order service")
	return nil
}

func (app *ApplicationContext) setUpCheckoutService() error {
	log.Printf("Start setup checkout service")
	app.CheckoutService = service.NewCheckoutService(app.CartRepo, app.PaymentBroker)
	log.Printf("Finish setup checkout service")
	return nil
}

func (app *ApplicationContext) setUpProductService() error {
	log.Printf("Start setup product service")
	app.ProductService = service.NewProductService(app.ProductRepo, app.CategoryRepo)
	log.Printf("Finish setup product service")
	return nil
}

// db schema migration
func (app *ApplicationContext) dbInit() error {
	log.Printf("Start setup db init")
	err := app.DbDao.InitMigrate()
	if err != nil {
		return err
	}
	log.Printf("Finish setup db init")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		//強制清空所有user session
		log.Printf("force cleanning all user session...")
		app.SessionRepo.ForceClearAllSessions(ctx)
		log.Printf("force cleanning all user session successed")

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		// 關閉 Redis
		if app.RedisClient != nil {
			log.Printf("Closing redis connection...")
			app.RedisClient.Close()
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
