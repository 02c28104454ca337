package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProductRepoTestSuite struct {
	suite.Suite
	db           *gorm.DB
	productRepo  *ProductRepo
	categoryRepo *CategoryRepo
}

func (suite *ProductRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.productRepo = NewProductRepo(dbDao)
	suite.categoryRepo = NewCategoryRepo(dbDao)
}

func (suite *ProductRepoTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM categories")
}

func (suite *ProductRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping db integration tests in short mode")
	}
	suite.Run(t, new(ProductRepoTestSuite))
}

func (suite *ProductRepoTestSuite) createTestProducts() {
	products := []*model.Product{
		{Code: "KB-01", Name: "Mechanical Keyboard", Price: decimal.RequireFromString("89.99"), Stock: 10, Available: true, Description: "cherry switches"},
		{Code: "MS-01", Name: "Gaming Mouse", Price: decimal.RequireFromString("39.99"), Stock: 5, Available: true, Description: "rgb lighting"},
		{Code: "HS-01", Name: "Headset", Price: decimal.RequireFromString("59.99"), Stock: 0, Available: false, Description: "discontinued keyboard companion"},
	}
	for _, p := range products {
		err := suite.productRepo.CreateProduct(context.Background(), p)
		suite.Require().NoError(err)
	}
}

func (suite *ProductRepoTestSuite) TestCreateAndGetProduct() {
	product := &model.Product{
		Code:      "KB-01",
		Name:      "Mechanical Keyboard",
		Price:     decimal.RequireFromString("89.99"),
		Stock:     10,
		Available: true,
	}
	err := suite.productRepo.CreateProduct(context.Background(), product)
	suite.Require().NoError(err)
	suite.Require().NotZero(product.ProductID)

	got, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	suite.Require().NoError(err)
	suite.Equal("KB-01", got.Code)
	suite.True(decimal.RequireFromString("89.99").Equal(got.Price))
}

func (suite *ProductRepoTestSuite) TestSearchProductsByAvailable() {
	suite.createTestProducts()

	available := true
	products, total, err := suite.productRepo.SearchProducts(context.Background(), ProductFilter{Available: &available}, 1, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(products, 2)

	available = false
	products, total, err = suite.productRepo.SearchProducts(context.Background(), ProductFilter{Available: &available}, 1, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("HS-01", products[0].Code)
}

func (suite *ProductRepoTestSuite) TestSearchProductsByKeyword() {
	suite.createTestProducts()

	// 名稱與描述都比對  不分大小寫
	products, total, err := suite.productRepo.SearchProducts(context.Background(), ProductFilter{Keyword: "keyboard"}, 1, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(products, 2)
}

func (suite *ProductRepoTestSuite) TestSearchProductsByCreatedRange() {
	suite.createTestProducts()

	future := time.Now().Add(time.Hour)
	products, total, err := suite.productRepo.SearchProducts(context.Background(), ProductFilter{CreatedFrom: &future}, 1, 10)
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.Empty(products)

	past := time.Now().Add(-time.Hour)
	_, total, err = suite.productRepo.SearchProducts(context.Background(), ProductFilter{CreatedFrom: &past, CreatedTo: &future}, 1, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
}

func (suite *ProductRepoTestSuite) TestSearchProductsPaging() {
	for i := 0; i < 5; i++ {
		err := suite.productRepo.CreateProduct(context.Background(), &model.Product{
			Code:      fmt.Sprintf("P-%d", i),
			Name:      fmt.Sprintf("Product %d", i),
			Price:     decimal.RequireFromString("10.00"),
			Available: true,
		})
		suite.Require().NoError(err)
	}

	products, total, err := suite.productRepo.SearchProducts(context.Background(), ProductFilter{}, 1, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(products, 2)

	products, _, err = suite.productRepo.SearchProducts(context.Background(), ProductFilter{}, 3, 2)
	suite.Require().NoError(err)
	suite.Len(products, 1)
}

func (suite *ProductRepoTestSuite) TestCreateCategoryGeneratesSlug() {
	category := &model.Category{Name: "Gaming Gear"}
	err := suite.categoryRepo.CreateCategory(context.Background(), category)
	suite.Require().NoError(err)
	suite.Equal("gaming-gear", category.Slug)

	// 已給slug則不覆寫
	custom := &model.Category{Name: "Office Stuff", Slug: "office"}
	err = suite.categoryRepo.CreateCategory(context.Background(), custom)
	suite.Require().NoError(err)
	suite.Equal("office", custom.Slug)
}

func (suite *ProductRepoTestSuite) TestGetAllCategoriesSorted() {
	for _, name := range []string{"Peripherals", "Audio", "Monitors"} {
		err := suite.categoryRepo.CreateCategory(context.Background(), &model.Category{Name: name})
		suite.Require().NoError(err)
	}

	categories, err := suite.categoryRepo.GetAllCategories(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(categories, 3)
	suite.Equal("Audio", categories[0].Name)
	suite.Equal("Monitors", categories[1].Name)
	suite.Equal("Peripherals", categories[2].Name)
}
