package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	service portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.service = services.NewCurrencyService(testCatalog())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	currency, err := suite.service.GetCurrencyByCode(context.Background(), " jpy ")

	suite.Require().NoError(err)
	suite.Equal("JPY", currency.CurrencyCode)
	suite.Equal(int32(0), currency.DecimalPlaces)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	currency, err := suite.service.GetCurrencyByCode(context.Background(), "XXX")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies() {
	currencies, err := suite.service.ListCurrencies(context.Background())

	suite.Require().NoError(err)
	suite.Len(currencies, 10)
	suite.Equal("USD", currencies[0].CurrencyCode)

	currencies[0].CurrencyCode = "ZZZ"
	again, _ := suite.service.ListCurrencies(context.Background())
	suite.Equal("USD", again[0].CurrencyCode, "callers get a copy")
}

func (suite *CurrencyServiceTestSuite) TestBaseCurrency() {
	suite.Equal("USD", suite.service.BaseCurrency().CurrencyCode)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
