package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/core/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PriceServiceTestSuite struct {
	suite.Suite
	service portssvc.PriceSvc
}

func (suite *PriceServiceTestSuite) SetupTest() {
	table := &domain.RateTable{
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"USD": d("1"),
			"EUR": d("0.5"),
			"JPY": d("150"),
		},
	}
	suite.service = services.NewPriceService(services.NewCurrencyService(testCatalog()), fixedRates{table: table})
}

func (suite *PriceServiceTestSuite) TestConvertPrice() {
	got, err := suite.service.ConvertPrice(context.Background(), d("10"), "", "EUR")

	suite.Require().NoError(err)
	suite.Equal("USD", got.From)
	suite.Equal("EUR", got.To)
	suite.True(got.Converted.Equal(d("5")))
	suite.Equal("€5.00", got.Formatted)
}

func (suite *PriceServiceTestSuite) TestConvertPrice_ZeroDecimalCurrency() {
	got, err := suite.service.ConvertPrice(context.Background(), d("19.99"), "USD", "jpy")

	suite.Require().NoError(err)
	suite.True(got.Converted.Equal(d("2999")), "19.99 * 150 = 2998.5 rounds half away from zero")
	suite.Equal("¥2,999", got.Formatted)
}

func (suite *PriceServiceTestSuite) TestConvertPrice_MissingRateIsIdentity() {
	got, err := suite.service.ConvertPrice(context.Background(), d("12.5"), "USD", "GBP")

	suite.Require().NoError(err)
	suite.True(got.Converted.Equal(d("12.5")))
	suite.Equal("£12.50", got.Formatted)
}

func (suite *PriceServiceTestSuite) TestConvertPrice_Validation() {
	_, err := suite.service.ConvertPrice(context.Background(), d("1"), "USD", "XXX")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ConvertPrice(context.Background(), d("-1"), "USD", "EUR")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PriceServiceTestSuite) TestDisplayPrices() {
	sale := d("75")
	lo, hi := d("10"), d("20")
	items := []dto.DisplayPriceItem{
		{ProductID: "p1", Price: d("100"), SalePrice: &sale},
		{ProductID: "p2", Price: d("10"), MinPrice: &lo, MaxPrice: &hi},
		{ProductID: "p3", Price: d("0")},
	}

	got, err := suite.service.DisplayPrices(context.Background(), items, "EUR")

	suite.Require().NoError(err)
	suite.Equal("EUR", got.Currency)
	suite.Require().Len(got.Items, 3)
	suite.Equal("€50.00", got.Items[0].Price)
	suite.Equal("€37.50", got.Items[0].SalePrice)
	suite.Equal(25, got.Items[0].DiscountPercentage)
	suite.Equal("€5.00 - €10.00", got.Items[1].PriceRange)
	suite.Equal(0, got.Items[1].DiscountPercentage)
	suite.Equal("€0.00", got.Items[2].Price)
}

func (suite *PriceServiceTestSuite) TestDisplayPrices_DefaultsToBase() {
	got, err := suite.service.DisplayPrices(context.Background(), []dto.DisplayPriceItem{{ProductID: "p1", Price: d("1234.5")}}, "")

	suite.Require().NoError(err)
	suite.Equal("USD", got.Currency)
	suite.Equal("$1,234.50", got.Items[0].Price)
}

func (suite *PriceServiceTestSuite) TestDisplayPrices_UnknownCurrency() {
	_, err := suite.service.DisplayPrices(context.Background(), []dto.DisplayPriceItem{{ProductID: "p1", Price: d("1")}}, "XXX")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PriceServiceTestSuite) TestDisplayPrices_RejectsNegativeFields() {
	neg := d("-5")
	pos := d("5")
	tests := []struct {
		name  string
		item  dto.DisplayPriceItem
		field string
	}{
		{"price", dto.DisplayPriceItem{ProductID: "p1", Price: neg}, "price"},
		{"sale price", dto.DisplayPriceItem{ProductID: "p1", Price: pos, SalePrice: &neg}, "salePrice"},
		{"min price", dto.DisplayPriceItem{ProductID: "p1", Price: pos, MinPrice: &neg, MaxPrice: &pos}, "minPrice"},
		{"max price", dto.DisplayPriceItem{ProductID: "p1", Price: pos, MinPrice: &pos, MaxPrice: &neg}, "maxPrice"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got, err := suite.service.DisplayPrices(context.Background(), []dto.DisplayPriceItem{tt.item}, "USD")
			suite.Nil(got)
			suite.Require().ErrorIs(err, apperrors.ErrValidation)
			suite.Contains(err.Error(), tt.field)
		})
	}
}

func (suite *PriceServiceTestSuite) TestConvertPrice_LargeAmountKeepsEveryDigit() {
	got, err := suite.service.ConvertPrice(context.Background(), d("1e19"), "USD", "USD")

	suite.Require().NoError(err)
	suite.Equal("$10,000,000,000,000,000,000.00", got.Formatted)
}

func TestPriceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PriceServiceTestSuite))
}
