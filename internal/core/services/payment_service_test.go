package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/core/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockStripe *MockStripeGateway
	mockPayPal *MockPayPalGateway
	service    portssvc.PaymentSvc
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockStripe = new(MockStripeGateway)
	suite.mockPayPal = new(MockPayPalGateway)
	suite.service = services.NewPaymentService(services.NewCurrencyService(testCatalog()), suite.mockStripe, suite.mockPayPal)
}

func (suite *PaymentServiceTestSuite) TestCreateStripePaymentIntent_Success() {
	ctx := context.Background()
	expected := &dto.PaymentIntentResponse{ID: "pi_1", ClientSecret: "secret", Amount: 1999, Currency: "USD"}
	suite.mockStripe.On("CreatePaymentIntent", ctx, gateways.StripePaymentIntentParams{
		Amount:      1999,
		Currency:    "USD",
		Description: "order 42",
	}).Return(expected, nil).Once()

	got, err := suite.service.CreateStripePaymentIntent(ctx, dto.CreatePaymentIntentRequest{Amount: d("19.99"), Currency: "usd", Description: "order 42"})

	suite.Require().NoError(err)
	suite.Equal(expected, got)
	suite.mockStripe.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreateStripePaymentIntent_ZeroDecimalCurrency() {
	ctx := context.Background()
	suite.mockStripe.On("CreatePaymentIntent", ctx, mock.MatchedBy(func(p gateways.StripePaymentIntentParams) bool {
		return p.Amount == 1500 && p.Currency == "JPY"
	})).Return(&dto.PaymentIntentResponse{ID: "pi_2"}, nil).Once()

	_, err := suite.service.CreateStripePaymentIntent(ctx, dto.CreatePaymentIntentRequest{Amount: d("1499.6"), Currency: "JPY"})

	suite.Require().NoError(err)
	suite.mockStripe.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreateStripePaymentIntent_Validation() {
	ctx := context.Background()

	_, err := suite.service.CreateStripePaymentIntent(ctx, dto.CreatePaymentIntentRequest{Amount: d("0"), Currency: "USD"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateStripePaymentIntent(ctx, dto.CreatePaymentIntentRequest{Amount: d("10"), Currency: "XXX"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockStripe.AssertNotCalled(suite.T(), "CreatePaymentIntent", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreateStripePaymentIntent_UpstreamError() {
	ctx := context.Background()
	suite.mockStripe.On("CreatePaymentIntent", ctx, mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.CreateStripePaymentIntent(ctx, dto.CreatePaymentIntentRequest{Amount: d("10"), Currency: "USD"})

	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.Contains(err.Error(), "stripe")
}

func (suite *PaymentServiceTestSuite) TestCreatePayPalOrder() {
	ctx := context.Background()
	suite.mockPayPal.On("CreateOrder", ctx, gateways.PayPalOrderParams{Value: "10.50", Currency: "EUR", ReferenceID: "cart-1"}).
		Return(&dto.PayPalOrderResponse{ID: "O1", Status: "CREATED"}, nil).Once()

	got, err := suite.service.CreatePayPalOrder(ctx, dto.CreatePayPalOrderRequest{Amount: d("10.5"), Currency: "EUR", ReferenceID: "cart-1"})

	suite.Require().NoError(err)
	suite.Equal("O1", got.ID)
	suite.mockPayPal.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCapturePayPalOrder() {
	ctx := context.Background()
	suite.mockPayPal.On("CaptureOrder", ctx, "O1").Return(&dto.PayPalOrderResponse{ID: "O1", Status: "COMPLETED"}, nil).Once()
	suite.mockPayPal.On("CaptureOrder", ctx, "O2").Return(nil, assert.AnError).Once()

	got, err := suite.service.CapturePayPalOrder(ctx, "O1")
	suite.Require().NoError(err)
	suite.Equal("COMPLETED", got.Status)

	_, err = suite.service.CapturePayPalOrder(ctx, "O2")
	suite.ErrorIs(err, apperrors.ErrUpstream)

	_, err = suite.service.CapturePayPalOrder(ctx, "  ")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func TestMinorUnits(t *testing.T) {
	usd := domain.Currency{CurrencyCode: "USD", DecimalPlaces: 2}
	jpy := domain.Currency{CurrencyCode: "JPY", DecimalPlaces: 0}

	assert.Equal(t, int64(1999), services.MinorUnits(d("19.99"), usd))
	assert.Equal(t, int64(1000), services.MinorUnits(d("9.995"), usd))
	assert.Equal(t, int64(3), services.MinorUnits(d("2.5"), jpy))
}
