//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/handler/api"
	resdto "purchase-pipeline/internal/handler/dto/response"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/usecase/commands"
	"purchase-pipeline/internal/usecase/readmodel"
	"purchase-pipeline/tests/common/builder"
	"purchase-pipeline/tests/common/httptest"
	"purchase-pipeline/tests/common/testutil"
	commandsmock "purchase-pipeline/tests/mock/commands"
	queriesmock "purchase-pipeline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDirectWriteCommands
	mockQueries  *queriesmock.MockPurchaseQueries
	handler      *api.PurchaseHandler
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDirectWriteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPurchaseQueries(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/purchases", s.handler.ListRecent)
	s.router.POST("/purchases", s.handler.DirectWrite)
	s.router.GET("/purchases/:userid", s.handler.ListByUser)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) TestListByUser() {
	s.Run("success: newest first as returned by the store", func() {
		older := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		items := []*readmodel.PurchaseRM{
			builder.NewPurchaseBuilder().WithTimestamp(older.Add(time.Minute)).BuildReadModel(),
			builder.NewPurchaseBuilder().WithTimestamp(older).BuildReadModel(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "u1").Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases/u1", nil)

		var body []resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.True(body[0].Timestamp.After(body[1].Timestamp))
	})

	s.Run("success: empty array for unknown user", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "nobody").Return([]*readmodel.PurchaseRM{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases/nobody", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "u1").Return(nil, errors.New("pool closed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases/u1", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch purchases")
	})
}

func (s *PurchaseHandlerTestSuite) TestListRecent() {
	s.Run("success", func() {
		items := []*readmodel.PurchaseRM{
			builder.NewPurchaseBuilder().WithUserID("u2").BuildReadModel(),
			builder.NewPurchaseBuilder().WithUserID("u1").BuildReadModel(),
		}
		s.mockQueries.EXPECT().ListRecent(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases", nil)

		var body []resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("u2", body[0].UserID)
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().ListRecent(gomock.Any()).Return(nil, errors.New("pool closed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch purchases")
	})
}

func (s *PurchaseHandlerTestSuite) TestDirectWrite() {
	url := "/purchases"
	reqBody := builder.NewPurchaseBuilder().BuildDirectWriteRequestDTO()
	stored := builder.NewPurchaseBuilder().BuildReadModel()

	s.Run("success: 201 with the stored document", func() {
		s.mockCommands.EXPECT().Write(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.DirectWriteInput) (*readmodel.PurchaseRM, error) {
				s.Require().NotNil(in.Timestamp)
				s.True(in.Timestamp.Equal(*reqBody.Timestamp))
				return stored, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(stored.ID.String(), body.ID)
		s.Equal(stored.UserID, body.UserID)
	})

	s.Run("success: timestamp may be omitted", func() {
		s.mockCommands.EXPECT().Write(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.DirectWriteInput) (*readmodel.PurchaseRM, error) {
				s.Nil(in.Timestamp)
				return stored, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("timestamp", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 and nothing stored on invalid bodies", func() {
		for _, tc := range invalidPurchaseBodies() {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request body")
			})
		}
	})

	s.Run("error: 400 on blank username rejected by the domain", func() {
		s.mockCommands.EXPECT().Write(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(purchase.ErrEmptyUsername, purchase.ErrValidation)).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("username", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "username is required")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockCommands.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to store purchase")
	})
}
