package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-omnisearch/internal/logger"
	"github.com/MKhiriev/go-omnisearch/internal/mock"
	"github.com/MKhiriev/go-omnisearch/internal/validators"
	"github.com/MKhiriev/go-omnisearch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestValidatedService собирает сервис с валидацией поверх мок-транспорта
func newTestValidatedService(t *testing.T) (OmniSearchService, *mock.MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	return NewServices(transport, logger.Nop()).OmniSearch, transport
}

func TestValidationService_RejectsBeforeTransport(t *testing.T) {
	tests := []struct {
		name    string
		call    func(s OmniSearchService) (any, error)
		wantErr error
	}{
		{
			name:    "empty record id",
			call:    func(s OmniSearchService) (any, error) { return s.Record(context.Background(), "") },
			wantErr: validators.ErrEmptyIdentifier,
		},
		{
			name:    "create without type",
			call:    func(s OmniSearchService) (any, error) { return s.CreateRecord(context.Background(), models.Record{Name: "x"}) },
			wantErr: validators.ErrEmptyRecordType,
		},
		{
			name:    "empty object type",
			call:    func(s OmniSearchService) (any, error) { return s.RecordContent(context.Background(), "r1", "") },
			wantErr: validators.ErrEmptyIdentifier,
		},
		{
			name: "unknown comparison",
			call: func(s OmniSearchService) (any, error) {
				return s.Search(context.Background(), models.SearchQuery{
					RecordType: "article",
					Filters:    models.Filters{models.NewFilter("price", "between", 1)},
				})
			},
			wantErr: validators.ErrInvalidComparison,
		},
		{
			name: "unknown sort order",
			call: func(s OmniSearchService) (any, error) {
				return s.Search(context.Background(), models.SearchQuery{
					RecordType: "article",
					Sort:       models.SortSpec{Property: "price", Order: "random"},
				})
			},
			wantErr: validators.ErrInvalidSortOrder,
		},
		{
			name: "negative page",
			call: func(s OmniSearchService) (any, error) {
				return s.Records(context.Background(), models.ListQuery{Pagination: models.Pagination{Page: -1}})
			},
			wantErr: validators.ErrInvalidPagination,
		},
		{
			name:    "schema without type",
			call:    func(s OmniSearchService) (any, error) { return s.Schema(context.Background(), models.SchemaQuery{}) },
			wantErr: validators.ErrEmptyRecordType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// мок без ожиданий: любой вызов транспорта провалит тест
			svc, _ := newTestValidatedService(t)

			got, err := tt.call(svc)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidationService_ForwardsValidCalls(t *testing.T) {
	svc, transport := newTestValidatedService(t)
	q := models.SearchQuery{
		RecordType: "article",
		Filters:    models.Filters{models.NewFilter("price", "LESSTHAN", 10)},
		Sort:       models.SortSpec{Property: "price", Order: models.Descending},
	}

	transport.EXPECT().
		Request(gomock.Any(), http.MethodGet, "/search/article", nil, q.Params()).
		Return([]any{}, nil)

	got, err := svc.Search(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestValidationService_HelloNotValidated(t *testing.T) {
	svc, transport := newTestValidatedService(t)

	transport.EXPECT().Request(gomock.Any(), http.MethodGet, "/hello", nil, nil).Return("hi", nil)

	got, err := svc.Hello(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}
